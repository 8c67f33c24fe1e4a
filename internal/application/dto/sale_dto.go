package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest entrada para registrar una venta.
type RegisterSaleRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// SaleResponse salida de una venta. Product viene cargado en los listados;
// en la respuesta de creación se omite.
type SaleResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	Total     decimal.Decimal  `json:"total"`
	SoldAt    time.Time        `json:"soldAt"`
	Product   *ProductResponse `json:"product,omitempty"`
}
