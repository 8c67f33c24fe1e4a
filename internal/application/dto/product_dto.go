package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest entrada para crear o actualizar un producto.
// Se usa el mismo cuerpo en POST y PUT: la actualización sobrescribe
// name/price/stock/categoría por completo, así que el caller debe enviar los
// valores vigentes de los campos que no quiera cambiar.
type SaveProductRequest struct {
	Name         string          `json:"name"`
	CategoryName string          `json:"categoryName"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductResponse salida de un producto con su categoría (null si no tiene).
type ProductResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Price      decimal.Decimal   `json:"price"`
	Stock      int               `json:"stock"`
	CategoryID string            `json:"categoryId,omitempty"`
	Category   *CategoryResponse `json:"category"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}
