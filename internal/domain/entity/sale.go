package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada. Total se fija al momento de la venta
// (precio unitario × cantidad) y no se recalcula si el precio del producto cambia.
type Sale struct {
	ID        string
	ProductID string
	Quantity  int
	Total     decimal.Decimal
	SoldAt    time.Time
	Product   *Product // cargado en lecturas con join; nil en escrituras
}
