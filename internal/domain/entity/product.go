package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la juguetería.
// Stock se descuenta únicamente al registrar una venta; Price puede cambiar
// sin afectar los totales de ventas ya registradas.
type Product struct {
	ID         string
	Name       string
	Price      decimal.Decimal // precio de venta unitario
	Stock      int
	CategoryID string    // vacío si no tiene categoría
	Category   *Category // cargada en lecturas con join; nil si no tiene
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
