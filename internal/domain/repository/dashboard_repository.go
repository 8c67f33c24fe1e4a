package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SaleTotal par (fecha, total) de una venta, para la serie mensual.
// Lo produce la DB ordenado por fecha ascendente; el use case agrupa por mes.
type SaleTotal struct {
	SoldAt time.Time
	Total  decimal.Decimal
}

// DashboardRepository consultas de solo lectura para el dashboard.
type DashboardRepository interface {
	CountProducts(ctx context.Context) (int, error)
	// CountLowStock cuenta productos con stock estrictamente menor al umbral.
	CountLowStock(ctx context.Context, threshold int) (int, error)
	// SumSales suma los totales de todas las ventas; cero si no hay ninguna.
	SumSales(ctx context.Context) (decimal.Decimal, error)
	// ListSaleTotals devuelve (fecha, total) de cada venta, ordenado ascendente.
	ListSaleTotals(ctx context.Context) ([]SaleTotal, error)
}
