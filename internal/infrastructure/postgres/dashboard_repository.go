package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Jugueteria-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para los agregados del dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de analítica.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountProducts cuenta todos los productos del catálogo.
func (r *DashboardRepo) CountProducts(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountProducts: %w", err)
	}
	return n, nil
}

// CountLowStock cuenta productos con stock estrictamente menor al umbral.
func (r *DashboardRepo) CountLowStock(ctx context.Context, threshold int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE stock < $1`, threshold).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountLowStock: %w", err)
	}
	return n, nil
}

// SumSales suma los totales de todas las ventas registradas.
// Usa COALESCE para devolver cero si no hay filas.
func (r *DashboardRepo) SumSales(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(total), 0) FROM sales`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.SumSales: %w", err)
	}
	return total, nil
}

// ListSaleTotals devuelve (fecha, total) de cada venta en orden ascendente,
// listo para agrupar por mes en el caso de uso.
func (r *DashboardRepo) ListSaleTotals(ctx context.Context) ([]repository.SaleTotal, error) {
	rows, err := r.pool.Query(ctx, `SELECT sold_at, total FROM sales ORDER BY sold_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListSaleTotals: %w", err)
	}
	defer rows.Close()

	var totals []repository.SaleTotal
	for rows.Next() {
		var t repository.SaleTotal
		if err := rows.Scan(&t.SoldAt, &t.Total); err != nil {
			return nil, fmt.Errorf("dashboard.ListSaleTotals scan: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
