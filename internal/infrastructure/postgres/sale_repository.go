package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Jugueteria-api/internal/domain/entity"
	"github.com/jhoicas/Jugueteria-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta. Se invoca dentro de la transacción de RegisterSale.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, quantity, total, sold_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.Quantity, sale.Total, sale.SoldAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// List devuelve todas las ventas con su producto, más recientes primero.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	query := `
		SELECT s.id, s.product_id, s.quantity, s.total, s.sold_at,
		       p.name, p.price, p.stock, p.category_id, p.created_at, p.updated_at
		FROM sales s
		JOIN products p ON p.id = s.product_id
		ORDER BY s.sold_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var p entity.Product
		var categoryID *string
		err := rows.Scan(
			&s.ID, &s.ProductID, &s.Quantity, &s.Total, &s.SoldAt,
			&p.Name, &p.Price, &p.Stock, &categoryID, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		p.ID = s.ProductID
		if categoryID != nil {
			p.CategoryID = *categoryID
		}
		s.Product = &p
		list = append(list, &s)
	}
	return list, rows.Err()
}
