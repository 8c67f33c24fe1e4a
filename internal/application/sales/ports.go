package sales

import (
	"context"

	"github.com/jhoicas/Jugueteria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre el insert de la
// venta y el descuento de stock: o se confirman juntos o ninguno queda.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
