// Package sales contiene el caso de uso de registro de ventas: la única
// operación del sistema con un invariante real que proteger (el stock nunca
// queda negativo y venta + descuento confirman como una sola transacción).
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Jugueteria-api/internal/application/dto"
	"github.com/jhoicas/Jugueteria-api/internal/domain"
	"github.com/jhoicas/Jugueteria-api/internal/domain/entity"
	"github.com/jhoicas/Jugueteria-api/internal/domain/repository"
)

// SaleUseCase registra ventas de forma transaccional con bloqueo de fila
// (SELECT FOR UPDATE) y lista el historial de ventas.
type SaleUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, productRepo repository.ProductRepository, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, productRepo: productRepo, saleRepo: saleRepo}
}

// Register valida y registra una venta.
//
// Orden de validación: entrada inválida → producto inexistente → stock
// insuficiente. Las validaciones ocurren antes de abrir la transacción; dentro
// de ella se bloquea la fila del producto y se repite el chequeo de stock
// sobre la fila bloqueada, que es el chequeo autoritativo: dos ventas
// concurrentes sobre el mismo producto se serializan ahí y la perdedora
// recibe ErrInsufficientStock en vez de dejar el stock negativo.
//
// El total se calcula con el precio de la fila bloqueada y queda congelado en
// la venta; cambios de precio posteriores no lo afectan.
func (uc *SaleUseCase) Register(ctx context.Context, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.Stock < in.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	sale := &entity.Sale{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		SoldAt:    time.Now(),
	}

	// Commit si todo ok, Rollback si algo falla (TxRunner.Run lo garantiza).
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		locked, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if locked.Stock < in.Quantity {
			return domain.ErrInsufficientStock
		}

		sale.Total = locked.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		return productRepo.UpdateStock(locked.ID, locked.Stock-in.Quantity)
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale), nil
}

// List devuelve todas las ventas con su producto, más recientes primero.
func (uc *SaleUseCase) List() ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return items, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		Total:     s.Total,
		SoldAt:    s.SoldAt,
	}
	if s.Product != nil {
		p := s.Product
		out.Product = &dto.ProductResponse{
			ID:         p.ID,
			Name:       p.Name,
			Price:      p.Price,
			Stock:      p.Stock,
			CategoryID: p.CategoryID,
			CreatedAt:  p.CreatedAt,
			UpdatedAt:  p.UpdatedAt,
		}
		if p.Category != nil {
			out.Product.Category = &dto.CategoryResponse{ID: p.Category.ID, Name: p.Category.Name}
		}
	}
	return out
}
