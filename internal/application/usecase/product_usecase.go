package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Jugueteria-api/internal/application/dto"
	"github.com/jhoicas/Jugueteria-api/internal/domain"
	"github.com/jhoicas/Jugueteria-api/internal/domain/entity"
	"github.com/jhoicas/Jugueteria-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo. Stock solo se descuenta
// desde el módulo de ventas; aquí se fija el valor completo al guardar.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// Create crea un producto; si CategoryName no está vacío busca la categoría por
// nombre exacto y la crea cuando no existe.
func (uc *ProductUseCase) Create(in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	category, err := uc.resolveCategory(in.CategoryName)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     in.Price,
		Stock:     in.Stock,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if category != nil {
		product.CategoryID = category.ID
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update sobrescribe name/price/stock/categoría por completo (mismo contrato
// que Create); devuelve (nil, nil) si el producto no existe.
func (uc *ProductUseCase) Update(id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	category, err := uc.resolveCategory(in.CategoryName)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Price = in.Price
	product.Stock = in.Stock
	product.Category = category
	product.CategoryID = ""
	if category != nil {
		product.CategoryID = category.ID
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos con su categoría, en orden de creación.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto. Devuelve domain.ErrConflict si tiene ventas
// registradas (la FK lo impide) y domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.productRepo.Delete(id)
}

// resolveCategory busca la categoría por nombre y la crea si no existe.
// Si el insert choca con el constraint único (petición concurrente con el
// mismo nombre), se relee en lugar de confiar en el chequeo previo.
func (uc *ProductUseCase) resolveCategory(name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	category, err := uc.categoryRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}

	category = &entity.Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	err = uc.categoryRepo.Create(category)
	if err == nil {
		return category, nil
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return uc.categoryRepo.GetByName(name)
	}
	return nil, err
}

func validateProduct(in dto.SaveProductRequest) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Stock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Stock:      p.Stock,
		CategoryID: p.CategoryID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.Category != nil {
		out.Category = &dto.CategoryResponse{ID: p.Category.ID, Name: p.Category.Name}
	}
	return out
}
