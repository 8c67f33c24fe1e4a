package sales_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Jugueteria-api/internal/application/dto"
	"github.com/jhoicas/Jugueteria-api/internal/application/sales"
	"github.com/jhoicas/Jugueteria-api/internal/domain"
	"github.com/jhoicas/Jugueteria-api/internal/domain/entity"
	"github.com/jhoicas/Jugueteria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore estado compartido entre los repos fake (la "base de datos").
type fakeStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	saleObjs []*entity.Sale

	saleCreateErr  error // inyectado para simular fallo del insert
	updateStockErr error // inyectado para simular fallo del update de stock
}

func newFakeStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{products: map[string]*entity.Product{}}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *fakeStore) stockOf(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Stock
}

func (s *fakeStore) salesCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saleObjs)
}

// fakeProductRepo opera sobre el estado indicado (committed o staged).
type fakeProductRepo struct {
	store    *fakeStore
	products map[string]*entity.Product
}

func (r *fakeProductRepo) data() map[string]*entity.Product {
	if r.products != nil {
		return r.products
	}
	return r.store.products
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.data()[p.ID] = p; return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.data()[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error { r.data()[p.ID] = p; return nil }

func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	if r.store.updateStockErr != nil {
		return r.store.updateStockErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.data()[id].Stock = stock
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error           { delete(r.data(), id); return nil }

type fakeSaleRepo struct {
	store *fakeStore
	sales *[]*entity.Sale
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	if r.store.saleCreateErr != nil {
		return r.store.saleCreateErr
	}
	*r.sales = append(*r.sales, s)
	return nil
}

func (r *fakeSaleRepo) List() ([]*entity.Sale, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.Sale, len(r.store.saleObjs))
	copy(out, r.store.saleObjs)
	return out, nil
}

// fakeTxRunner imita la semántica transaccional: ejecuta fn sobre una copia
// del estado y solo la vuelca al store si fn termina sin error (commit).
// Las transacciones se serializan con el mutex, como lo haría el row lock.
type fakeTxRunner struct {
	store *fakeStore
	txMu  sync.Mutex
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	t.txMu.Lock()
	defer t.txMu.Unlock()

	// Copia de trabajo (staged)
	t.store.mu.Lock()
	staged := make(map[string]*entity.Product, len(t.store.products))
	for id, p := range t.store.products {
		cp := *p
		staged[id] = &cp
	}
	stagedSales := make([]*entity.Sale, len(t.store.saleObjs))
	copy(stagedSales, t.store.saleObjs)
	t.store.mu.Unlock()

	productRepo := &fakeProductRepo{store: t.store, products: staged}
	saleRepo := &fakeSaleRepo{store: t.store, sales: &stagedSales}

	if err := fn(productRepo, saleRepo); err != nil {
		return err // rollback: la copia se descarta
	}

	// Commit
	t.store.mu.Lock()
	t.store.products = staged
	t.store.saleObjs = stagedSales
	t.store.mu.Unlock()
	return nil
}

func producto(id string, price int64, stock int) *entity.Product {
	return &entity.Product{
		ID:        id,
		Name:      "Carro a control remoto",
		Price:     decimal.NewFromInt(price),
		Stock:     stock,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func newUseCase(store *fakeStore) *sales.SaleUseCase {
	productRepo := &fakeProductRepo{store: store}
	saleRepo := &fakeSaleRepo{store: store, sales: &store.saleObjs}
	return sales.NewSaleUseCase(&fakeTxRunner{store: store}, productRepo, saleRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

// Venta válida: descuenta stock, registra exactamente una venta y congela el total.
func TestRegister_VentaValidaDescuentaStock(t *testing.T) {
	store := newFakeStore(producto("p1", 25, 10))
	uc := newUseCase(store)

	out, err := uc.Register(context.Background(), dto.RegisterSaleRequest{ProductID: "p1", Quantity: 3})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "p1", out.ProductID)
	assert.Equal(t, 3, out.Quantity)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(75)), "total = precio × cantidad")
	assert.NotEmpty(t, out.ID)
	assert.False(t, out.SoldAt.IsZero())

	assert.Equal(t, 7, store.stockOf("p1"))
	assert.Equal(t, 1, store.salesCount())
}

// Puede venderse exactamente todo el stock disponible.
func TestRegister_VentaDeTodoElStock(t *testing.T) {
	store := newFakeStore(producto("p1", 10, 4))
	uc := newUseCase(store)

	_, err := uc.Register(context.Background(), dto.RegisterSaleRequest{ProductID: "p1", Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 0, store.stockOf("p1"))
}

// Cantidad mayor al stock: falla con ErrInsufficientStock y nada cambia.
func TestRegister_StockInsuficiente(t *testing.T) {
	store := newFakeStore(producto("p1", 25, 2))
	uc := newUseCase(store)

	out, err := uc.Register(context.Background(), dto.RegisterSaleRequest{ProductID: "p1", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, out)

	assert.Equal(t, 2, store.stockOf("p1"), "el stock no debe mutar en un fallo")
	assert.Equal(t, 0, store.salesCount(), "no debe registrarse ninguna venta")
}

// Producto inexistente: ErrNotFound, ningún stock cambia.
func TestRegister_ProductoInexistente(t *testing.T) {
	store := newFakeStore(producto("p1", 25, 2))
	uc := newUseCase(store)

	_, err := uc.Register(context.Background(), dto.RegisterSaleRequest{ProductID: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 2, store.stockOf("p1"))
	assert.Equal(t, 0, store.salesCount())
}

// Entrada inválida: cantidad cero o negativa, o producto vacío.
func TestRegister_EntradaInvalida(t *testing.T) {
	store := newFakeStore(producto("p1", 25, 10))
	uc := newUseCase(store)

	casos := []dto.RegisterSaleRequest{
		{ProductID: "p1", Quantity: 0},
		{ProductID: "p1", Quantity: -1},
		{ProductID: "", Quantity: 3},
	}
	for _, in := range casos {
		_, err := uc.Register(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %+v", in)
	}
	assert.Equal(t, 10, store.stockOf("p1"))
	assert.Equal(t, 0, store.salesCount())
}

// Atomicidad: si el insert de la venta falla, no queda ni venta ni descuento.
func TestRegister_RollbackSiFallaElInsert(t *testing.T) {
	store := newFakeStore(producto("p1", 25, 10))
	store.saleCreateErr = errors.New("insert sale: conexión perdida")
	uc := newUseCase(store)

	_, err := uc.Register(context.Background(), dto.RegisterSaleRequest{ProductID: "p1", Quantity: 3})
	require.Error(t, err)

	assert.Equal(t, 10, store.stockOf("p1"))
	assert.Equal(t, 0, store.salesCount())
}

// Atomicidad: fallo inyectado entre el insert de la venta y el update de
// stock; ninguno de los dos escritos debe persistir.
func TestRegister_RollbackSiFallaElUpdateDeStock(t *testing.T) {
	store := newFakeStore(producto("p1", 25, 10))
	store.updateStockErr = errors.New("update product stock: conexión perdida")
	uc := newUseCase(store)

	_, err := uc.Register(context.Background(), dto.RegisterSaleRequest{ProductID: "p1", Quantity: 3})
	require.Error(t, err)

	assert.Equal(t, 10, store.stockOf("p1"), "el descuento no debe persistir")
	assert.Equal(t, 0, store.salesCount(), "la venta no debe persistir (rollback)")
}

// Dos ventas simultáneas pidiendo cada una todo el stock: exactamente una
// gana, la otra recibe ErrInsufficientStock y el stock final es 0, nunca negativo.
func TestRegister_VentasConcurrentesNoDejanStockNegativo(t *testing.T) {
	store := newFakeStore(producto("p1", 25, 5))
	uc := newUseCase(store)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Register(context.Background(), dto.RegisterSaleRequest{ProductID: "p1", Quantity: 5})
		}(i)
	}
	wg.Wait()

	exitos := 0
	for _, err := range errs {
		if err == nil {
			exitos++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 1, exitos, "exactamente una venta debe prosperar")
	assert.Equal(t, 0, store.stockOf("p1"))
	assert.Equal(t, 1, store.salesCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List
// ──────────────────────────────────────────────────────────────────────────────

// List mapea la venta con su producto cargado.
func TestList_IncluyeProducto(t *testing.T) {
	store := newFakeStore()
	store.saleObjs = []*entity.Sale{
		{
			ID:        "v1",
			ProductID: "p1",
			Quantity:  2,
			Total:     decimal.NewFromInt(50),
			SoldAt:    time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC),
			Product:   producto("p1", 25, 8),
		},
	}
	uc := newUseCase(store)

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "v1", out[0].ID)
	require.NotNil(t, out[0].Product)
	assert.Equal(t, "Carro a control remoto", out[0].Product.Name)
}
