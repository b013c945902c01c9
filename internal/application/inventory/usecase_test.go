package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfsolarte/inventario-ventas/internal/application/inventory"
	"github.com/jfsolarte/inventario-ventas/internal/domain"
	"github.com/jfsolarte/inventario-ventas/internal/domain/entity"
	"github.com/jfsolarte/inventario-ventas/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// GetForUpdate en el fake devuelve una copia igual que GetByID; el bloqueo
// de fila no aplica en memoria.
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.Stock < p.MinStock {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if r.movements[i].ProductID == productID {
			out = append(out, r.movements[i])
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directo sobre los fakes. Si el callback
// falla restaura el snapshot, emulando el rollback de la transacción real.
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	snapProducts := map[string]entity.Product{}
	for id, p := range r.products.products {
		snapProducts[id] = *p
	}
	snapCount := len(r.movements.movements)

	if err := fn(r.movements, r.products); err != nil {
		restored := map[string]*entity.Product{}
		for id, p := range snapProducts {
			cp := p
			restored[id] = &cp
		}
		r.products.products = restored
		r.movements.movements = r.movements.movements[:snapCount]
		return err
	}
	return nil
}

func newFixture(products ...*entity.Product) (*fakeTxRunner, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movementRepo := &fakeMovementRepo{}
	return &fakeTxRunner{products: productRepo, movements: movementRepo}, productRepo, movementRepo
}

func productoConStock(id string, stock int) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     "Martillo",
		Price:    decimal.RequireFromString("5.00"),
		Stock:    stock,
		MinStock: 2,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaSumaStock(t *testing.T) {
	tx, productRepo, movementRepo := newFixture(productoConStock("p1", 10))
	uc := inventory.NewRegisterMovementUseCase(tx, productRepo, movementRepo)

	mov, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeIn,
		Quantity:  5,
		Reason:    "Compra a proveedor",
		Actor:     "bodeguero1",
	})
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.Equal(t, entity.MovementTypeIn, mov.Type)
	assert.Equal(t, 5, mov.Quantity)
	assert.Equal(t, "bodeguero1", mov.CreatedBy)

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, 15, p.Stock, "el stock debe quedar en 10+5")
	assert.Len(t, movementRepo.movements, 1)
}

func TestRegisterMovement_SalidaDescuentaStock(t *testing.T) {
	tx, productRepo, movementRepo := newFixture(productoConStock("p1", 10))
	uc := inventory.NewRegisterMovementUseCase(tx, productRepo, movementRepo)

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeOut,
		Quantity:  4,
		Reason:    "Merma",
		Actor:     "bodeguero1",
	})
	require.NoError(t, err)

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, 6, p.Stock)
	assert.Len(t, movementRepo.movements, 1)
}

func TestRegisterMovement_StockInsuficiente(t *testing.T) {
	tx, productRepo, movementRepo := newFixture(productoConStock("p1", 2))
	uc := inventory.NewRegisterMovementUseCase(tx, productRepo, movementRepo)

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeOut,
		Quantity:  5,
		Reason:    "Venta mostrador",
	})
	require.Error(t, err)

	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr), "debe ser InsufficientStockError")
	assert.Equal(t, "Martillo", stockErr.Product)
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, 5, stockErr.Requested)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	// Nada cambió: ni stock ni historial
	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, 2, p.Stock)
	assert.Empty(t, movementRepo.movements)
}

func TestRegisterMovement_ActorVacioQuedaComoSistema(t *testing.T) {
	tx, productRepo, movementRepo := newFixture(productoConStock("p1", 1))
	uc := inventory.NewRegisterMovementUseCase(tx, productRepo, movementRepo)

	mov, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeIn,
		Quantity:  1,
		Reason:    "Reposición",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ActorSystem, mov.CreatedBy)
}

func TestRegisterMovement_EntradasInvalidas(t *testing.T) {
	tx, productRepo, movementRepo := newFixture(productoConStock("p1", 10))
	uc := inventory.NewRegisterMovementUseCase(tx, productRepo, movementRepo)

	casos := []inventory.MovementInput{
		{ProductID: "", Type: entity.MovementTypeIn, Quantity: 1},
		{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 0},
		{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: -3},
		{ProductID: "p1", Type: "transfer", Quantity: 1},
	}
	for _, in := range casos {
		_, err := uc.RegisterMovement(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, movementRepo.movements)
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	tx, productRepo, movementRepo := newFixture()
	uc := inventory.NewRegisterMovementUseCase(tx, productRepo, movementRepo)

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: "no-existe",
		Type:      entity.MovementTypeIn,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustTo
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustTo_SubeStockConMovimientoEntrada(t *testing.T) {
	tx, productRepo, movementRepo := newFixture(productoConStock("p1", 4))
	uc := inventory.NewAdjustStockUseCase(tx)

	out, err := uc.AdjustTo(context.Background(), "p1", 10, "Conteo físico", "bodeguero1")
	require.NoError(t, err)

	assert.True(t, out.Changed)
	assert.Equal(t, 10, out.Stock)
	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, 10, p.Stock)

	require.Len(t, movementRepo.movements, 1, "un ajuste produce exactamente un movimiento")
	mov := movementRepo.movements[0]
	assert.Equal(t, entity.MovementTypeIn, mov.Type)
	assert.Equal(t, 6, mov.Quantity, "la magnitud es |objetivo - actual|")
	assert.Equal(t, "Conteo físico", mov.Reason)
}

func TestAdjustTo_BajaStockConMovimientoSalida(t *testing.T) {
	tx, productRepo, movementRepo := newFixture(productoConStock("p1", 10))
	uc := inventory.NewAdjustStockUseCase(tx)

	out, err := uc.AdjustTo(context.Background(), "p1", 3, "", "bodeguero1")
	require.NoError(t, err)

	assert.True(t, out.Changed)
	assert.Equal(t, 3, out.Stock)
	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, 3, p.Stock)

	require.Len(t, movementRepo.movements, 1)
	mov := movementRepo.movements[0]
	assert.Equal(t, entity.MovementTypeOut, mov.Type)
	assert.Equal(t, 7, mov.Quantity)
	assert.Equal(t, entity.ReasonAdjustment, mov.Reason, "sin motivo explícito usa el por defecto")
}

func TestAdjustTo_MismoValorEsNoOp(t *testing.T) {
	tx, productRepo, movementRepo := newFixture(productoConStock("p1", 7))
	uc := inventory.NewAdjustStockUseCase(tx)

	out, err := uc.AdjustTo(context.Background(), "p1", 7, "Conteo físico", "bodeguero1")
	require.NoError(t, err, "ajustar al valor actual no es un error")

	assert.False(t, out.Changed)
	assert.Equal(t, 7, out.Stock)
	assert.Empty(t, movementRepo.movements, "sin delta no se registra movimiento")

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, 7, p.Stock)
}

func TestAdjustTo_ObjetivoNegativo(t *testing.T) {
	tx, _, _ := newFixture(productoConStock("p1", 5))
	uc := inventory.NewAdjustStockUseCase(tx)

	_, err := uc.AdjustTo(context.Background(), "p1", -1, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustTo_ProductoInexistente(t *testing.T) {
	tx, _, _ := newFixture()
	uc := inventory.NewAdjustStockUseCase(tx)

	_, err := uc.AdjustTo(context.Background(), "no-existe", 5, "", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
