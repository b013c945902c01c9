package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jfsolarte/inventario-ventas/internal/domain"
	"github.com/jfsolarte/inventario-ventas/internal/domain/entity"
	"github.com/jfsolarte/inventario-ventas/internal/domain/repository"
)

// RegisterMovementUseCase es el libro mayor de stock: registra entradas y
// salidas de forma transaccional con bloqueo de fila (SELECT FOR UPDATE)
// y Commit/Rollback. Todo cambio de existencias pasa por aquí.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, productRepo: productRepo, movementRepo: movementRepo}
}

// MovementInput entrada para registrar un movimiento manual.
// Actor vacío se registra como entity.ActorSystem.
type MovementInput struct {
	ProductID string
	Type      string // in | out
	Quantity  int
	Reason    string
	Actor     string
}

// RegisterMovement valida la entrada, inicia una transacción, bloquea la fila
// del producto y aplica el movimiento. Para salidas con cantidad mayor al
// stock disponible retorna *domain.InsufficientStockError y no toca nada.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, error) {
	if input.ProductID == "" || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Type != entity.MovementTypeIn && input.Type != entity.MovementTypeOut {
		return nil, domain.ErrInvalidInput
	}

	// Existencia del producto fuera de la tx (solo lectura)
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var mov *entity.StockMovement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Relee con bloqueo dentro de la tx: el stock pudo cambiar
		locked, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		mov, err = ApplyMovementInTx(movRepo, productRepo, locked,
			input.Type, input.Quantity, input.Reason, input.Actor, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// ApplyMovementInTx aplica un movimiento usando los repositorios del caller
// (misma transacción). El producto debe venir ya bloqueado con GetForUpdate.
// Crea el registro inmutable y actualiza el stock en la misma tx; si retorna
// error, el caller debe hacer rollback.
func ApplyMovementInTx(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	product *entity.Product,
	movType string,
	quantity int,
	reason, actor string,
	now time.Time,
) (*entity.StockMovement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if actor == "" {
		actor = entity.ActorSystem
	}

	newStock := product.Stock
	switch movType {
	case entity.MovementTypeIn:
		newStock += quantity
	case entity.MovementTypeOut:
		if product.Stock < quantity {
			return nil, &domain.InsufficientStockError{
				Product:   product.Name,
				Available: product.Stock,
				Requested: quantity,
			}
		}
		newStock -= quantity
	default:
		return nil, domain.ErrInvalidInput
	}

	if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
		return nil, err
	}
	product.Stock = newStock

	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Type:      movType,
		Quantity:  quantity,
		Reason:    reason,
		CreatedBy: actor,
		CreatedAt: now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// ListByProduct movimientos recientes de un producto (historial, inmutable).
func (uc *RegisterMovementUseCase) ListByProduct(productID string, limit int) ([]*entity.StockMovement, error) {
	if limit <= 0 {
		limit = 10
	}
	return uc.movementRepo.ListByProduct(productID, limit)
}
