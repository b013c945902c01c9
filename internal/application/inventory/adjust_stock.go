package inventory

import (
	"context"
	"time"

	"github.com/jfsolarte/inventario-ventas/internal/domain"
	"github.com/jfsolarte/inventario-ventas/internal/domain/entity"
	"github.com/jfsolarte/inventario-ventas/internal/domain/repository"
)

// AdjustStockUseCase lleva el stock de un producto a un valor absoluto.
// No escribe el valor directamente: deriva el delta contra el stock actual
// y lo aplica como un movimiento normal, de modo que el historial de
// movimientos siempre explica el stock registrado.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// AdjustResult resultado del ajuste. Changed=false: el stock ya estaba en el
// objetivo y no se creó ningún movimiento.
type AdjustResult struct {
	ProductID string
	Stock     int
	Changed   bool
}

// AdjustTo fija el stock del producto en target.
//   - target < 0 → domain.ErrInvalidInput.
//   - delta == 0 → no-op informativo (Changed=false), cero movimientos.
//   - delta != 0 → un único movimiento con dirección según el signo y
//     magnitud |delta|; el stock resultante es exactamente target.
func (uc *AdjustStockUseCase) AdjustTo(ctx context.Context, productID string, target int, reason, actor string) (*AdjustResult, error) {
	if productID == "" || target < 0 {
		return nil, domain.ErrInvalidInput
	}
	if reason == "" {
		reason = entity.ReasonAdjustment
	}

	now := time.Now()
	var result *AdjustResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		delta := target - product.Stock
		if delta == 0 {
			result = &AdjustResult{ProductID: productID, Stock: product.Stock, Changed: false}
			return nil
		}

		movType := entity.MovementTypeIn
		quantity := delta
		if delta < 0 {
			movType = entity.MovementTypeOut
			quantity = -delta
		}
		// ApplyMovementInTx deja product.Stock == target; una sola escritura
		if _, err := ApplyMovementInTx(movRepo, productRepo, product, movType, quantity, reason, actor, now); err != nil {
			return err
		}
		result = &AdjustResult{ProductID: productID, Stock: product.Stock, Changed: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
