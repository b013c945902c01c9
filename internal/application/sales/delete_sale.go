package sales

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jfsolarte/inventario-ventas/internal/application/inventory"
	"github.com/jfsolarte/inventario-ventas/internal/domain"
	"github.com/jfsolarte/inventario-ventas/internal/domain/entity"
	"github.com/jfsolarte/inventario-ventas/internal/domain/repository"
)

// DeleteSaleUseCase reversa una venta: restaura el stock de cada línea y
// elimina la venta (los items caen en cascada), todo en una transacción.
type DeleteSaleUseCase struct {
	txRunner SalesTxRunner
}

// NewDeleteSaleUseCase construye el caso de uso.
func NewDeleteSaleUseCase(txRunner SalesTxRunner) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{txRunner: txRunner}
}

// DeleteSale elimina la venta restaurando primero las existencias.
// Una segunda llamada sobre la misma venta falla con domain.ErrNotFound:
// la restauración nunca se acredita dos veces.
func (uc *DeleteSaleUseCase) DeleteSale(ctx context.Context, saleID, actor string) error {
	if saleID == "" {
		return domain.ErrInvalidInput
	}
	if actor == "" {
		actor = entity.ActorSystem
	}
	now := time.Now()

	var code string
	err := uc.txRunner.RunSales(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		code = sale.Code

		items, err := saleRepo.GetItemsBySaleID(saleID)
		if err != nil {
			return err
		}
		for _, item := range items {
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			// Entrada de reversa por el libro mayor: el historial explica
			// la restauración igual que explicó el descuento.
			if _, err := inventory.ApplyMovementInTx(
				movRepo, productRepo, product,
				entity.MovementTypeIn, item.Quantity,
				"Reversión venta "+sale.Code, actor, now,
			); err != nil {
				return err
			}
		}
		return saleRepo.Delete(saleID)
	})
	if err != nil {
		return err
	}

	log.Info().Str("code", code).Msg("venta eliminada y stock restaurado")
	return nil
}
