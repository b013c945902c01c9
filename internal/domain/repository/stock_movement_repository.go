package repository

import "github.com/jfsolarte/inventario-ventas/internal/domain/entity"

// StockMovementRepository puerto de persistencia de movimientos de stock.
// Los movimientos son inmutables: solo Create y lecturas, sin Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, limit int) ([]*entity.StockMovement, error)
}
