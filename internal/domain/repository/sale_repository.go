package repository

import (
	"time"

	"github.com/jfsolarte/inventario-ventas/internal/domain/entity"
)

// SaleRepository puerto de persistencia de ventas y sus items.
// NextNumber devuelve el siguiente consecutivo (MAX(number)+1, 1 si no hay
// ventas); la unicidad real la garantiza el constraint único sobre code.
// Delete elimina la cabecera; los items caen en cascada.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.Sale, error)
	NextNumber() (int, error)
	Delete(id string) error
}
