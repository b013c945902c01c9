package repository

import "github.com/jfsolarte/inventario-ventas/internal/domain/entity"

// ProductRepository puerto de persistencia de productos.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene sentido dentro
// de una transacción. UpdateStock es el único camino de escritura de stock y
// lo usa exclusivamente el motor de inventario.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, stock int) error
	Delete(id string) error
}
