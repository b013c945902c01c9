package repository

import "github.com/jfsolarte/inventario-ventas/internal/domain/entity"

// CustomerRepository puerto de persistencia de clientes.
// Delete retorna domain.ErrDependencyExists si el cliente tiene ventas.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
