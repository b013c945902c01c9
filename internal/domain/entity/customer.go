package entity

import "time"

// Customer representa un cliente.
// Es referenciado por ventas con borrado protegido: no se puede eliminar
// mientras tenga ventas asociadas.
type Customer struct {
	ID        string
	Name      string
	LastName  string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName nombre completo para listados y facturas.
func (c *Customer) FullName() string {
	if c.LastName == "" {
		return c.Name
	}
	return c.Name + " " + c.LastName
}
