package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock se modifica únicamente aplicando movimientos (paquete inventory);
// el CRUD de productos nunca escribe la columna stock directamente.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, no negativo
	Stock       int             // existencias actuales, invariante: stock >= 0
	MinStock    int             // umbral de stock mínimo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock indica si el producto está por debajo de su stock mínimo.
func (p *Product) LowStock() bool {
	return p.Stock < p.MinStock
}
