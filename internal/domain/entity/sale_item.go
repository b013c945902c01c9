package entity

import "github.com/shopspring/decimal"

// SaleItem representa una línea de una venta.
// UnitPrice es una foto del precio del producto al momento de la venta;
// Subtotal = Quantity × UnitPrice, recalculado siempre al persistir.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
