package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea solicitada en una venta. Remove marca la línea para
// descartarla antes de validar (equivalente al DELETE del formulario).
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Remove    bool   `json:"remove"`
}

// CreateSaleRequest creación de una venta multi-línea.
type CreateSaleRequest struct {
	CustomerID string            `json:"customer_id"`
	Items      []SaleItemRequest `json:"items"`
}

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta completa en respuestas.
type SaleResponse struct {
	ID           string             `json:"id"`
	Code         string             `json:"code"`
	CustomerID   string             `json:"customer_id"`
	CustomerName string             `json:"customer_name,omitempty"`
	Date         time.Time          `json:"date"`
	Total        decimal.Decimal    `json:"total"`
	Items        []SaleItemResponse `json:"items"`
}

// ListSalesRequest filtros del listado de ventas.
type ListSalesRequest struct {
	From string `query:"from"` // YYYY-MM-DD
	To   string `query:"to"`
	PageRequest
}
