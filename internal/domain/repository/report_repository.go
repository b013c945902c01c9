package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesBucket agregado de ventas por día o por mes.
type SalesBucket struct {
	Period time.Time
	Total  decimal.Decimal
	Count  int
}

// ProductSalesResult producto más vendido en el período.
type ProductSalesResult struct {
	ProductID   string
	ProductName string
	UnitsSold   int
	Revenue     decimal.Decimal
}

// CustomerSalesResult cliente con más compras en el período.
type CustomerSalesResult struct {
	CustomerID   string
	CustomerName string
	Purchases    int
	Spent        decimal.Decimal
}

// SalesTotals totales globales del período (COALESCE a cero si no hay filas).
type SalesTotals struct {
	Total decimal.Decimal
	Count int
}

// ReportRepository consultas de solo lectura para reportes y dashboard.
// Ninguna de estas operaciones muta estado.
type ReportRepository interface {
	SalesByDay(ctx context.Context, from, to time.Time) ([]SalesBucket, error)
	SalesByMonth(ctx context.Context, from, to time.Time) ([]SalesBucket, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]ProductSalesResult, error)
	TopCustomers(ctx context.Context, from, to time.Time, limit int) ([]CustomerSalesResult, error)
	Totals(ctx context.Context, from, to time.Time) (SalesTotals, error)
	TotalsAllTime(ctx context.Context) (SalesTotals, error)
}
