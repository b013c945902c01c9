package dto

import "github.com/shopspring/decimal"

// SalesBucketDTO agregado por día o mes.
type SalesBucketDTO struct {
	Period string          `json:"period"` // YYYY-MM-DD o YYYY-MM
	Total  decimal.Decimal `json:"total"`
	Count  int             `json:"count"`
}

// TopProductDTO producto más vendido.
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitsSold   int             `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// TopCustomerDTO cliente que más compra.
type TopCustomerDTO struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Purchases    int             `json:"purchases"`
	Spent        decimal.Decimal `json:"spent"`
}

// SalesSummaryDTO totales y promedio; el promedio es cero cuando no hay
// ventas, nunca un error de división.
type SalesSummaryDTO struct {
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
	Average decimal.Decimal `json:"average"`
}

// StatisticsDTO respuesta de GET /reports/statistics.
type StatisticsDTO struct {
	SalesByDay    []SalesBucketDTO `json:"sales_by_day"`
	SalesByMonth  []SalesBucketDTO `json:"sales_by_month"`
	TopProducts   []TopProductDTO  `json:"top_products"`
	TopCustomers  []TopCustomerDTO `json:"top_customers"`
	Overall       SalesSummaryDTO  `json:"overall"`
	PeriodSummary SalesSummaryDTO  `json:"period_summary"`
}

// FilteredStatisticsDTO respuesta de GET /reports/sales?from=&to=.
type FilteredStatisticsDTO struct {
	Summary     SalesSummaryDTO  `json:"summary"`
	SalesByDay  []SalesBucketDTO `json:"sales_by_day"`
	TopProducts []TopProductDTO  `json:"top_products"`
}

// DashboardDTO resumen del dashboard principal.
type DashboardDTO struct {
	TodayCount    int               `json:"today_count"`
	TodayTotal    decimal.Decimal   `json:"today_total"`
	MonthCount    int               `json:"month_count"`
	MonthTotal    decimal.Decimal   `json:"month_total"`
	LowStock      []ProductResponse `json:"low_stock"`
	LatestSales   []SaleResponse    `json:"latest_sales"`
}
