// Package reports contiene los casos de uso de solo lectura para reportes,
// estadísticas de ventas y el dashboard principal.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jfsolarte/inventario-ventas/internal/application/dto"
	"github.com/jfsolarte/inventario-ventas/internal/domain"
	"github.com/jfsolarte/inventario-ventas/internal/domain/repository"
)

const (
	defaultLookbackDays = 30
	topLimit            = 10
	dashboardLatest     = 5
)

// UseCase agregación read-only sobre el historial de ventas y movimientos.
// No muta nada; toda la aritmética de promedios protege la división por cero
// devolviendo cero, nunca un error.
type UseCase struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	reportRepo repository.ReportRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) *UseCase {
	return &UseCase{reportRepo: reportRepo, productRepo: productRepo, saleRepo: saleRepo}
}

// Statistics estadísticas del período de lookback (días hacia atrás desde
// hoy; 30 por defecto) más los totales históricos.
func (uc *UseCase) Statistics(ctx context.Context, days int) (*dto.StatisticsDTO, error) {
	if days <= 0 {
		days = defaultLookbackDays
	}
	now := time.Now()
	from := now.AddDate(0, 0, -days)

	byDay, err := uc.reportRepo.SalesByDay(ctx, from, now)
	if err != nil {
		return nil, err
	}
	byMonth, err := uc.reportRepo.SalesByMonth(ctx, from, now)
	if err != nil {
		return nil, err
	}
	topProducts, err := uc.reportRepo.TopProducts(ctx, from, now, topLimit)
	if err != nil {
		return nil, err
	}
	topCustomers, err := uc.reportRepo.TopCustomers(ctx, from, now, topLimit)
	if err != nil {
		return nil, err
	}
	overall, err := uc.reportRepo.TotalsAllTime(ctx)
	if err != nil {
		return nil, err
	}
	period, err := uc.reportRepo.Totals(ctx, from, now)
	if err != nil {
		return nil, err
	}

	return &dto.StatisticsDTO{
		SalesByDay:    toBuckets(byDay, "2006-01-02"),
		SalesByMonth:  toBuckets(byMonth, "2006-01"),
		TopProducts:   toTopProducts(topProducts),
		TopCustomers:  toTopCustomers(topCustomers),
		Overall:       toSummary(overall),
		PeriodSummary: toSummary(period),
	}, nil
}

// FilteredStatistics estadísticas de un rango de fechas explícito.
func (uc *UseCase) FilteredStatistics(ctx context.Context, fromStr, toStr string) (*dto.FilteredStatisticsDTO, error) {
	now := time.Now()
	from := time.Time{}
	to := now
	if fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		from = t
	}
	if toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		to = t.Add(24*time.Hour - time.Nanosecond)
	}

	totals, err := uc.reportRepo.Totals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	byDay, err := uc.reportRepo.SalesByDay(ctx, from, to)
	if err != nil {
		return nil, err
	}
	topProducts, err := uc.reportRepo.TopProducts(ctx, from, to, topLimit)
	if err != nil {
		return nil, err
	}

	return &dto.FilteredStatisticsDTO{
		Summary:     toSummary(totals),
		SalesByDay:  toBuckets(byDay, "2006-01-02"),
		TopProducts: toTopProducts(topProducts),
	}, nil
}

// Dashboard resumen del día y del mes en curso, productos con stock bajo y
// últimas ventas. Las consultas de totales corren en paralelo.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type totalsResult struct {
		totals repository.SalesTotals
		err    error
	}
	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)

	go func() {
		t, err := uc.reportRepo.Totals(ctx, todayStart, todayEnd)
		todayCh <- totalsResult{t, err}
	}()
	go func() {
		t, err := uc.reportRepo.Totals(ctx, monthStart, todayEnd)
		monthCh <- totalsResult{t, err}
	}()

	lowStock, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	latest, err := uc.saleRepo.List(nil, nil, dashboardLatest, 0)
	if err != nil {
		return nil, err
	}

	today := <-todayCh
	if today.err != nil {
		return nil, today.err
	}
	month := <-monthCh
	if month.err != nil {
		return nil, month.err
	}

	out := &dto.DashboardDTO{
		TodayCount:  today.totals.Count,
		TodayTotal:  today.totals.Total,
		MonthCount:  month.totals.Count,
		MonthTotal:  month.totals.Total,
		LowStock:    make([]dto.ProductResponse, 0, len(lowStock)),
		LatestSales: make([]dto.SaleResponse, 0, len(latest)),
	}
	for _, p := range lowStock {
		out.LowStock = append(out.LowStock, dto.ProductResponse{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Stock:    p.Stock,
			MinStock: p.MinStock,
			LowStock: true,
		})
	}
	for _, s := range latest {
		out.LatestSales = append(out.LatestSales, dto.SaleResponse{
			ID:         s.ID,
			Code:       s.Code,
			CustomerID: s.CustomerID,
			Date:       s.Date,
			Total:      s.Total,
			Items:      []dto.SaleItemResponse{},
		})
	}
	return out, nil
}

// toSummary calcula el promedio protegiendo la división por cero: conjuntos
// vacíos producen cero, no error.
func toSummary(t repository.SalesTotals) dto.SalesSummaryDTO {
	avg := decimal.Zero
	if t.Count > 0 {
		avg = t.Total.Div(decimal.NewFromInt(int64(t.Count))).Round(2)
	}
	return dto.SalesSummaryDTO{Total: t.Total, Count: t.Count, Average: avg}
}

func toBuckets(in []repository.SalesBucket, layout string) []dto.SalesBucketDTO {
	out := make([]dto.SalesBucketDTO, 0, len(in))
	for _, b := range in {
		out = append(out, dto.SalesBucketDTO{
			Period: b.Period.Format(layout),
			Total:  b.Total,
			Count:  b.Count,
		})
	}
	return out
}

func toTopProducts(in []repository.ProductSalesResult) []dto.TopProductDTO {
	out := make([]dto.TopProductDTO, 0, len(in))
	for _, r := range in {
		out = append(out, dto.TopProductDTO{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			UnitsSold:   r.UnitsSold,
			Revenue:     r.Revenue,
		})
	}
	return out
}

func toTopCustomers(in []repository.CustomerSalesResult) []dto.TopCustomerDTO {
	out := make([]dto.TopCustomerDTO, 0, len(in))
	for _, r := range in {
		out = append(out, dto.TopCustomerDTO{
			CustomerID:   r.CustomerID,
			CustomerName: r.CustomerName,
			Purchases:    r.Purchases,
			Spent:        r.Spent,
		})
	}
	return out
}
