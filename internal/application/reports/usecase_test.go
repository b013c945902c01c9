package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfsolarte/inventario-ventas/internal/application/reports"
	"github.com/jfsolarte/inventario-ventas/internal/domain/entity"
	"github.com/jfsolarte/inventario-ventas/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de solo lectura
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	buckets      []repository.SalesBucket
	topProducts  []repository.ProductSalesResult
	topCustomers []repository.CustomerSalesResult
	totals       repository.SalesTotals
	allTime      repository.SalesTotals
}

func (r *fakeReportRepo) SalesByDay(ctx context.Context, from, to time.Time) ([]repository.SalesBucket, error) {
	return r.buckets, nil
}

func (r *fakeReportRepo) SalesByMonth(ctx context.Context, from, to time.Time) ([]repository.SalesBucket, error) {
	return r.buckets, nil
}

func (r *fakeReportRepo) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.ProductSalesResult, error) {
	return r.topProducts, nil
}

func (r *fakeReportRepo) TopCustomers(ctx context.Context, from, to time.Time, limit int) ([]repository.CustomerSalesResult, error) {
	return r.topCustomers, nil
}

func (r *fakeReportRepo) Totals(ctx context.Context, from, to time.Time) (repository.SalesTotals, error) {
	return r.totals, nil
}

func (r *fakeReportRepo) TotalsAllTime(ctx context.Context) (repository.SalesTotals, error) {
	return r.allTime, nil
}

type stubProductRepo struct {
	lowStock []*entity.Product
}

func (r *stubProductRepo) Create(*entity.Product) error                   { return nil }
func (r *stubProductRepo) GetByID(string) (*entity.Product, error)       { return nil, nil }
func (r *stubProductRepo) GetForUpdate(string) (*entity.Product, error)  { return nil, nil }
func (r *stubProductRepo) List(int, int) ([]*entity.Product, error)      { return nil, nil }
func (r *stubProductRepo) ListLowStock() ([]*entity.Product, error)      { return r.lowStock, nil }
func (r *stubProductRepo) Update(*entity.Product) error                  { return nil }
func (r *stubProductRepo) UpdateStock(string, int) error                 { return nil }
func (r *stubProductRepo) Delete(string) error                           { return nil }

type stubSaleRepo struct {
	latest []*entity.Sale
}

func (r *stubSaleRepo) Create(*entity.Sale) error                     { return nil }
func (r *stubSaleRepo) CreateItem(*entity.SaleItem) error             { return nil }
func (r *stubSaleRepo) GetByID(string) (*entity.Sale, error)          { return nil, nil }
func (r *stubSaleRepo) GetItemsBySaleID(string) ([]*entity.SaleItem, error) {
	return nil, nil
}
func (r *stubSaleRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Sale, error) {
	return r.latest, nil
}
func (r *stubSaleRepo) NextNumber() (int, error) { return 1, nil }
func (r *stubSaleRepo) Delete(string) error      { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Statistics
// ──────────────────────────────────────────────────────────────────────────────

func TestStatistics_PromedioProtegeDivisionPorCero(t *testing.T) {
	uc := reports.NewUseCase(
		&fakeReportRepo{
			totals:  repository.SalesTotals{Total: decimal.Zero, Count: 0},
			allTime: repository.SalesTotals{Total: decimal.Zero, Count: 0},
		},
		&stubProductRepo{},
		&stubSaleRepo{},
	)

	out, err := uc.Statistics(context.Background(), 30)
	require.NoError(t, err, "sin ventas no es un error")

	assert.Equal(t, 0, out.Overall.Count)
	assert.True(t, out.Overall.Average.IsZero(), "promedio sin ventas es cero, no división por cero")
	assert.True(t, out.PeriodSummary.Average.IsZero())
}

func TestStatistics_PromedioCalculado(t *testing.T) {
	uc := reports.NewUseCase(
		&fakeReportRepo{
			totals:  repository.SalesTotals{Total: decimal.RequireFromString("100.00"), Count: 4},
			allTime: repository.SalesTotals{Total: decimal.RequireFromString("250.50"), Count: 3},
		},
		&stubProductRepo{},
		&stubSaleRepo{},
	)

	out, err := uc.Statistics(context.Background(), 0) // 0 → lookback por defecto
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("25.00").Equal(out.PeriodSummary.Average), "100 / 4")
	assert.True(t, decimal.RequireFromString("83.50").Equal(out.Overall.Average), "250.50 / 3 redondeado a 2")
}

func TestStatistics_FormateaPeriodos(t *testing.T) {
	day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	uc := reports.NewUseCase(
		&fakeReportRepo{
			buckets: []repository.SalesBucket{
				{Period: day, Total: decimal.RequireFromString("40.00"), Count: 2},
			},
		},
		&stubProductRepo{},
		&stubSaleRepo{},
	)

	out, err := uc.Statistics(context.Background(), 30)
	require.NoError(t, err)

	require.Len(t, out.SalesByDay, 1)
	assert.Equal(t, "2025-03-15", out.SalesByDay[0].Period)
	require.Len(t, out.SalesByMonth, 1)
	assert.Equal(t, "2025-03", out.SalesByMonth[0].Period)
}

func TestFilteredStatistics_FechaInvalida(t *testing.T) {
	uc := reports.NewUseCase(&fakeReportRepo{}, &stubProductRepo{}, &stubSaleRepo{})

	_, err := uc.FilteredStatistics(context.Background(), "15-03-2025", "")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_ArmaResumen(t *testing.T) {
	lowStock := []*entity.Product{
		{ID: "p1", Name: "Martillo", Price: decimal.RequireFromString("5.00"), Stock: 1, MinStock: 3},
	}
	latest := []*entity.Sale{
		{ID: "s1", Code: "VNT-000007", CustomerID: "c1", Total: decimal.RequireFromString("15.00")},
	}
	uc := reports.NewUseCase(
		&fakeReportRepo{
			totals: repository.SalesTotals{Total: decimal.RequireFromString("60.00"), Count: 2},
		},
		&stubProductRepo{lowStock: lowStock},
		&stubSaleRepo{latest: latest},
	)

	out, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.TodayCount)
	assert.True(t, decimal.RequireFromString("60.00").Equal(out.TodayTotal))
	require.Len(t, out.LowStock, 1)
	assert.True(t, out.LowStock[0].LowStock)
	require.Len(t, out.LatestSales, 1)
	assert.Equal(t, "VNT-000007", out.LatestSales[0].Code)
}
