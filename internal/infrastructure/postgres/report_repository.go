package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jfsolarte/inventario-ventas/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para reportes y dashboard.
// Siempre atado al pool: no participa en transacciones.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesByDay ventas agrupadas por día dentro del rango.
func (r *ReportRepo) SalesByDay(ctx context.Context, from, to time.Time) ([]repository.SalesBucket, error) {
	query := `
		SELECT date_trunc('day', date) AS period, COALESCE(SUM(total), 0), COUNT(*)
		FROM sales WHERE date >= $1 AND date <= $2
		GROUP BY period ORDER BY period`
	return r.scanBuckets(ctx, query, from, to)
}

// SalesByMonth ventas agrupadas por mes dentro del rango.
func (r *ReportRepo) SalesByMonth(ctx context.Context, from, to time.Time) ([]repository.SalesBucket, error) {
	query := `
		SELECT date_trunc('month', date) AS period, COALESCE(SUM(total), 0), COUNT(*)
		FROM sales WHERE date >= $1 AND date <= $2
		GROUP BY period ORDER BY period`
	return r.scanBuckets(ctx, query, from, to)
}

func (r *ReportRepo) scanBuckets(ctx context.Context, query string, from, to time.Time) ([]repository.SalesBucket, error) {
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("sales buckets: %w", err)
	}
	defer rows.Close()
	var list []repository.SalesBucket
	for rows.Next() {
		var b repository.SalesBucket
		if err := rows.Scan(&b.Period, &b.Total, &b.Count); err != nil {
			return nil, fmt.Errorf("scan sales bucket: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// TopProducts productos más vendidos por unidades en el rango.
func (r *ReportRepo) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.ProductSalesResult, error) {
	query := `
		SELECT p.id, p.name, COALESCE(SUM(i.quantity), 0), COALESCE(SUM(i.subtotal), 0)
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		JOIN products p ON p.id = i.product_id
		WHERE s.date >= $1 AND s.date <= $2
		GROUP BY p.id, p.name
		ORDER BY SUM(i.quantity) DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductSalesResult
	for rows.Next() {
		var p repository.ProductSalesResult
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.UnitsSold, &p.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// TopCustomers clientes con más compras en el rango.
func (r *ReportRepo) TopCustomers(ctx context.Context, from, to time.Time, limit int) ([]repository.CustomerSalesResult, error) {
	query := `
		SELECT c.id, c.name || ' ' || c.last_name, COUNT(s.id), COALESCE(SUM(s.total), 0)
		FROM sales s
		JOIN customers c ON c.id = s.customer_id
		WHERE s.date >= $1 AND s.date <= $2
		GROUP BY c.id, c.name, c.last_name
		ORDER BY COUNT(s.id) DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	defer rows.Close()
	var list []repository.CustomerSalesResult
	for rows.Next() {
		var c repository.CustomerSalesResult
		if err := rows.Scan(&c.CustomerID, &c.CustomerName, &c.Purchases, &c.Spent); err != nil {
			return nil, fmt.Errorf("scan top customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Totals total y cantidad de ventas en el rango. COALESCE a cero para que
// un rango vacío devuelva totales en cero y no NULL.
func (r *ReportRepo) Totals(ctx context.Context, from, to time.Time) (repository.SalesTotals, error) {
	var t repository.SalesTotals
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0), COUNT(*) FROM sales WHERE date >= $1 AND date <= $2`,
		from, to,
	).Scan(&t.Total, &t.Count)
	if err != nil {
		return repository.SalesTotals{Total: decimal.Zero}, fmt.Errorf("sales totals: %w", err)
	}
	return t, nil
}

// TotalsAllTime total y cantidad de ventas histórico.
func (r *ReportRepo) TotalsAllTime(ctx context.Context) (repository.SalesTotals, error) {
	var t repository.SalesTotals
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0), COUNT(*) FROM sales`,
	).Scan(&t.Total, &t.Count)
	if err != nil {
		return repository.SalesTotals{Total: decimal.Zero}, fmt.Errorf("sales totals all time: %w", err)
	}
	return t, nil
}
