package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// ReportRepository implementación PostgreSQL de consultas de reportería.
// Solo lecturas agregadas; ninguna regla de negocio vive aquí.
type ReportRepository struct {
	db Querier
}

// NewReportRepository crea el repositorio.
func NewReportRepository(db Querier) repository.ReportRepository {
	return &ReportRepository{db: db}
}

// ProcurementSummary agrega valor total, cantidad de órdenes y conteo por
// estado dentro de la ventana de tiempo.
func (r *ReportRepository) ProcurementSummary(since time.Time) (*repository.ProcurementSummaryResult, error) {
	ctx := context.Background()
	result := &repository.ProcurementSummaryResult{ByStatus: map[string]int{}}

	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM procurement_orders
		WHERE order_date >= $1`, since,
	).Scan(&result.TotalValue, &result.TotalOrders)
	if err != nil {
		return nil, fmt.Errorf("resumen de compras: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT status, COUNT(*)
		FROM procurement_orders
		WHERE order_date >= $1
		GROUP BY status`, since)
	if err != nil {
		return nil, fmt.Errorf("resumen por estado: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		result.ByStatus[status] = count
	}
	return result, rows.Err()
}

// TopSuppliersByValue rankea proveedores por valor total de órdenes en la ventana.
func (r *ReportRepository) TopSuppliersByValue(since time.Time, limit int) ([]*repository.SupplierValueResult, error) {
	query := `
		SELECT s.id, s.name, COUNT(o.id), COALESCE(SUM(o.total_amount), 0)
		FROM suppliers s
		JOIN procurement_orders o ON o.supplier_id = s.id
		WHERE o.order_date >= $1
		GROUP BY s.id, s.name
		ORDER BY SUM(o.total_amount) DESC
		LIMIT $2`
	rows, err := r.db.Query(context.Background(), query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("ranking de proveedores: %w", err)
	}
	defer rows.Close()

	var results []*repository.SupplierValueResult
	for rows.Next() {
		var v repository.SupplierValueResult
		err := rows.Scan(&v.SupplierID, &v.SupplierName, &v.OrderCount, &v.TotalOrderValue)
		if err != nil {
			return nil, err
		}
		results = append(results, &v)
	}
	return results, rows.Err()
}

// DashboardCounts agrega todos los contadores del tablero en una sola consulta.
func (r *ReportRepository) DashboardCounts() (*repository.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products WHERE is_active = true),
			(SELECT COUNT(*) FROM products WHERE is_active = true AND current_stock <= reorder_level),
			(SELECT COUNT(*) FROM products WHERE is_active = true AND current_stock = 0),
			(SELECT COALESCE(SUM(current_stock * unit_price), 0) FROM products WHERE is_active = true),
			(SELECT COUNT(*) FROM procurement_orders WHERE status = $1),
			(SELECT COUNT(*) FROM procurement_orders),
			(SELECT COUNT(*) FROM suppliers WHERE is_active = true),
			(SELECT COUNT(*) FROM stock_parities WHERE resolved = false),
			(SELECT COUNT(*) FROM notifications WHERE is_read = false)`
	var counts repository.DashboardCounts
	err := r.db.QueryRow(context.Background(), query, entity.OrderStatusPending).Scan(
		&counts.TotalProducts, &counts.LowStockProducts, &counts.OutOfStockProducts,
		&counts.TotalStockValue, &counts.PendingOrders, &counts.TotalOrders,
		&counts.ActiveSuppliers, &counts.UnresolvedParities, &counts.UnreadNotifications,
	)
	if err != nil {
		return nil, fmt.Errorf("contadores de tablero: %w", err)
	}
	return &counts, nil
}
