package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcurementSummaryResult resume las órdenes de una ventana de tiempo.
type ProcurementSummaryResult struct {
	TotalValue  decimal.Decimal
	TotalOrders int
	ByStatus    map[string]int
}

// SupplierValueResult es un proveedor rankeado por valor de órdenes.
type SupplierValueResult struct {
	SupplierID      string
	SupplierName    string
	OrderCount      int
	TotalOrderValue decimal.Decimal
}

// DashboardCounts agrupa los contadores del tablero.
type DashboardCounts struct {
	TotalProducts       int
	LowStockProducts    int
	OutOfStockProducts  int
	TotalStockValue     decimal.Decimal
	PendingOrders       int
	TotalOrders         int
	ActiveSuppliers     int
	UnresolvedParities  int
	UnreadNotifications int
}

// ReportRepository define el puerto de consultas read-only de reportería.
// Solo agrega y agrupa; las reglas de negocio viven en los otros motores.
type ReportRepository interface {
	ProcurementSummary(since time.Time) (*ProcurementSummaryResult, error)
	TopSuppliersByValue(since time.Time, limit int) ([]*SupplierValueResult, error)
	DashboardCounts() (*DashboardCounts, error)
}
