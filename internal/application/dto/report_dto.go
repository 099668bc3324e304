package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcurementSummaryDTO resumen de compras en una ventana de días.
type ProcurementSummaryDTO struct {
	Days        int             `json:"days"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	TotalValue  decimal.Decimal `json:"total_value"`
	TotalOrders int             `json:"total_orders"`
	ByStatus    map[string]int  `json:"orders_by_status"`
}

// TopSupplierDTO proveedor rankeado por valor de órdenes en la ventana.
type TopSupplierDTO struct {
	SupplierID      string          `json:"supplier_id"`
	SupplierName    string          `json:"supplier_name"`
	OrderCount      int             `json:"order_count"`
	TotalOrderValue decimal.Decimal `json:"total_order_value"`
}

// DashboardDTO contadores del tablero principal.
type DashboardDTO struct {
	TotalProducts       int             `json:"total_products"`
	LowStockProducts    int             `json:"low_stock_products"`
	OutOfStockProducts  int             `json:"out_of_stock_products"`
	TotalStockValue     decimal.Decimal `json:"total_stock_value"`
	PendingOrders       int             `json:"pending_orders"`
	OverdueOrders       int             `json:"overdue_orders"`
	TotalOrders         int             `json:"total_orders"`
	ActiveSuppliers     int             `json:"active_suppliers"`
	UnresolvedParities  int             `json:"unresolved_parities"`
	UnreadNotifications int             `json:"unread_notifications"`
}
