package repository

import "github.com/tu-usuario/erp-procurement/internal/domain/entity"

// SupplierOrderStats agrupa los contadores de órdenes de un proveedor.
// OnTime cuenta órdenes RECEIVED con actual_delivery_date <= expected_delivery_date.
type SupplierOrderStats struct {
	TotalOrders     int
	CompletedOrders int
	OnTimeOrders    int
}

// ProcurementOrderRepository define el puerto de persistencia para órdenes
// de compra y sus ítems. Create y Update persisten la orden con sus ítems.
type ProcurementOrderRepository interface {
	Create(order *entity.ProcurementOrder) error
	GetByID(id string) (*entity.ProcurementOrder, error)
	GetByOrderNumber(orderNumber string) (*entity.ProcurementOrder, error)
	// Update persiste cabecera y reemplaza los ítems de la orden.
	Update(order *entity.ProcurementOrder) error
	List(status, search string, limit, offset int) ([]*entity.ProcurementOrder, error)
	ListBySupplier(supplierID string, limit, offset int) ([]*entity.ProcurementOrder, error)
	// ListOpenWithDeliveryDate: órdenes no terminales con fecha esperada de
	// entrega (candidatas a vencidas; el cálculo de vencimiento es del dominio).
	ListOpenWithDeliveryDate() ([]*entity.ProcurementOrder, error)
	SupplierStats(supplierID string) (*SupplierOrderStats, error)
}
