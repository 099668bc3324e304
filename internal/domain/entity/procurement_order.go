package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. La asignación es permisiva: cualquier
// estado válido puede establecerse desde cualquier otro (sin tabla de
// transiciones forward-only).
const (
	OrderStatusPending   = "PENDING"
	OrderStatusApproved  = "APPROVED"
	OrderStatusOrdered   = "ORDERED"
	OrderStatusReceived  = "RECEIVED"
	OrderStatusCancelled = "CANCELLED"
)

// statusLabels etiquetas legibles por estado (usadas en notificaciones).
var statusLabels = map[string]string{
	OrderStatusPending:   "Pending",
	OrderStatusApproved:  "Approved",
	OrderStatusOrdered:   "Ordered",
	OrderStatusReceived:  "Received",
	OrderStatusCancelled: "Cancelled",
}

// ValidOrderStatus verifica que el estado sea uno de los soportados.
func ValidOrderStatus(s string) bool {
	_, ok := statusLabels[s]
	return ok
}

// ProcurementOrder representa una orden de compra a un proveedor.
// TotalAmount es derivado: se recalcula desde los ítems en cada guardado.
type ProcurementOrder struct {
	ID                   string
	OrderNumber          string // único
	SupplierID           string
	Status               string
	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	ActualDeliveryDate   *time.Time
	TotalAmount          decimal.Decimal
	CreatedBy            string
	Notes                string
	Items                []*ProcurementOrderItem
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// StatusLabel devuelve la etiqueta legible del estado actual.
func (o *ProcurementOrder) StatusLabel() string {
	if label, ok := statusLabels[o.Status]; ok {
		return label
	}
	return o.Status
}

// CalculateTotal suma los subtotales de todos los ítems.
func (o *ProcurementOrder) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// IsTerminal indica si el estado no admite entrega pendiente.
func (o *ProcurementOrder) IsTerminal() bool {
	return o.Status == OrderStatusReceived || o.Status == OrderStatusCancelled
}

// IsOverdue indica si la orden está vencida: tiene fecha esperada de entrega,
// no está en estado terminal y now supera esa fecha. Función pura.
func (o *ProcurementOrder) IsOverdue(now time.Time) bool {
	if o.ExpectedDeliveryDate == nil || o.IsTerminal() {
		return false
	}
	return now.After(*o.ExpectedDeliveryDate)
}

// ProcurementOrderItem es una línea de la orden: único por (orden, producto).
type ProcurementOrderItem struct {
	ID               string
	OrderID          string
	ProductID        string
	Quantity         int // >= 1
	UnitPrice        decimal.Decimal
	ReceivedQuantity int
}

// Subtotal devuelve cantidad × precio unitario.
func (i *ProcurementOrderItem) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(int64(i.Quantity)).Mul(i.UnitPrice)
}

// IsFullyReceived indica si ya se recibió toda la cantidad pedida.
func (i *ProcurementOrderItem) IsFullyReceived() bool {
	return i.ReceivedQuantity >= i.Quantity
}
