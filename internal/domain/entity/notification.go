package entity

import "time"

// Tipos de notificación.
const (
	NotificationLowStock       = "LOW_STOCK"
	NotificationOrderDue       = "ORDER_DUE"
	NotificationOrderOverdue   = "ORDER_OVERDUE"
	NotificationStockParity    = "STOCK_PARITY"
	NotificationSupplierRating = "SUPPLIER_RATING"
	NotificationPRAlert        = "PR_ALERT"
	NotificationPOAlert        = "PO_ALERT"
	NotificationInvoiceAlert   = "INVOICE_ALERT"
)

// Prioridades de notificación.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

// Notification es una alerta tipificada del sistema. RelatedID/RelatedType
// son una referencia débil a la entidad que la originó: el despachador
// nunca la desreferencia. Solo muta vía marcar-como-leída.
type Notification struct {
	ID          string
	Title       string
	Message     string
	Type        string
	Priority    string
	IsRead      bool
	UserID      string // destinatario opcional; vacío = broadcast
	RelatedID   string
	RelatedType string // nombre de la entidad relacionada: Product, ProcurementOrder...
	CreatedAt   time.Time
}
