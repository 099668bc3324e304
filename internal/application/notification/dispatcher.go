// Package notification implementa el despachador de alertas del sistema:
// creación tipificada, alertas de compras (PR/PO/Invoice) y chequeo de
// stock bajo. Consume los eventos de dominio que emite el motor de compras.
package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-procurement/internal/domain"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/event"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
	"github.com/tu-usuario/erp-procurement/pkg/logger"
)

// Clases de alerta de compras.
const (
	AlertPR      = "PR"      // solicitud de compra creada
	AlertPO      = "PO"      // cambio de estado de la orden
	AlertInvoice = "Invoice" // mercancía recibida
)

// Dispatcher crea y despacha notificaciones. Las fallas al despachar eventos
// de órdenes se registran en el log y nunca se propagan al guardado que las
// originó.
type Dispatcher struct {
	notifRepo      repository.NotificationRepository
	productRepo    repository.ProductRepository
	supplierRepo   repository.SupplierRepository
	log            *logger.Logger
	dedupeLowStock bool
}

// NewDispatcher construye el despachador. dedupeLowStock evita alertas
// LOW_STOCK repetidas mientras exista una sin leer para el mismo producto.
func NewDispatcher(
	notifRepo repository.NotificationRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	log *logger.Logger,
	dedupeLowStock bool,
) *Dispatcher {
	return &Dispatcher{
		notifRepo:      notifRepo,
		productRepo:    productRepo,
		supplierRepo:   supplierRepo,
		log:            log,
		dedupeLowStock: dedupeLowStock,
	}
}

// CreateInput parámetros para crear una notificación.
type CreateInput struct {
	Title       string
	Message     string
	Type        string
	Priority    string // vacío = MEDIUM
	UserID      string // destinatario opcional
	RelatedID   string // referencia débil, nunca se desreferencia
	RelatedType string
}

// Create persiste una notificación nueva. Siempre tiene éxito salvo falla
// de almacenamiento.
func (d *Dispatcher) Create(in CreateInput) (*entity.Notification, error) {
	if in.Title == "" || in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Priority == "" {
		in.Priority = entity.PriorityMedium
	}
	n := &entity.Notification{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Message:     in.Message,
		Type:        in.Type,
		Priority:    in.Priority,
		UserID:      in.UserID,
		RelatedID:   in.RelatedID,
		RelatedType: in.RelatedType,
		CreatedAt:   time.Now(),
	}
	if err := d.notifRepo.Create(n); err != nil {
		return nil, err
	}
	return n, nil
}

// ProcurementAlert crea la alerta de compras según la clase (PR, PO, Invoice).
// Prioridad HIGH si la orden está PENDING, MEDIUM en cualquier otro estado.
func (d *Dispatcher) ProcurementAlert(order *entity.ProcurementOrder, kind string) (*entity.Notification, error) {
	supplierName := d.supplierName(order.SupplierID)
	amount := order.TotalAmount.StringFixed(2)

	var title, message, notifType string
	switch kind {
	case AlertPR:
		title = fmt.Sprintf("Purchase Request Created: %s", order.OrderNumber)
		message = fmt.Sprintf("A new purchase request has been created for %s with total amount $%s", supplierName, amount)
		notifType = entity.NotificationPRAlert
	case AlertPO:
		title = fmt.Sprintf("Purchase Order Status Update: %s", order.OrderNumber)
		message = fmt.Sprintf("Purchase order %s status changed to %s", order.OrderNumber, order.StatusLabel())
		notifType = entity.NotificationPOAlert
	case AlertInvoice:
		title = fmt.Sprintf("Invoice Received: %s", order.OrderNumber)
		message = fmt.Sprintf("Invoice received for order %s from %s. Amount: $%s", order.OrderNumber, supplierName, amount)
		notifType = entity.NotificationInvoiceAlert
	default:
		return nil, domain.ErrInvalidInput
	}

	priority := entity.PriorityMedium
	if order.Status == entity.OrderStatusPending {
		priority = entity.PriorityHigh
	}

	return d.Create(CreateInput{
		Title:       title,
		Message:     message,
		Type:        notifType,
		Priority:    priority,
		RelatedID:   order.ID,
		RelatedType: "ProcurementOrder",
	})
}

// DispatchOrderEvents convierte los eventos del motor de compras en alertas.
// Se invoca después del commit de la orden; cualquier falla se loguea y se
// descarta para no revertir ni fallar el guardado.
func (d *Dispatcher) DispatchOrderEvents(events []event.Event) {
	for _, ev := range events {
		var err error
		switch e := ev.(type) {
		case event.OrderCreated:
			_, err = d.ProcurementAlert(e.Order, AlertPR)
		case event.OrderStatusChanged:
			_, err = d.ProcurementAlert(e.Order, AlertPO)
		case event.OrderReceived:
			_, err = d.ProcurementAlert(e.Order, AlertInvoice)
		default:
			d.log.Warn().Str("event", ev.Name()).Msg("evento de orden sin manejador")
			continue
		}
		if err != nil {
			d.log.Error().Err(err).Str("event", ev.Name()).Msg("falla al crear notificación de compras")
		}
	}
}

// CheckLowStockAlerts emite una alerta LOW_STOCK por cada producto bajo o
// agotado: HIGH si el stock es exactamente cero, MEDIUM en otro caso.
// Con deduplicación activa omite productos que ya tienen una alerta sin leer.
// Devuelve cuántas alertas se crearon.
func (d *Dispatcher) CheckLowStockAlerts() (int, error) {
	lowStock, err := d.productRepo.ListLowStock()
	if err != nil {
		return 0, err
	}
	created := 0
	for _, p := range lowStock {
		if d.dedupeLowStock {
			exists, err := d.notifRepo.HasUnread(entity.NotificationLowStock, "Product", p.ID)
			if err != nil {
				return created, err
			}
			if exists {
				continue
			}
		}
		priority := entity.PriorityMedium
		if p.CurrentStock == 0 {
			priority = entity.PriorityHigh
		}
		_, err := d.Create(CreateInput{
			Title:       fmt.Sprintf("Low Stock Alert: %s", p.Name),
			Message:     fmt.Sprintf("%s (SKU: %s) is below reorder level. Current stock: %d", p.Name, p.SKU, p.CurrentStock),
			Type:        entity.NotificationLowStock,
			Priority:    priority,
			RelatedID:   p.ID,
			RelatedType: "Product",
		})
		if err != nil {
			d.log.Error().Err(err).Str("product_id", p.ID).Msg("falla al crear alerta de stock bajo")
			continue
		}
		created++
	}
	return created, nil
}

// Get devuelve la notificación o ErrNotFound.
func (d *Dispatcher) Get(id string) (*entity.Notification, error) {
	n, err := d.notifRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	return n, nil
}

// MarkAsRead marca la notificación como leída. Idempotente.
func (d *Dispatcher) MarkAsRead(id string) error {
	return d.notifRepo.MarkAsRead(id)
}

// List devuelve notificaciones por estado de lectura.
func (d *Dispatcher) List(isRead bool, limit, offset int) ([]*entity.Notification, error) {
	return d.notifRepo.List(isRead, limit, offset)
}

// CountUnread cuenta las notificaciones sin leer.
func (d *Dispatcher) CountUnread() (int, error) {
	return d.notifRepo.CountUnread()
}

// supplierName resuelve el nombre del proveedor para armar mensajes; si no
// se puede cargar, usa el ID como degradación.
func (d *Dispatcher) supplierName(supplierID string) string {
	supplier, err := d.supplierRepo.GetByID(supplierID)
	if err != nil || supplier == nil {
		return supplierID
	}
	return supplier.Name
}
