// Package procurement implementa el motor de órdenes de compra: cálculo del
// total, asignación de estados y emisión de eventos de dominio que el
// despachador de notificaciones convierte en alertas.
package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-procurement/internal/application/dto"
	"github.com/tu-usuario/erp-procurement/internal/domain"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/event"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// OrderUseCase gestiona el ciclo de vida de las órdenes de compra.
//
// En cada guardado recalcula TotalAmount desde los ítems y emite eventos:
// OrderCreated al crear, OrderStatusChanged si el estado persistido cambió y
// OrderReceived adicionalmente cuando el nuevo estado es RECEIVED. Los
// eventos se entregan al sink DESPUÉS del commit: una falla al notificar
// nunca revierte el guardado.
type OrderUseCase struct {
	txRunner     TxRunner
	orderRepo    repository.ProcurementOrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	events       EventSink
}

// NewOrderUseCase construye el motor de órdenes.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.ProcurementOrderRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	events EventSink,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		events:       events,
	}
}

// CreateOrder valida, persiste la orden con sus ítems (total recalculado) y
// despacha el evento OrderCreated tras el commit.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, userID string, in dto.CreateOrderRequest) (*entity.ProcurementOrder, error) {
	if in.OrderNumber == "" || in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	// Chequeo previo; el índice único sobre order_number cubre la carrera.
	existing, err := uc.orderRepo.GetByOrderNumber(in.OrderNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	order := &entity.ProcurementOrder{
		ID:                   uuid.New().String(),
		OrderNumber:          in.OrderNumber,
		SupplierID:           in.SupplierID,
		Status:               status,
		OrderDate:            now,
		ExpectedDeliveryDate: in.ExpectedDeliveryDate,
		CreatedBy:            userID,
		Notes:                in.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	items, err := uc.buildItems(order.ID, in.Items)
	if err != nil {
		return nil, err
	}
	order.Items = items
	order.TotalAmount = order.CalculateTotal()

	err = uc.txRunner.RunOrder(ctx, func(orderRepo repository.ProcurementOrderRepository) error {
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}

	uc.events.DispatchOrderEvents([]event.Event{event.OrderCreated{Order: order}})
	return order, nil
}

// UpdateOrder aplica los cambios, recalcula el total y persiste la orden.
// La asignación de estado es permisiva: cualquier estado válido se acepta
// desde cualquier otro. Tras el commit despacha OrderStatusChanged si el
// estado cambió y OrderReceived si el nuevo estado es RECEIVED.
func (uc *OrderUseCase) UpdateOrder(ctx context.Context, orderID string, in dto.UpdateOrderRequest) (*entity.ProcurementOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	oldStatus := order.Status

	if in.Status != "" {
		if !entity.ValidOrderStatus(in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = in.Status
	}
	if in.ExpectedDeliveryDate != nil {
		order.ExpectedDeliveryDate = in.ExpectedDeliveryDate
	}
	if in.ActualDeliveryDate != nil {
		order.ActualDeliveryDate = in.ActualDeliveryDate
	}
	if in.Notes != "" {
		order.Notes = in.Notes
	}
	if in.Items != nil {
		items, err := uc.buildItems(order.ID, in.Items)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	// El total es derivado: se recalcula en cada guardado, no solo al crear.
	order.TotalAmount = order.CalculateTotal()
	order.UpdatedAt = time.Now()

	err = uc.txRunner.RunOrder(ctx, func(orderRepo repository.ProcurementOrderRepository) error {
		return orderRepo.Update(order)
	})
	if err != nil {
		return nil, err
	}

	var events []event.Event
	if order.Status != oldStatus {
		events = append(events, event.OrderStatusChanged{Order: order, OldStatus: oldStatus, NewStatus: order.Status})
		if order.Status == entity.OrderStatusReceived {
			events = append(events, event.OrderReceived{Order: order})
		}
	}
	if len(events) > 0 {
		uc.events.DispatchOrderEvents(events)
	}
	return order, nil
}

// ReceiveOrder marca la orden como RECEIVED: fija la fecha real de entrega
// (ahora si no se indica) y completa las cantidades recibidas de los ítems.
func (uc *OrderUseCase) ReceiveOrder(ctx context.Context, orderID string, deliveredAt *time.Time) (*entity.ProcurementOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	when := time.Now()
	if deliveredAt != nil {
		when = *deliveredAt
	}
	items := make([]dto.OrderItemRequest, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemRequest{
			ProductID:        item.ProductID,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice,
			ReceivedQuantity: item.Quantity,
		})
	}
	return uc.UpdateOrder(ctx, orderID, dto.UpdateOrderRequest{
		Status:             entity.OrderStatusReceived,
		ActualDeliveryDate: &when,
		Items:              items,
	})
}

// GetOrder devuelve la orden con sus ítems.
func (uc *OrderUseCase) GetOrder(orderID string) (*entity.ProcurementOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// ListOrders lista órdenes con filtros de estado y búsqueda.
func (uc *OrderUseCase) ListOrders(status, search string, limit, offset int) ([]*entity.ProcurementOrder, error) {
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	return uc.orderRepo.List(status, search, limit, offset)
}

// ListOrdersBySupplier lista las órdenes de un proveedor, recientes primero.
func (uc *OrderUseCase) ListOrdersBySupplier(supplierID string, limit, offset int) ([]*entity.ProcurementOrder, error) {
	return uc.orderRepo.ListBySupplier(supplierID, limit, offset)
}

// ListOverdue devuelve las órdenes vencidas a la fecha actual.
func (uc *OrderUseCase) ListOverdue() ([]*entity.ProcurementOrder, error) {
	candidates, err := uc.orderRepo.ListOpenWithDeliveryDate()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	overdue := make([]*entity.ProcurementOrder, 0)
	for _, o := range candidates {
		if o.IsOverdue(now) {
			overdue = append(overdue, o)
		}
	}
	return overdue, nil
}

// buildItems valida y materializa los ítems: cantidad >= 1, precio no
// negativo y producto único por orden y existente.
func (uc *OrderUseCase) buildItems(orderID string, in []dto.OrderItemRequest) ([]*entity.ProcurementOrderItem, error) {
	items := make([]*entity.ProcurementOrderItem, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, it := range in {
		if it.ProductID == "" || it.Quantity < 1 || it.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if seen[it.ProductID] {
			return nil, domain.ErrInvalidInput
		}
		seen[it.ProductID] = true
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		items = append(items, &entity.ProcurementOrderItem{
			ID:               uuid.New().String(),
			OrderID:          orderID,
			ProductID:        it.ProductID,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			ReceivedQuantity: it.ReceivedQuantity,
		})
	}
	return items, nil
}
