package procurement_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/erp-procurement/internal/application/dto"
	"github.com/tu-usuario/erp-procurement/internal/application/procurement"
	"github.com/tu-usuario/erp-procurement/internal/domain"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/event"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// ── fakes ────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.ProcurementOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.ProcurementOrder{}}
}

func (r *fakeOrderRepo) Create(o *entity.ProcurementOrder) error {
	for _, existing := range r.orders {
		if existing.OrderNumber == o.OrderNumber {
			return domain.ErrDuplicate
		}
	}
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.ProcurementOrder, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetByOrderNumber(num string) (*entity.ProcurementOrder, error) {
	for _, o := range r.orders {
		if o.OrderNumber == num {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) Update(o *entity.ProcurementOrder) error {
	if _, ok := r.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) List(status, search string, limit, offset int) ([]*entity.ProcurementOrder, error) {
	var out []*entity.ProcurementOrder
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListBySupplier(supplierID string, limit, offset int) ([]*entity.ProcurementOrder, error) {
	var out []*entity.ProcurementOrder
	for _, o := range r.orders {
		if o.SupplierID == supplierID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListOpenWithDeliveryDate() ([]*entity.ProcurementOrder, error) {
	var out []*entity.ProcurementOrder
	for _, o := range r.orders {
		if !o.IsTerminal() && o.ExpectedDeliveryDate != nil {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) SupplierStats(supplierID string) (*repository.SupplierOrderStats, error) {
	stats := &repository.SupplierOrderStats{}
	for _, o := range r.orders {
		if o.SupplierID != supplierID {
			continue
		}
		stats.TotalOrders++
		if o.Status == entity.OrderStatusReceived {
			stats.CompletedOrders++
			if o.ActualDeliveryDate != nil && o.ExpectedDeliveryDate != nil &&
				!o.ActualDeliveryDate.After(*o.ExpectedDeliveryDate) {
				stats.OnTimeOrders++
			}
		}
	}
	return stats, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) UpdateRating(id string, rating decimal.Decimal) error {
	s, ok := r.suppliers[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Rating = rating
	return nil
}
func (r *fakeSupplierRepo) List(search string, limit, offset int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *fakeSupplierRepo) ListTopRated(limit int) ([]*entity.Supplier, error) { return nil, nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error                 { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error)     { return r.products[id], nil }
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error)   { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.products[id], nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                 { return nil }
func (r *fakeProductRepo) UpdateStock(id string, stock int) error         { return nil }
func (r *fakeProductRepo) List(search, status string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error)   { return nil, nil }
func (r *fakeProductRepo) ListOutOfStock() ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Deactivate(id string) error                 { return nil }

type fakeOrderTxRunner struct {
	orderRepo *fakeOrderRepo
}

func (r *fakeOrderTxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.ProcurementOrderRepository,
) error) error {
	return fn(r.orderRepo)
}

// fakeEventSink registra los eventos despachados.
type fakeEventSink struct {
	events []event.Event
}

func (s *fakeEventSink) DispatchOrderEvents(events []event.Event) {
	s.events = append(s.events, events...)
}

// ── setup ────────────────────────────────────────────────────────────────────

func buildEngine() (*procurement.OrderUseCase, *fakeOrderRepo, *fakeEventSink) {
	orderRepo := newFakeOrderRepo()
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"sup-1": {ID: "sup-1", Name: "Acme Foods", IsActive: true},
	}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", SKU: "SKU-1", Name: "Harina", IsActive: true},
		"p2": {ID: "p2", SKU: "SKU-2", Name: "Azúcar", IsActive: true},
	}}
	sink := &fakeEventSink{}
	uc := procurement.NewOrderUseCase(
		&fakeOrderTxRunner{orderRepo: orderRepo},
		orderRepo, supplierRepo, productRepo, sink,
	)
	return uc, orderRepo, sink
}

func createRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		OrderNumber: "PO-2026-001",
		SupplierID:  "sup-1",
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 10, UnitPrice: decimal.NewFromFloat(1.50)},
			{ProductID: "p2", Quantity: 4, UnitPrice: decimal.NewFromFloat(2.50)},
		},
	}
}

// ── tests ────────────────────────────────────────────────────────────────────

// Total derivado de los ítems: 10×1.50 + 4×2.50 = 25.00.
func TestCreateOrder_TotalDerivadoYEvento(t *testing.T) {
	uc, orderRepo, sink := buildEngine()

	order, err := uc.CreateOrder(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	assert.Equal(t, "25.00", order.TotalAmount.StringFixed(2))
	assert.Equal(t, entity.OrderStatusPending, order.Status, "estado por defecto PENDING")
	assert.Equal(t, "user-1", order.CreatedBy)
	assert.Len(t, orderRepo.orders, 1)

	require.Len(t, sink.events, 1)
	created, ok := sink.events[0].(event.OrderCreated)
	require.True(t, ok, "debe emitirse OrderCreated")
	assert.Equal(t, order.ID, created.Order.ID)
}

func TestCreateOrder_Validaciones(t *testing.T) {
	uc, _, _ := buildEngine()
	ctx := context.Background()

	sinNumero := createRequest()
	sinNumero.OrderNumber = ""
	_, err := uc.CreateOrder(ctx, "u", sinNumero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	estadoRaro := createRequest()
	estadoRaro.Status = "SHIPPED"
	_, err = uc.CreateOrder(ctx, "u", estadoRaro)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	proveedorFantasma := createRequest()
	proveedorFantasma.SupplierID = "nope"
	_, err = uc.CreateOrder(ctx, "u", proveedorFantasma)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cantidadCero := createRequest()
	cantidadCero.Items[0].Quantity = 0
	_, err = uc.CreateOrder(ctx, "u", cantidadCero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	productoRepetido := createRequest()
	productoRepetido.Items[1].ProductID = "p1"
	_, err = uc.CreateOrder(ctx, "u", productoRepetido)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_NumeroDuplicado(t *testing.T) {
	uc, _, _ := buildEngine()
	ctx := context.Background()

	_, err := uc.CreateOrder(ctx, "u", createRequest())
	require.NoError(t, err)

	_, err = uc.CreateOrder(ctx, "u", createRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// El cambio de estado emite OrderStatusChanged; si además el nuevo estado es
// RECEIVED, también OrderReceived.
func TestUpdateOrder_EventosDeEstado(t *testing.T) {
	uc, _, sink := buildEngine()
	ctx := context.Background()

	order, err := uc.CreateOrder(ctx, "u", createRequest())
	require.NoError(t, err)
	sink.events = nil

	_, err = uc.UpdateOrder(ctx, order.ID, dto.UpdateOrderRequest{Status: entity.OrderStatusApproved})
	require.NoError(t, err)
	require.Len(t, sink.events, 1)
	changed, ok := sink.events[0].(event.OrderStatusChanged)
	require.True(t, ok)
	assert.Equal(t, entity.OrderStatusPending, changed.OldStatus)
	assert.Equal(t, entity.OrderStatusApproved, changed.NewStatus)

	sink.events = nil
	_, err = uc.UpdateOrder(ctx, order.ID, dto.UpdateOrderRequest{Status: entity.OrderStatusReceived})
	require.NoError(t, err)
	require.Len(t, sink.events, 2)
	_, isChanged := sink.events[0].(event.OrderStatusChanged)
	_, isReceived := sink.events[1].(event.OrderReceived)
	assert.True(t, isChanged)
	assert.True(t, isReceived)
}

// Guardar sin cambiar el estado no emite eventos.
func TestUpdateOrder_SinCambioDeEstadoSinEventos(t *testing.T) {
	uc, _, sink := buildEngine()
	ctx := context.Background()

	order, err := uc.CreateOrder(ctx, "u", createRequest())
	require.NoError(t, err)
	sink.events = nil

	_, err = uc.UpdateOrder(ctx, order.ID, dto.UpdateOrderRequest{Notes: "urgente"})
	require.NoError(t, err)
	assert.Empty(t, sink.events)
}

// El total se recalcula en cada guardado, también al editar ítems.
func TestUpdateOrder_RecalculaTotal(t *testing.T) {
	uc, _, _ := buildEngine()
	ctx := context.Background()

	order, err := uc.CreateOrder(ctx, "u", createRequest())
	require.NoError(t, err)

	updated, err := uc.UpdateOrder(ctx, order.ID, dto.UpdateOrderRequest{
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromFloat(3.00)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "6.00", updated.TotalAmount.StringFixed(2))
}

// ReceiveOrder fija RECEIVED, fecha real de entrega y cantidades completas.
func TestReceiveOrder_CompletaCantidades(t *testing.T) {
	uc, _, sink := buildEngine()
	ctx := context.Background()

	order, err := uc.CreateOrder(ctx, "u", createRequest())
	require.NoError(t, err)
	sink.events = nil

	when := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	received, err := uc.ReceiveOrder(ctx, order.ID, &when)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusReceived, received.Status)
	require.NotNil(t, received.ActualDeliveryDate)
	assert.True(t, received.ActualDeliveryDate.Equal(when))
	for _, item := range received.Items {
		assert.True(t, item.IsFullyReceived())
	}
	assert.Len(t, sink.events, 2, "OrderStatusChanged + OrderReceived")
}

func TestListOverdue_FiltraEnDominio(t *testing.T) {
	uc, _, _ := buildEngine()
	ctx := context.Background()

	ayer := time.Now().Add(-24 * time.Hour)
	manana := time.Now().Add(24 * time.Hour)

	vencida := createRequest()
	vencida.ExpectedDeliveryDate = &ayer
	_, err := uc.CreateOrder(ctx, "u", vencida)
	require.NoError(t, err)

	aTiempo := createRequest()
	aTiempo.OrderNumber = "PO-2026-002"
	aTiempo.ExpectedDeliveryDate = &manana
	_, err = uc.CreateOrder(ctx, "u", aTiempo)
	require.NoError(t, err)

	overdue, err := uc.ListOverdue()
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, "PO-2026-001", overdue[0].OrderNumber)
}

func TestGetOrder_Inexistente(t *testing.T) {
	uc, _, _ := buildEngine()
	_, err := uc.GetOrder("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
