package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
)

func TestOrderItem_Subtotal(t *testing.T) {
	item := &entity.ProcurementOrderItem{
		Quantity:  3,
		UnitPrice: decimal.NewFromFloat(2.50),
	}
	assert.True(t, item.Subtotal().Equal(decimal.NewFromFloat(7.50)))
}

// 10 × 1.50 + 4 × 2.50 = 25.00
func TestOrder_CalculateTotal(t *testing.T) {
	order := &entity.ProcurementOrder{
		Items: []*entity.ProcurementOrderItem{
			{Quantity: 10, UnitPrice: decimal.NewFromFloat(1.50)},
			{Quantity: 4, UnitPrice: decimal.NewFromFloat(2.50)},
		},
	}
	assert.Equal(t, "25.00", order.CalculateTotal().StringFixed(2))
}

// 2 × 10.00 + 1 × 5.00 = 25.00
func TestOrder_CalculateTotal_MezclaDePrecios(t *testing.T) {
	order := &entity.ProcurementOrder{
		Items: []*entity.ProcurementOrderItem{
			{Quantity: 2, UnitPrice: decimal.NewFromFloat(10.00)},
			{Quantity: 1, UnitPrice: decimal.NewFromFloat(5.00)},
		},
	}
	assert.Equal(t, "25.00", order.CalculateTotal().StringFixed(2))
}

func TestOrder_CalculateTotal_SinItems(t *testing.T) {
	order := &entity.ProcurementOrder{}
	assert.True(t, order.CalculateTotal().IsZero())
}

func TestOrder_IsOverdue(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	ayer := now.Add(-24 * time.Hour)
	manana := now.Add(24 * time.Hour)

	vencida := &entity.ProcurementOrder{Status: entity.OrderStatusOrdered, ExpectedDeliveryDate: &ayer}
	assert.True(t, vencida.IsOverdue(now))

	aTiempo := &entity.ProcurementOrder{Status: entity.OrderStatusOrdered, ExpectedDeliveryDate: &manana}
	assert.False(t, aTiempo.IsOverdue(now))

	sinFecha := &entity.ProcurementOrder{Status: entity.OrderStatusOrdered}
	assert.False(t, sinFecha.IsOverdue(now))

	// Los estados terminales nunca están vencidos, aunque la fecha pasó.
	recibida := &entity.ProcurementOrder{Status: entity.OrderStatusReceived, ExpectedDeliveryDate: &ayer}
	assert.False(t, recibida.IsOverdue(now))

	cancelada := &entity.ProcurementOrder{Status: entity.OrderStatusCancelled, ExpectedDeliveryDate: &ayer}
	assert.False(t, cancelada.IsOverdue(now))
}

func TestOrder_StatusLabel(t *testing.T) {
	cases := map[string]string{
		entity.OrderStatusPending:   "Pending",
		entity.OrderStatusApproved:  "Approved",
		entity.OrderStatusOrdered:   "Ordered",
		entity.OrderStatusReceived:  "Received",
		entity.OrderStatusCancelled: "Cancelled",
	}
	for status, label := range cases {
		order := &entity.ProcurementOrder{Status: status}
		assert.Equal(t, label, order.StatusLabel())
	}
	// Estado desconocido: devuelve el valor crudo.
	raro := &entity.ProcurementOrder{Status: "LIMBO"}
	assert.Equal(t, "LIMBO", raro.StatusLabel())
}

func TestOrderItem_IsFullyReceived(t *testing.T) {
	item := &entity.ProcurementOrderItem{Quantity: 10, ReceivedQuantity: 9}
	assert.False(t, item.IsFullyReceived())
	item.ReceivedQuantity = 10
	assert.True(t, item.IsFullyReceived())
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, entity.ValidOrderStatus(entity.OrderStatusPending))
	assert.False(t, entity.ValidOrderStatus("SHIPPED"))
}
