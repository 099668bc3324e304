// Package event define los eventos de dominio del motor de compras.
//
// El guardado de una orden ya no crea notificaciones de forma implícita:
// devuelve una lista de eventos que el despachador de notificaciones
// consume después del commit. Así los efectos secundarios quedan aislados
// y testeables por separado.
package event

import "github.com/tu-usuario/erp-procurement/internal/domain/entity"

// Event es un evento de dominio emitido por una operación de escritura.
type Event interface {
	Name() string
}

// OrderCreated se emite al persistir una orden nueva.
type OrderCreated struct {
	Order *entity.ProcurementOrder
}

func (OrderCreated) Name() string { return "procurement.order_created" }

// OrderStatusChanged se emite cuando el estado persistido cambió.
type OrderStatusChanged struct {
	Order     *entity.ProcurementOrder
	OldStatus string
	NewStatus string
}

func (OrderStatusChanged) Name() string { return "procurement.order_status_changed" }

// OrderReceived se emite adicionalmente cuando el nuevo estado es RECEIVED.
type OrderReceived struct {
	Order *entity.ProcurementOrder
}

func (OrderReceived) Name() string { return "procurement.order_received" }
