package procurement

import (
	"context"

	"github.com/tu-usuario/erp-procurement/internal/domain/event"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con el
// repositorio de órdenes atado a esa tx. Cabecera e ítems comitean juntos.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.ProcurementOrderRepository,
	) error) error
}

// EventSink consume los eventos de dominio emitidos al guardar una orden.
// El motor lo invoca después del commit; la implementación no debe devolver
// errores al guardado (los aísla y loguea).
type EventSink interface {
	DispatchOrderEvents(events []event.Event)
}
