package stock

import (
	"context"

	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// Modos de aplicación de una transacción ADJUSTMENT. El comportamiento
// heredado del sistema registra el ajuste sin tocar el stock; el modo "set"
// fija CurrentStock a la cantidad de la transacción. Configurable vía
// STOCK_ADJUSTMENT_MODE, pendiente de definición de producto.
const (
	AdjustmentModeRecord = "record" // default: solo registra, no altera stock
	AdjustmentModeSet    = "set"    // fija el stock a la cantidad indicada
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el registro del movimiento y
// la actualización del stock del producto sean una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.StockTransactionRepository,
		productRepo repository.ProductRepository,
	) error) error
}
