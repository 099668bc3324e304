package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-procurement/internal/application/dto"
	"github.com/tu-usuario/erp-procurement/internal/domain"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// LedgerUseCase aplica transacciones de stock de forma transaccional con
// bloqueo de fila (SELECT FOR UPDATE) sobre el producto. El registro
// inmutable y el ajuste de CurrentStock comitean como una sola unidad.
type LedgerUseCase struct {
	txRunner       TxRunner
	txRepo         repository.StockTransactionRepository
	productRepo    repository.ProductRepository
	adjustmentMode string
}

// NewLedgerUseCase construye el caso de uso. adjustmentMode vacío usa el
// comportamiento heredado (AdjustmentModeRecord).
func NewLedgerUseCase(txRunner TxRunner, txRepo repository.StockTransactionRepository, productRepo repository.ProductRepository, adjustmentMode string) *LedgerUseCase {
	if adjustmentMode == "" {
		adjustmentMode = AdjustmentModeRecord
	}
	return &LedgerUseCase{
		txRunner:       txRunner,
		txRepo:         txRepo,
		productRepo:    productRepo,
		adjustmentMode: adjustmentMode,
	}
}

// ApplyTransaction valida y aplica un movimiento de stock:
//   - IN, RETURN: CurrentStock += cantidad
//   - OUT: CurrentStock -= cantidad; nunca por debajo de cero
//   - ADJUSTMENT: según el modo configurado (registrar o fijar)
//
// Valida antes de escribir (fail fast): cantidad >= 1, tipo soportado,
// producto existente. Devuelve la transacción creada.
func (uc *LedgerUseCase) ApplyTransaction(ctx context.Context, userID string, in dto.ApplyTransactionRequest) (*entity.StockTransaction, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidTransactionType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	tx := &entity.StockTransaction{
		ID:              uuid.New().String(),
		ProductID:       in.ProductID,
		Type:            in.Type,
		Quantity:        in.Quantity,
		ReferenceNumber: in.ReferenceNumber,
		Notes:           in.Notes,
		CreatedBy:       userID,
		CreatedAt:       now,
	}

	err = uc.txRunner.Run(ctx, func(
		txRepo repository.StockTransactionRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto para evitar carreras read-modify-write
		// entre dos OUT simultáneos.
		locked, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		newStock := locked.CurrentStock
		switch in.Type {
		case entity.TransactionTypeIN, entity.TransactionTypeRETURN:
			newStock += in.Quantity
		case entity.TransactionTypeOUT:
			if locked.CurrentStock < in.Quantity {
				return domain.ErrInsufficientStock
			}
			newStock -= in.Quantity
		case entity.TransactionTypeADJUSTMENT:
			if uc.adjustmentMode == AdjustmentModeSet {
				newStock = in.Quantity
			}
		}

		if err := txRepo.Create(tx); err != nil {
			return err
		}
		if newStock != locked.CurrentStock {
			return productRepo.UpdateStock(in.ProductID, newStock)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// History lista los movimientos de un producto, recientes primero.
func (uc *LedgerUseCase) History(productID string, limit, offset int) ([]*entity.StockTransaction, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.txRepo.ListByProduct(productID, limit, offset)
}

// Recent lista los últimos movimientos de todos los productos.
func (uc *LedgerUseCase) Recent(limit int) ([]*entity.StockTransaction, error) {
	return uc.txRepo.ListRecent(limit)
}
