package repository

import "github.com/tu-usuario/erp-procurement/internal/domain/entity"

// StockTransactionRepository define el puerto de persistencia para el registro
// inmutable de movimientos de stock. Solo inserciones y lecturas.
type StockTransactionRepository interface {
	Create(tx *entity.StockTransaction) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockTransaction, error)
	ListRecent(limit int) ([]*entity.StockTransaction, error)
}
