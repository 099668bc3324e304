package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// StockTransactionRepository implementación PostgreSQL del registro de movimientos.
type StockTransactionRepository struct {
	db Querier
}

// NewStockTransactionRepository crea el repositorio.
func NewStockTransactionRepository(db Querier) repository.StockTransactionRepository {
	return &StockTransactionRepository{db: db}
}

const stockTxColumns = `id, product_id, type, quantity, reference_number, notes, created_by, created_at`

func collectStockTransactions(rows pgx.Rows) ([]*entity.StockTransaction, error) {
	defer rows.Close()
	var txs []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		err := rows.Scan(&t.ID, &t.ProductID, &t.Type, &t.Quantity,
			&t.ReferenceNumber, &t.Notes, &t.CreatedBy, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		txs = append(txs, &t)
	}
	return txs, rows.Err()
}

// Create inserta el movimiento. Los movimientos son inmutables: no hay Update.
func (r *StockTransactionRepository) Create(tx *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (id, product_id, type, quantity,
			reference_number, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		tx.ID, tx.ProductID, tx.Type, tx.Quantity,
		tx.ReferenceNumber, tx.Notes, tx.CreatedBy, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insertar movimiento de stock: %w", err)
	}
	return nil
}

// ListByProduct devuelve el historial de movimientos de un producto,
// del más reciente al más antiguo.
func (r *StockTransactionRepository) ListByProduct(productID string, limit, offset int) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + stockTxColumns + `
		FROM stock_transactions
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	return collectStockTransactions(rows)
}

// ListRecent devuelve los últimos movimientos de todos los productos.
func (r *StockTransactionRepository) ListRecent(limit int) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + stockTxColumns + `
		FROM stock_transactions
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.db.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos recientes: %w", err)
	}
	return collectStockTransactions(rows)
}
