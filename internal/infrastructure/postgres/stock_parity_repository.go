package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/erp-procurement/internal/domain"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// StockParityRepository implementación PostgreSQL de discrepancias de inventario.
type StockParityRepository struct {
	db Querier
}

// NewStockParityRepository crea el repositorio.
func NewStockParityRepository(db Querier) repository.StockParityRepository {
	return &StockParityRepository{db: db}
}

const parityColumns = `id, product_id, expected_quantity, actual_quantity,
	discrepancy, reason, resolved, resolved_by, resolved_at, created_at`

func scanParity(row pgx.Row) (*entity.StockParity, error) {
	var p entity.StockParity
	err := row.Scan(
		&p.ID, &p.ProductID, &p.ExpectedQuantity, &p.ActualQuantity,
		&p.Discrepancy, &p.Reason, &p.Resolved, &p.ResolvedBy,
		&p.ResolvedAt, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create inserta la discrepancia.
func (r *StockParityRepository) Create(parity *entity.StockParity) error {
	query := `
		INSERT INTO stock_parities (id, product_id, expected_quantity,
			actual_quantity, discrepancy, reason, resolved, resolved_by,
			resolved_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		parity.ID, parity.ProductID, parity.ExpectedQuantity,
		parity.ActualQuantity, parity.Discrepancy, parity.Reason,
		parity.Resolved, parity.ResolvedBy, parity.ResolvedAt, parity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insertar discrepancia: %w", err)
	}
	return nil
}

// GetByID busca una discrepancia por su ID; nil si no existe.
func (r *StockParityRepository) GetByID(id string) (*entity.StockParity, error) {
	query := `SELECT ` + parityColumns + ` FROM stock_parities WHERE id = $1`
	return scanParity(r.db.QueryRow(context.Background(), query, id))
}

// List devuelve discrepancias por estado de resolución, de la más reciente
// a la más antigua.
func (r *StockParityRepository) List(resolved bool, limit, offset int) ([]*entity.StockParity, error) {
	query := `SELECT ` + parityColumns + `
		FROM stock_parities
		WHERE resolved = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, resolved, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar discrepancias: %w", err)
	}
	defer rows.Close()

	var parities []*entity.StockParity
	for rows.Next() {
		p, err := scanParity(rows)
		if err != nil {
			return nil, err
		}
		parities = append(parities, p)
	}
	return parities, rows.Err()
}

// Resolve marca la discrepancia como resuelta exactamente una vez: el WHERE
// sobre resolved = false hace que una segunda resolución no afecte filas.
func (r *StockParityRepository) Resolve(id, resolvedBy string, resolvedAt time.Time) error {
	query := `
		UPDATE stock_parities
		SET resolved = true, resolved_by = $2, resolved_at = $3
		WHERE id = $1 AND resolved = false`
	tag, err := r.db.Exec(context.Background(), query, id, resolvedBy, resolvedAt)
	if err != nil {
		return fmt.Errorf("resolver discrepancia: %w", err)
	}
	if tag.RowsAffected() == 0 {
		existing, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}
