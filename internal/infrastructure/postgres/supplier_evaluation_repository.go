package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// SupplierEvaluationRepository implementación PostgreSQL de evaluaciones de proveedor.
type SupplierEvaluationRepository struct {
	db Querier
}

// NewSupplierEvaluationRepository crea el repositorio.
func NewSupplierEvaluationRepository(db Querier) repository.SupplierEvaluationRepository {
	return &SupplierEvaluationRepository{db: db}
}

// Create inserta la evaluación. Las evaluaciones son inmutables.
func (r *SupplierEvaluationRepository) Create(eval *entity.SupplierEvaluation) error {
	query := `
		INSERT INTO supplier_evaluations (id, supplier_id, rating, notes,
			evaluated_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		eval.ID, eval.SupplierID, eval.Rating, eval.Notes,
		eval.EvaluatedBy, eval.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insertar evaluación: %w", err)
	}
	return nil
}

// ListBySupplier devuelve todas las evaluaciones de un proveedor,
// de la más reciente a la más antigua.
func (r *SupplierEvaluationRepository) ListBySupplier(supplierID string) ([]*entity.SupplierEvaluation, error) {
	query := `
		SELECT id, supplier_id, rating, notes, evaluated_by, created_at
		FROM supplier_evaluations
		WHERE supplier_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("listar evaluaciones: %w", err)
	}
	defer rows.Close()

	var evals []*entity.SupplierEvaluation
	for rows.Next() {
		var e entity.SupplierEvaluation
		err := rows.Scan(&e.ID, &e.SupplierID, &e.Rating, &e.Notes,
			&e.EvaluatedBy, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		evals = append(evals, &e)
	}
	return evals, rows.Err()
}

// AverageRating promedia el rating sobre todas las evaluaciones del proveedor.
func (r *SupplierEvaluationRepository) AverageRating(supplierID string) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM supplier_evaluations
		WHERE supplier_id = $1`
	var avg decimal.Decimal
	var count int
	err := r.db.QueryRow(context.Background(), query, supplierID).Scan(&avg, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("promediar evaluaciones: %w", err)
	}
	return avg, count, nil
}
