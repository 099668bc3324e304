// Package supplier implementa el motor de calificación de proveedores:
// evaluaciones inmutables, recálculo del rating promedio y el puntaje de
// desempeño derivado.
package supplier

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-procurement/internal/application/dto"
	"github.com/tu-usuario/erp-procurement/internal/domain"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// EvaluationUseCase agrega evaluaciones y recalcula el rating del proveedor.
type EvaluationUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
	evalRepo     repository.SupplierEvaluationRepository
	orderRepo    repository.ProcurementOrderRepository
}

// NewEvaluationUseCase construye el caso de uso.
func NewEvaluationUseCase(
	txRunner TxRunner,
	supplierRepo repository.SupplierRepository,
	evalRepo repository.SupplierEvaluationRepository,
	orderRepo repository.ProcurementOrderRepository,
) *EvaluationUseCase {
	return &EvaluationUseCase{
		txRunner:     txRunner,
		supplierRepo: supplierRepo,
		evalRepo:     evalRepo,
		orderRepo:    orderRepo,
	}
}

// AddEvaluation crea el registro inmutable y recalcula el rating del
// proveedor como promedio de TODAS sus evaluaciones, redondeado a 2
// decimales. Recompute completo en cada escritura: sin promediado
// incremental que pueda derivar. Ambas escrituras comitean juntas.
func (uc *EvaluationUseCase) AddEvaluation(ctx context.Context, supplierID, evaluatedBy string, in dto.AddEvaluationRequest) (*entity.SupplierEvaluation, error) {
	if !entity.ValidEvaluationRating(in.Rating) {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	eval := &entity.SupplierEvaluation{
		ID:          uuid.New().String(),
		SupplierID:  supplierID,
		Rating:      in.Rating,
		Notes:       in.Notes,
		EvaluatedBy: evaluatedBy,
		CreatedAt:   time.Now(),
	}

	err = uc.txRunner.RunEvaluation(ctx, func(
		evalRepo repository.SupplierEvaluationRepository,
		supplierRepo repository.SupplierRepository,
	) error {
		if err := evalRepo.Create(eval); err != nil {
			return err
		}
		avg, count, err := evalRepo.AverageRating(supplierID)
		if err != nil {
			return err
		}
		if count == 0 {
			// La evaluación recién insertada debe ser visible en la misma tx.
			return domain.ErrConflict
		}
		return supplierRepo.UpdateRating(supplierID, avg.Round(2))
	})
	if err != nil {
		return nil, err
	}
	return eval, nil
}

// ListEvaluations devuelve las evaluaciones del proveedor, recientes primero.
func (uc *EvaluationUseCase) ListEvaluations(supplierID string) ([]*entity.SupplierEvaluation, error) {
	return uc.evalRepo.ListBySupplier(supplierID)
}

// PerformanceSnapshot arma el snapshot de desempeño: conteo de evaluaciones,
// órdenes totales/completadas/a tiempo, tasa de puntualidad (0 si no hay
// completadas, para evitar división por cero), rating y banda.
func (uc *EvaluationUseCase) PerformanceSnapshot(supplierID string) (*dto.SupplierPerformanceDTO, error) {
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	evals, err := uc.evalRepo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	stats, err := uc.orderRepo.SupplierStats(supplierID)
	if err != nil {
		return nil, err
	}

	onTimeRate := decimal.Zero
	if stats.CompletedOrders > 0 {
		onTimeRate = decimal.NewFromInt(int64(stats.OnTimeOrders)).
			Div(decimal.NewFromInt(int64(stats.CompletedOrders))).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return &dto.SupplierPerformanceDTO{
		SupplierID:        supplier.ID,
		SupplierName:      supplier.Name,
		EvaluationCount:   len(evals),
		TotalOrders:       stats.TotalOrders,
		CompletedOrders:   stats.CompletedOrders,
		OnTimeOrders:      stats.OnTimeOrders,
		OnTimeRate:        onTimeRate,
		AverageRating:     supplier.Rating,
		PerformanceScore:  supplier.PerformanceScore().Round(2),
		PerformanceStatus: supplier.PerformanceStatus(),
	}, nil
}
