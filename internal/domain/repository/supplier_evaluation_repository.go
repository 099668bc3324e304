package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
)

// SupplierEvaluationRepository define el puerto para evaluaciones de proveedor.
// Las evaluaciones son inmutables: solo inserciones y lecturas.
type SupplierEvaluationRepository interface {
	Create(eval *entity.SupplierEvaluation) error
	ListBySupplier(supplierID string) ([]*entity.SupplierEvaluation, error)
	// AverageRating promedia el rating sobre TODAS las evaluaciones del
	// proveedor (sin promediado incremental). count == 0 si no hay ninguna.
	AverageRating(supplierID string) (avg decimal.Decimal, count int, err error)
}
