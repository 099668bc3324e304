package supplier

import (
	"context"

	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de evaluaciones y proveedores atados a esa tx. Garantiza que
// la evaluación y el rating recalculado comiteen juntos: nunca un rating
// desactualizado respecto de su conjunto de evaluaciones.
type TxRunner interface {
	RunEvaluation(ctx context.Context, fn func(
		evalRepo repository.SupplierEvaluationRepository,
		supplierRepo repository.SupplierRepository,
	) error) error
}
