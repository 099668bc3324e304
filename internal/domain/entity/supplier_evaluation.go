package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Límites del rating de una evaluación.
var (
	EvaluationRatingMin = decimal.Zero
	EvaluationRatingMax = decimal.NewFromInt(5)
)

// SupplierEvaluation es el registro inmutable de una evaluación de proveedor.
// Cada creación dispara el recálculo del Rating del proveedor (promedio de
// todas sus evaluaciones, redondeado a 2 decimales).
type SupplierEvaluation struct {
	ID          string
	SupplierID  string
	Rating      decimal.Decimal // 0.00–5.00
	Notes       string
	EvaluatedBy string // UserID del evaluador
	CreatedAt   time.Time
}

// ValidEvaluationRating verifica que el rating esté en [0.00, 5.00].
func ValidEvaluationRating(rating decimal.Decimal) bool {
	return rating.GreaterThanOrEqual(EvaluationRatingMin) && rating.LessThanOrEqual(EvaluationRatingMax)
}
