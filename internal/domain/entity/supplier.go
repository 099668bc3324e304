package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bandas de desempeño de proveedor (etiquetas para reportes).
const (
	PerformanceExcellent = "Excellent"
	PerformanceGood      = "Good"
	PerformanceAverage   = "Average"
	PerformancePoor      = "Poor"
)

// Supplier representa un proveedor con sus métricas de evaluación.
// Rating es derivado: promedio de todas las SupplierEvaluation (0.00–5.00),
// recalculado completo en cada evaluación nueva.
type Supplier struct {
	ID                 string
	Name               string
	ContactPerson      string
	Email              string
	Phone              string
	Address            string
	Rating             decimal.Decimal // 0.00–5.00, derivado de evaluaciones
	TotalOrders        int
	OnTimeDeliveryRate decimal.Decimal // 0.00–100.00
	QualityScore       decimal.Decimal // 0.00–100.00
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PerformanceScore calcula el puntaje global de desempeño:
// (rating × 20 + on_time_delivery_rate × 0.3 + quality_score × 0.3) / 2.
// Función pura, sin efectos.
func (s *Supplier) PerformanceScore() decimal.Decimal {
	ratingPart := s.Rating.Mul(decimal.NewFromInt(20))
	deliveryPart := s.OnTimeDeliveryRate.Mul(decimal.NewFromFloat(0.3))
	qualityPart := s.QualityScore.Mul(decimal.NewFromFloat(0.3))
	return ratingPart.Add(deliveryPart).Add(qualityPart).Div(decimal.NewFromInt(2))
}

// PerformanceStatus devuelve la banda según el puntaje:
// >= 80 Excellent, >= 60 Good, >= 40 Average, resto Poor.
func (s *Supplier) PerformanceStatus() string {
	score := s.PerformanceScore()
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return PerformanceExcellent
	case score.GreaterThanOrEqual(decimal.NewFromInt(60)):
		return PerformanceGood
	case score.GreaterThanOrEqual(decimal.NewFromInt(40)):
		return PerformanceAverage
	default:
		return PerformancePoor
	}
}
