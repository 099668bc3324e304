package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
)

func supplierWith(rating, onTime, quality float64) *entity.Supplier {
	return &entity.Supplier{
		Rating:             decimal.NewFromFloat(rating),
		OnTimeDeliveryRate: decimal.NewFromFloat(onTime),
		QualityScore:       decimal.NewFromFloat(quality),
	}
}

// (rating×20 + onTime×0.3 + quality×0.3) / 2
func TestPerformanceScore_Formula(t *testing.T) {
	s := supplierWith(5, 100, 100)
	// (100 + 30 + 30) / 2 = 80
	assert.True(t, s.PerformanceScore().Equal(decimal.NewFromInt(80)),
		"score = %s", s.PerformanceScore())
}

func TestPerformanceStatus_Bandas(t *testing.T) {
	cases := []struct {
		name                    string
		rating, onTime, quality float64
		want                    string
	}{
		{"excelente en el borde de 80", 5, 100, 100, entity.PerformanceExcellent},
		{"bueno", 4, 80, 80, entity.PerformanceGood},       // (80+24+24)/2 = 64
		{"promedio", 3, 40, 40, entity.PerformanceAverage}, // (60+12+12)/2 = 42
		{"pobre", 1, 20, 20, entity.PerformancePoor},       // (20+6+6)/2 = 16
		{"todo en cero", 0, 0, 0, entity.PerformancePoor},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := supplierWith(tc.rating, tc.onTime, tc.quality)
			assert.Equal(t, tc.want, s.PerformanceStatus(),
				"score = %s", s.PerformanceScore())
		})
	}
}

func TestValidEvaluationRating_Limites(t *testing.T) {
	assert.True(t, entity.ValidEvaluationRating(decimal.Zero))
	assert.True(t, entity.ValidEvaluationRating(decimal.NewFromInt(5)))
	assert.True(t, entity.ValidEvaluationRating(decimal.NewFromFloat(3.75)))
	assert.False(t, entity.ValidEvaluationRating(decimal.NewFromFloat(-0.01)))
	assert.False(t, entity.ValidEvaluationRating(decimal.NewFromFloat(5.01)))
}
