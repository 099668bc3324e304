package supplier_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/erp-procurement/internal/application/dto"
	"github.com/tu-usuario/erp-procurement/internal/application/supplier"
	"github.com/tu-usuario/erp-procurement/internal/domain"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// ── fakes ────────────────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error             { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) { return r.suppliers[id], nil }
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error             { return nil }
func (r *fakeSupplierRepo) UpdateRating(id string, rating decimal.Decimal) error {
	s, ok := r.suppliers[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Rating = rating
	return nil
}
func (r *fakeSupplierRepo) List(search string, limit, offset int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *fakeSupplierRepo) ListTopRated(limit int) ([]*entity.Supplier, error) { return nil, nil }

type fakeEvalRepo struct {
	evals []*entity.SupplierEvaluation
}

func (r *fakeEvalRepo) Create(e *entity.SupplierEvaluation) error {
	r.evals = append(r.evals, e)
	return nil
}

func (r *fakeEvalRepo) ListBySupplier(supplierID string) ([]*entity.SupplierEvaluation, error) {
	var out []*entity.SupplierEvaluation
	for _, e := range r.evals {
		if e.SupplierID == supplierID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEvalRepo) AverageRating(supplierID string) (decimal.Decimal, int, error) {
	sum := decimal.Zero
	count := 0
	for _, e := range r.evals {
		if e.SupplierID == supplierID {
			sum = sum.Add(e.Rating)
			count++
		}
	}
	if count == 0 {
		return decimal.Zero, 0, nil
	}
	return sum.Div(decimal.NewFromInt(int64(count))), count, nil
}

type fakeOrderRepo struct {
	stats repository.SupplierOrderStats
}

func (r *fakeOrderRepo) Create(o *entity.ProcurementOrder) error { return nil }
func (r *fakeOrderRepo) GetByID(id string) (*entity.ProcurementOrder, error) {
	return nil, nil
}
func (r *fakeOrderRepo) GetByOrderNumber(num string) (*entity.ProcurementOrder, error) {
	return nil, nil
}
func (r *fakeOrderRepo) Update(o *entity.ProcurementOrder) error { return nil }
func (r *fakeOrderRepo) List(status, search string, limit, offset int) ([]*entity.ProcurementOrder, error) {
	return nil, nil
}
func (r *fakeOrderRepo) ListBySupplier(supplierID string, limit, offset int) ([]*entity.ProcurementOrder, error) {
	return nil, nil
}
func (r *fakeOrderRepo) ListOpenWithDeliveryDate() ([]*entity.ProcurementOrder, error) {
	return nil, nil
}
func (r *fakeOrderRepo) SupplierStats(supplierID string) (*repository.SupplierOrderStats, error) {
	stats := r.stats
	return &stats, nil
}

type fakeEvalTxRunner struct {
	evalRepo     *fakeEvalRepo
	supplierRepo *fakeSupplierRepo
}

func (r *fakeEvalTxRunner) RunEvaluation(ctx context.Context, fn func(
	evalRepo repository.SupplierEvaluationRepository,
	supplierRepo repository.SupplierRepository,
) error) error {
	return fn(r.evalRepo, r.supplierRepo)
}

// ── setup ────────────────────────────────────────────────────────────────────

func buildEngine(stats repository.SupplierOrderStats) (*supplier.EvaluationUseCase, *fakeSupplierRepo, *fakeEvalRepo) {
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"sup-1": {
			ID: "sup-1", Name: "Acme Foods",
			OnTimeDeliveryRate: decimal.NewFromInt(80),
			QualityScore:       decimal.NewFromInt(80),
			IsActive:           true,
		},
	}}
	evalRepo := &fakeEvalRepo{}
	orderRepo := &fakeOrderRepo{stats: stats}
	runner := &fakeEvalTxRunner{evalRepo: evalRepo, supplierRepo: supplierRepo}
	uc := supplier.NewEvaluationUseCase(runner, supplierRepo, evalRepo, orderRepo)
	return uc, supplierRepo, evalRepo
}

func addRating(t *testing.T, uc *supplier.EvaluationUseCase, rating float64) {
	t.Helper()
	_, err := uc.AddEvaluation(context.Background(), "sup-1", "user-1", dto.AddEvaluationRequest{
		Rating: decimal.NewFromFloat(rating),
	})
	require.NoError(t, err)
}

// ── tests ────────────────────────────────────────────────────────────────────

// [4, 5, 3] promedia 4.00: recompute completo en cada escritura.
func TestAddEvaluation_RecalculaPromedio(t *testing.T) {
	uc, supplierRepo, evalRepo := buildEngine(repository.SupplierOrderStats{})

	addRating(t, uc, 4)
	assert.Equal(t, "4.00", supplierRepo.suppliers["sup-1"].Rating.StringFixed(2))

	addRating(t, uc, 5)
	assert.Equal(t, "4.50", supplierRepo.suppliers["sup-1"].Rating.StringFixed(2))

	addRating(t, uc, 3)
	assert.Equal(t, "4.00", supplierRepo.suppliers["sup-1"].Rating.StringFixed(2))

	assert.Len(t, evalRepo.evals, 3)
}

// El promedio se redondea a 2 decimales: [5, 4, 4] -> 4.33.
func TestAddEvaluation_RedondeaADosDecimales(t *testing.T) {
	uc, supplierRepo, _ := buildEngine(repository.SupplierOrderStats{})

	addRating(t, uc, 5)
	addRating(t, uc, 4)
	addRating(t, uc, 4)
	assert.Equal(t, "4.33", supplierRepo.suppliers["sup-1"].Rating.StringFixed(2))
}

func TestAddEvaluation_RatingFueraDeRango(t *testing.T) {
	uc, _, evalRepo := buildEngine(repository.SupplierOrderStats{})
	ctx := context.Background()

	_, err := uc.AddEvaluation(ctx, "sup-1", "u", dto.AddEvaluationRequest{
		Rating: decimal.NewFromFloat(5.5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddEvaluation(ctx, "sup-1", "u", dto.AddEvaluationRequest{
		Rating: decimal.NewFromFloat(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, evalRepo.evals)
}

func TestAddEvaluation_ProveedorInexistente(t *testing.T) {
	uc, _, _ := buildEngine(repository.SupplierOrderStats{})

	_, err := uc.AddEvaluation(context.Background(), "nope", "u", dto.AddEvaluationRequest{
		Rating: decimal.NewFromInt(4),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Tasa de puntualidad: 3 de 4 completadas a tiempo = 75.00%.
func TestPerformanceSnapshot_TasaDePuntualidad(t *testing.T) {
	uc, _, _ := buildEngine(repository.SupplierOrderStats{
		TotalOrders:     6,
		CompletedOrders: 4,
		OnTimeOrders:    3,
	})
	addRating(t, uc, 4)

	snap, err := uc.PerformanceSnapshot("sup-1")
	require.NoError(t, err)

	assert.Equal(t, 6, snap.TotalOrders)
	assert.Equal(t, 4, snap.CompletedOrders)
	assert.Equal(t, 3, snap.OnTimeOrders)
	assert.Equal(t, "75.00", snap.OnTimeRate.StringFixed(2))
	assert.Equal(t, 1, snap.EvaluationCount)
	assert.Equal(t, "4.00", snap.AverageRating.StringFixed(2))
	// (4×20 + 80×0.3 + 80×0.3) / 2 = 64 -> Good
	assert.Equal(t, "64.00", snap.PerformanceScore.StringFixed(2))
	assert.Equal(t, entity.PerformanceGood, snap.PerformanceStatus)
}

// Sin órdenes completadas la tasa es cero, no división por cero.
func TestPerformanceSnapshot_SinCompletadas(t *testing.T) {
	uc, _, _ := buildEngine(repository.SupplierOrderStats{TotalOrders: 2})

	snap, err := uc.PerformanceSnapshot("sup-1")
	require.NoError(t, err)
	assert.True(t, snap.OnTimeRate.IsZero())
}

func TestPerformanceSnapshot_ProveedorInexistente(t *testing.T) {
	uc, _, _ := buildEngine(repository.SupplierOrderStats{})

	_, err := uc.PerformanceSnapshot("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListEvaluations(t *testing.T) {
	uc, _, evalRepo := buildEngine(repository.SupplierOrderStats{})
	addRating(t, uc, 4)
	addRating(t, uc, 5)

	evals, err := uc.ListEvaluations("sup-1")
	require.NoError(t, err)
	assert.Len(t, evals, 2)
	assert.Len(t, evalRepo.evals, 2)

	for _, e := range evals {
		assert.Equal(t, "user-1", e.EvaluatedBy)
		assert.False(t, e.CreatedAt.After(time.Now()))
	}
}
