package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/erp-procurement/internal/application/dto"
	"github.com/tu-usuario/erp-procurement/internal/application/stock"
	"github.com/tu-usuario/erp-procurement/internal/domain"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
)

func buildParity(products ...*entity.Product) (*stock.ParityUseCase, *fakeParityRepo) {
	parityRepo := newFakeParityRepo()
	return stock.NewParityUseCase(parityRepo, newFakeProductRepo(products...)), parityRepo
}

// Conteo físico 92 contra esperado 100: discrepancia −8.
func TestReportParity_CalculaDiscrepancia(t *testing.T) {
	uc, _ := buildParity(producto("p1", 100))

	parity, err := uc.Report(dto.ReportParityRequest{
		ProductID:        "p1",
		ExpectedQuantity: 100,
		ActualQuantity:   92,
		Reason:           "conteo mensual",
	})
	require.NoError(t, err)
	assert.Equal(t, -8, parity.Discrepancy)
	assert.False(t, parity.Resolved)
}

func TestReportParity_ProductoInexistente(t *testing.T) {
	uc, _ := buildParity()

	_, err := uc.Report(dto.ReportParityRequest{ProductID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La resolución es exactamente-una-vez: el segundo intento es conflicto.
func TestResolveParity_ExactamenteUnaVez(t *testing.T) {
	uc, parityRepo := buildParity(producto("p1", 10))

	parity, err := uc.Report(dto.ReportParityRequest{
		ProductID: "p1", ExpectedQuantity: 10, ActualQuantity: 8,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Resolve(parity.ID, "user-1"))
	stored := parityRepo.parities[parity.ID]
	assert.True(t, stored.Resolved)
	assert.Equal(t, "user-1", stored.ResolvedBy)
	require.NotNil(t, stored.ResolvedAt)

	err = uc.Resolve(parity.ID, "user-2")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "user-1", stored.ResolvedBy, "la primera resolución no debe sobrescribirse")
}

func TestListUnresolved_ExcluyeResueltas(t *testing.T) {
	uc, _ := buildParity(producto("p1", 10))

	a, err := uc.Report(dto.ReportParityRequest{ProductID: "p1", ExpectedQuantity: 10, ActualQuantity: 9})
	require.NoError(t, err)
	_, err = uc.Report(dto.ReportParityRequest{ProductID: "p1", ExpectedQuantity: 10, ActualQuantity: 12})
	require.NoError(t, err)

	require.NoError(t, uc.Resolve(a.ID, "user-1"))

	pending, err := uc.ListUnresolved(20, 0)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
