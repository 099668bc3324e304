package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/erp-procurement/internal/application/stock"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
)

func TestReorderSuggestions_SoloBajosConEtiqueta(t *testing.T) {
	agotado := &entity.Product{
		ID: "p1", SKU: "SKU-1", Name: "Agotado",
		CurrentStock: 0, ReorderLevel: 5, ReorderQuantity: 50, IsActive: true,
	}
	bajo := &entity.Product{
		ID: "p2", SKU: "SKU-2", Name: "Bajo",
		CurrentStock: 3, ReorderLevel: 5, ReorderQuantity: 20, IsActive: true,
	}
	sano := &entity.Product{
		ID: "p3", SKU: "SKU-3", Name: "Sano",
		CurrentStock: 100, ReorderLevel: 5, ReorderQuantity: 10, IsActive: true,
	}
	uc := stock.NewMonitoringUseCase(newFakeProductRepo(agotado, bajo, sano))

	suggestions, err := uc.ReorderSuggestions()
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	// Ascendente por stock actual: primero el agotado.
	assert.Equal(t, "p1", suggestions[0].ProductID)
	assert.Equal(t, "Out of Stock", suggestions[0].Status)
	assert.Equal(t, 50, suggestions[0].SuggestedQuantity)

	assert.Equal(t, "p2", suggestions[1].ProductID)
	assert.Equal(t, "Low Stock", suggestions[1].Status)
	assert.Equal(t, 20, suggestions[1].SuggestedQuantity)
}

// El borde: stock exactamente en el punto de reorden cuenta como bajo.
func TestLowStockProducts_IncluyeElBorde(t *testing.T) {
	enBorde := &entity.Product{
		ID: "p1", SKU: "SKU-1", CurrentStock: 5, ReorderLevel: 5, IsActive: true,
	}
	uc := stock.NewMonitoringUseCase(newFakeProductRepo(enBorde))

	low, err := uc.LowStockProducts()
	require.NoError(t, err)
	assert.Len(t, low, 1)
}

func TestOutOfStockProducts_SoloCero(t *testing.T) {
	agotado := &entity.Product{ID: "p1", CurrentStock: 0, ReorderLevel: 5, IsActive: true}
	bajo := &entity.Product{ID: "p2", CurrentStock: 1, ReorderLevel: 5, IsActive: true}
	uc := stock.NewMonitoringUseCase(newFakeProductRepo(agotado, bajo))

	out, err := uc.OutOfStockProducts()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)
}
