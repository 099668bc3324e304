package stock

import (
	"github.com/tu-usuario/erp-procurement/internal/application/dto"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// MonitoringUseCase consulta los productos bajos o agotados y arma las
// sugerencias de reposición. Solo lecturas.
type MonitoringUseCase struct {
	productRepo repository.ProductRepository
}

// NewMonitoringUseCase construye el caso de uso.
func NewMonitoringUseCase(productRepo repository.ProductRepository) *MonitoringUseCase {
	return &MonitoringUseCase{productRepo: productRepo}
}

// LowStockProducts devuelve los productos con current_stock <= reorder_level,
// ascendente por stock actual.
func (uc *MonitoringUseCase) LowStockProducts() ([]*entity.Product, error) {
	return uc.productRepo.ListLowStock()
}

// OutOfStockProducts devuelve los productos con stock cero.
func (uc *MonitoringUseCase) OutOfStockProducts() ([]*entity.Product, error) {
	return uc.productRepo.ListOutOfStock()
}

// ReorderSuggestions devuelve, por producto bajo en stock, la cantidad
// sugerida de pedido (la ReorderQuantity configurada) y su etiqueta de estado.
func (uc *MonitoringUseCase) ReorderSuggestions() ([]dto.ReorderSuggestionDTO, error) {
	lowStock, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	suggestions := make([]dto.ReorderSuggestionDTO, 0, len(lowStock))
	for _, p := range lowStock {
		suggestions = append(suggestions, dto.ReorderSuggestionDTO{
			ProductID:         p.ID,
			SKU:               p.SKU,
			ProductName:       p.Name,
			CurrentStock:      p.CurrentStock,
			ReorderLevel:      p.ReorderLevel,
			SuggestedQuantity: p.ReorderQuantity,
			Status:            suggestionStatus(p),
		})
	}
	return suggestions, nil
}

// suggestionStatus etiqueta "Out of Stock" para stock cero, "Low Stock" para el resto.
func suggestionStatus(p *entity.Product) string {
	if p.CurrentStock == 0 {
		return entity.StockStatusOut
	}
	return entity.StockStatusLow
}
