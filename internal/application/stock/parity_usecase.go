package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-procurement/internal/application/dto"
	"github.com/tu-usuario/erp-procurement/internal/domain"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// ParityUseCase registra y resuelve discrepancias entre stock esperado y
// contado físicamente.
type ParityUseCase struct {
	parityRepo  repository.StockParityRepository
	productRepo repository.ProductRepository
}

// NewParityUseCase construye el caso de uso.
func NewParityUseCase(parityRepo repository.StockParityRepository, productRepo repository.ProductRepository) *ParityUseCase {
	return &ParityUseCase{parityRepo: parityRepo, productRepo: productRepo}
}

// Report registra una discrepancia. Discrepancy se calcula al guardar
// (actual − esperado).
func (uc *ParityUseCase) Report(in dto.ReportParityRequest) (*entity.StockParity, error) {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	parity := &entity.StockParity{
		ID:               uuid.New().String(),
		ProductID:        in.ProductID,
		ExpectedQuantity: in.ExpectedQuantity,
		ActualQuantity:   in.ActualQuantity,
		Reason:           in.Reason,
		CreatedAt:        time.Now(),
	}
	parity.ComputeDiscrepancy()
	if err := uc.parityRepo.Create(parity); err != nil {
		return nil, err
	}
	return parity, nil
}

// Get devuelve la discrepancia o ErrNotFound.
func (uc *ParityUseCase) Get(parityID string) (*entity.StockParity, error) {
	parity, err := uc.parityRepo.GetByID(parityID)
	if err != nil {
		return nil, err
	}
	if parity == nil {
		return nil, domain.ErrNotFound
	}
	return parity, nil
}

// Resolve marca la discrepancia como resuelta exactamente una vez,
// registrando quién y cuándo. Un segundo intento devuelve ErrConflict.
func (uc *ParityUseCase) Resolve(parityID, resolvedBy string) error {
	return uc.parityRepo.Resolve(parityID, resolvedBy, time.Now())
}

// ListUnresolved devuelve las discrepancias pendientes.
func (uc *ParityUseCase) ListUnresolved(limit, offset int) ([]*entity.StockParity, error) {
	return uc.parityRepo.List(false, limit, offset)
}
