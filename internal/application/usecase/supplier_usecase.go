package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-procurement/internal/application/dto"
	"github.com/tu-usuario/erp-procurement/internal/domain"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
	"github.com/tu-usuario/erp-procurement/internal/domain/repository"
)

// SupplierUseCase alta y consulta de proveedores. El rating nace en cero y
// solo lo mueve el motor de evaluaciones.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// Create valida y persiste un proveedor nuevo.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		ContactPerson:      in.ContactPerson,
		Email:              in.Email,
		Phone:              in.Phone,
		Address:            in.Address,
		Rating:             decimal.Zero,
		OnTimeDeliveryRate: decimal.Zero,
		QualityScore:       decimal.Zero,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetByID devuelve el proveedor o ErrNotFound.
func (uc *SupplierUseCase) GetByID(id string) (*entity.Supplier, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

// Update aplica cambios de contacto y estado. El rating no se toca acá:
// lo recalcula el motor de evaluaciones.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*entity.Supplier, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		supplier.Name = in.Name
	}
	if in.ContactPerson != "" {
		supplier.ContactPerson = in.ContactPerson
	}
	if in.Email != "" {
		supplier.Email = in.Email
	}
	if in.Phone != "" {
		supplier.Phone = in.Phone
	}
	if in.Address != "" {
		supplier.Address = in.Address
	}
	if in.IsActive != nil {
		supplier.IsActive = *in.IsActive
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// List busca proveedores por nombre/email.
func (uc *SupplierUseCase) List(search string, limit, offset int) ([]*entity.Supplier, error) {
	return uc.supplierRepo.List(search, limit, offset)
}

// ListTopRated devuelve los proveedores mejor calificados.
func (uc *SupplierUseCase) ListTopRated(limit int) ([]*entity.Supplier, error) {
	if limit <= 0 {
		limit = 5
	}
	return uc.supplierRepo.ListTopRated(limit)
}
