package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-procurement/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	// UpdateRating actualiza solo el rating derivado (motor de evaluaciones).
	UpdateRating(supplierID string, rating decimal.Decimal) error
	List(search string, limit, offset int) ([]*entity.Supplier, error)
	ListTopRated(limit int) ([]*entity.Supplier, error)
}
