package repository

import "github.com/tu-usuario/erp-procurement/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los productos nunca se borran físicamente (Deactivate apaga IsActive).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock actualiza solo CurrentStock (usado por el libro de stock).
	UpdateStock(productID string, stock int) error
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	List(search, status string, limit, offset int) ([]*entity.Product, error)
	// ListLowStock: current_stock <= reorder_level, ascendente por current_stock.
	ListLowStock() ([]*entity.Product, error)
	// ListOutOfStock: current_stock == 0.
	ListOutOfStock() ([]*entity.Product, error)
	Deactivate(id string) error
}
