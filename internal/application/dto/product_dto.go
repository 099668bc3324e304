package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products. El stock inicial es
// cero: toda existencia entra vía transacciones de stock.
type CreateProductRequest struct {
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	CategoryID      string          `json:"category_id,omitempty"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	ReorderLevel    int             `json:"reorder_level"`
	ReorderQuantity int             `json:"reorder_quantity"`
	UnitOfMeasure   string          `json:"unit_of_measure,omitempty"`
	Location        string          `json:"location,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. No permite tocar
// CurrentStock (se maneja vía el libro de stock).
type UpdateProductRequest struct {
	Name            string           `json:"name,omitempty"`
	Description     string           `json:"description,omitempty"`
	CategoryID      string           `json:"category_id,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	ReorderLevel    *int             `json:"reorder_level,omitempty"`
	ReorderQuantity *int             `json:"reorder_quantity,omitempty"`
	UnitOfMeasure   string           `json:"unit_of_measure,omitempty"`
	Location        string           `json:"location,omitempty"`
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id. No permite tocar
// el rating (lo recalcula el motor de evaluaciones).
type UpdateSupplierRequest struct {
	Name          string `json:"name,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	IsActive      *bool  `json:"is_active,omitempty"`
}

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
}
