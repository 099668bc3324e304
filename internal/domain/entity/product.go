package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock de un producto (etiquetas para reportes y alertas).
const (
	StockStatusOut = "Out of Stock"
	StockStatusLow = "Low Stock"
	StockStatusIn  = "In Stock"
)

// Product representa un producto o SKU del inventario.
// CurrentStock solo se modifica vía el libro de stock (StockTransaction);
// nunca se borra físicamente, se desactiva con IsActive.
type Product struct {
	ID              string
	SKU             string // código único
	Name            string
	Description     string
	CategoryID      string // vacío si no tiene categoría
	UnitPrice       decimal.Decimal
	CurrentStock    int // nunca negativo tras aplicar una transacción
	ReorderLevel    int // umbral de stock bajo (>= 0)
	ReorderQuantity int // cantidad sugerida de pedido (>= 1)
	UnitOfMeasure   string
	Location        string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsLowStock indica si el stock está en o por debajo del punto de reorden.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.ReorderLevel
}

// StockStatus devuelve la etiqueta de estado del stock.
func (p *Product) StockStatus() string {
	switch {
	case p.CurrentStock == 0:
		return StockStatusOut
	case p.IsLowStock():
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// TotalValue devuelve el valor total del stock actual (cantidad × precio unitario).
func (p *Product) TotalValue() decimal.Decimal {
	return decimal.NewFromInt(int64(p.CurrentStock)).Mul(p.UnitPrice)
}
