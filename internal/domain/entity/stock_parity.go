package entity

import "time"

// StockParity registra una discrepancia entre stock esperado y contado.
// Discrepancy se calcula al guardar (actual − esperado) y el registro se
// resuelve exactamente una vez.
type StockParity struct {
	ID               string
	ProductID        string
	ExpectedQuantity int
	ActualQuantity   int
	Discrepancy      int // ActualQuantity - ExpectedQuantity
	Reason           string
	Resolved         bool
	ResolvedBy       string // UserID, vacío mientras no esté resuelto
	ResolvedAt       *time.Time
	CreatedAt        time.Time
}

// ComputeDiscrepancy fija Discrepancy = actual − esperado.
func (p *StockParity) ComputeDiscrepancy() {
	p.Discrepancy = p.ActualQuantity - p.ExpectedQuantity
}
