package dto

import "github.com/shopspring/decimal"

// AddEvaluationRequest body para POST /api/suppliers/:id/evaluations.
type AddEvaluationRequest struct {
	Rating decimal.Decimal `json:"rating"` // 0.00–5.00
	Notes  string          `json:"notes,omitempty"`
}

// SupplierPerformanceDTO snapshot de desempeño de un proveedor.
type SupplierPerformanceDTO struct {
	SupplierID        string          `json:"supplier_id"`
	SupplierName      string          `json:"supplier_name"`
	EvaluationCount   int             `json:"evaluation_count"`
	TotalOrders       int             `json:"total_orders"`
	CompletedOrders   int             `json:"completed_orders"`
	OnTimeOrders      int             `json:"on_time_orders"`
	OnTimeRate        decimal.Decimal `json:"on_time_rate"` // %, 0 si no hay completadas
	AverageRating     decimal.Decimal `json:"average_rating"`
	PerformanceScore  decimal.Decimal `json:"performance_score"`
	PerformanceStatus string          `json:"performance_status"`
}
