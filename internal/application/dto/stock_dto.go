package dto

// ApplyTransactionRequest body para POST /api/stock/transactions.
type ApplyTransactionRequest struct {
	ProductID       string `json:"product_id"`
	Type            string `json:"type"` // IN, OUT, ADJUSTMENT, RETURN
	Quantity        int    `json:"quantity"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// ReorderSuggestionDTO sugerencia de reposición para un producto bajo en stock.
type ReorderSuggestionDTO struct {
	ProductID         string `json:"product_id"`
	SKU               string `json:"sku"`
	ProductName       string `json:"product_name"`
	CurrentStock      int    `json:"current_stock"`
	ReorderLevel      int    `json:"reorder_level"`
	SuggestedQuantity int    `json:"suggested_quantity"` // ReorderQuantity configurada del producto
	Status            string `json:"status"`             // "Out of Stock" o "Low Stock"
}

// ReportParityRequest body para POST /api/stock/parities.
type ReportParityRequest struct {
	ProductID        string `json:"product_id"`
	ExpectedQuantity int    `json:"expected_quantity"`
	ActualQuantity   int    `json:"actual_quantity"`
	Reason           string `json:"reason,omitempty"`
}
