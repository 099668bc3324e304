package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de una orden de compra.
type OrderItemRequest struct {
	ProductID        string          `json:"product_id"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	ReceivedQuantity int             `json:"received_quantity,omitempty"`
}

// CreateOrderRequest body para POST /api/procurement/orders.
type CreateOrderRequest struct {
	OrderNumber          string             `json:"order_number"`
	SupplierID           string             `json:"supplier_id"`
	Status               string             `json:"status,omitempty"` // default PENDING
	ExpectedDeliveryDate *time.Time         `json:"expected_delivery_date,omitempty"`
	Notes                string             `json:"notes,omitempty"`
	Items                []OrderItemRequest `json:"items"`
}

// UpdateOrderRequest body para PUT /api/procurement/orders/:id.
type UpdateOrderRequest struct {
	Status               string             `json:"status,omitempty"`
	ExpectedDeliveryDate *time.Time         `json:"expected_delivery_date,omitempty"`
	ActualDeliveryDate   *time.Time         `json:"actual_delivery_date,omitempty"`
	Notes                string             `json:"notes,omitempty"`
	Items                []OrderItemRequest `json:"items,omitempty"`
}
