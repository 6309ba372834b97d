package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the request body for placing an order. The price is
// not part of the request; the service captures the product's current price.
type CreateOrderRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

// UpdateOrderStatusRequest is the request body for moving an order to a new
// status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderResponse is the read-side shape of an order.
type OrderResponse struct {
	ID          string          `json:"id"`
	ProductID   uint            `json:"product_id"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}
