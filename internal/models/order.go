package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a customer order for a single product.
type Order struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID   uint            `json:"product_id" gorm:"not null;index"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"` // Price per unit at the time of order
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	Status      string          `json:"status" gorm:"type:varchar(20);not null"` // e.g., "pending", "processing", "shipped", "delivered", "cancelled"
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
