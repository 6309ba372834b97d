package models

import "github.com/shopspring/decimal"

// Product represents a product in the catalog.
// The ID is assigned by the storage layer on insert and never changes
// afterwards. Stock is internal inventory data and is not exposed through
// the read-side transfer object.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"type:varchar(100);not null"`
	Description string          `json:"description" gorm:"type:varchar(500)"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Stock       int             `json:"stock" gorm:"not null;default:0"`
}
