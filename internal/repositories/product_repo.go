package repositories

import (
	"errors"

	"storefront/internal/models"
)

// ErrProductNotFound is returned when the requested product does not exist.
// Callers should test for it with errors.Is.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
// Create assigns the ID; Update replaces every column of the row.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}
