package repositories

import (
	"errors"

	"storefront/internal/models"
)

// ErrOrderNotFound is returned when the requested order does not exist.
// Callers should test for it with errors.Is.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status string) error
	// Orders are never deleted; cancellation is a status transition.
}
