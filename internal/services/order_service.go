package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ErrInsufficientStock is returned when an order asks for more units than
// the product has in stock.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrInvalidOrderStatus is returned when a status transition names an
// unknown status.
var ErrInvalidOrderStatus = errors.New("invalid order status")

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder places an order for a quantity of a product. The product's
// current price is captured on the order row and its stock is reduced by
// the ordered quantity.
func (s *OrderService) CreateOrder(productID uint, quantity int) (*models.Order, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", productID, err)
	}

	if product.Stock < quantity {
		return nil, fmt.Errorf("product %q (requested: %d, available: %d): %w",
			product.Name, quantity, product.Stock, ErrInsufficientStock)
	}

	newOrder := &models.Order{
		ProductID:   product.ID,
		Quantity:    quantity,
		Price:       product.Price, // Price at the time of order
		TotalAmount: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Status:      "pending",
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	product.Stock -= quantity
	if err := s.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to adjust stock for product %d: %w", product.ID, err)
	}

	return newOrder, nil
}

// UpdateOrderStatus updates the status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	validStatuses := map[string]bool{"pending": true, "processing": true, "shipped": true, "delivered": true, "cancelled": true}
	if _, ok := validStatuses[status]; !ok {
		return fmt.Errorf("%w: %s", ErrInvalidOrderStatus, status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	return nil
}
