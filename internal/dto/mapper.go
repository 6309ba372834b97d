package dto

import "storefront/internal/models"

// The functions below translate between the persisted models and the
// request/response shapes. They are pure: no I/O, no validation, no default
// logic (the description default is applied when a request body is
// unmarshalled). They never write a product's ID; only the storage layer
// assigns it.

// ToProductResponse builds the read-side shape of a product. Stock stays
// behind.
func ToProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

// ToProductResponses maps a product list for the list endpoint. The result
// is never nil, so an empty list serializes as [].
func ToProductResponses(products []models.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses
}

// ProductFromCreateRequest builds a new product from a create request,
// leaving the ID at its zero value for the storage layer to assign.
func ProductFromCreateRequest(req CreateProductRequest) models.Product {
	return models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}
}

// ApplyProductUpdate overwrites every mutable field of the product with the
// request's values. This is a full replace, not a merge: callers must send
// the complete state, including fields they do not intend to change. The ID
// is left untouched.
func ApplyProductUpdate(p *models.Product, req UpdateProductRequest) {
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.Stock = req.Stock
}

// ToOrderResponse builds the read-side shape of an order.
func ToOrderResponse(o *models.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		ProductID:   o.ProductID,
		Quantity:    o.Quantity,
		Price:       o.Price,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}

// ToOrderResponses maps an order list for the list endpoint. The result is
// never nil, so an empty list serializes as [].
func ToOrderResponses(orders []models.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}
	return responses
}
