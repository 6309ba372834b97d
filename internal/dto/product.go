package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DefaultDescription is the sentinel stored when a request omits the
// description field.
const DefaultDescription = "--"

// ProductResponse is the read-side shape of a product. Stock is internal
// inventory data and must stay out of this shape.
type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// CreateProductRequest is the request body for creating a product. It has
// no ID field; the storage layer assigns one on insert.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

// UnmarshalJSON seeds the description default before decoding. A body that
// omits the field keeps DefaultDescription; an explicit empty string stays
// empty.
func (r *CreateProductRequest) UnmarshalJSON(data []byte) error {
	type plain CreateProductRequest
	req := plain{Description: DefaultDescription}
	if err := json.Unmarshal(data, &req); err != nil {
		return err
	}
	*r = CreateProductRequest(req)
	return nil
}

// UpdateProductRequest is the request body for updating a product. It has
// the same shape and description default as CreateProductRequest and
// replaces every mutable field: omitted fields arrive as their zero or
// default value and overwrite whatever is stored.
type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

// UnmarshalJSON seeds the description default before decoding, mirroring
// CreateProductRequest.
func (r *UpdateProductRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateProductRequest
	req := plain{Description: DefaultDescription}
	if err := json.Unmarshal(data, &req); err != nil {
		return err
	}
	*r = UpdateProductRequest(req)
	return nil
}
