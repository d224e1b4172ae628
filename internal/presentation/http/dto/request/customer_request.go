package request

import "github.com/google/uuid"

// CustomerRequest is the create/update customer payload
type CustomerRequest struct {
	Name  string  `json:"name" binding:"required"`
	Phone *string `json:"phone"`
}

// CustomerPriceRequest creates a per-product override price for a customer.
// Price is in dollars.
type CustomerPriceRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	ProductID  uuid.UUID `json:"product_id" binding:"required"`
	Price      float64   `json:"price"`
}

// UpdateCustomerPriceRequest changes an override price, in dollars
type UpdateCustomerPriceRequest struct {
	Price float64 `json:"price"`
}
