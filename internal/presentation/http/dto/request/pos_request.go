package request

import "github.com/google/uuid"

// SelectCustomerRequest selects or clears (null) the session's customer
type SelectCustomerRequest struct {
	CustomerID *uuid.UUID `json:"customer_id"`
}

// AddLineRequest adds a product to the session's cart
type AddLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// UpdateLineRequest changes a cart line's quantity and/or unit price.
// Price is in dollars; a zero quantity removes the line.
type UpdateLineRequest struct {
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
}

// RetryCheckoutRequest re-attempts item insertion for a partial checkout
type RetryCheckoutRequest struct {
	SaleID uuid.UUID `json:"sale_id" binding:"required"`
}
