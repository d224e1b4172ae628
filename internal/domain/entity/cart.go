package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/jjpos/jjpos-api/pkg/apperror"
)

// CartLine is one product in a cart. UnitPrice is seeded from the price
// resolver at add time and may be edited by the cashier afterwards; an edit
// survives repeated adds of the same product.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"-"` // Stored in cents
}

// Extension returns quantity × unit price for the line, in cents.
func (l CartLine) Extension() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart is the in-memory state of one checkout session. It is NOT a database
// entity: it lives only until checkout persists it as a sale. At most one
// line exists per product; adding an already-present product increments its
// quantity. Prices are resolved once, when a product enters the cart, and
// are not re-resolved when the selected customer changes.
//
// A cart is owned by a single cashier session and is not safe for
// concurrent use; the session registry serializes access.
type Cart struct {
	ID         uuid.UUID  `json:"id"`
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
	Lines      []CartLine `json:"lines"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewCart creates an empty cart for a new checkout session
func NewCart() *Cart {
	now := time.Now()
	return &Cart{
		ID:        uuid.New(),
		Lines:     make([]CartLine, 0, 8),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Cart) find(productID uuid.UUID) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Add puts a product into the cart at the given resolved unit price. If a
// line for the product already exists its quantity is incremented by one
// and its price is left untouched.
func (c *Cart) Add(product *Product, unitPrice int64) error {
	if unitPrice < 0 {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "price", Message: "must not be negative"},
		})
	}
	if i := c.find(product.ID); i >= 0 {
		c.Lines[i].Quantity++
	} else {
		c.Lines = append(c.Lines, CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			ImageURL:  product.ImageURL,
			Quantity:  1,
			UnitPrice: unitPrice,
		})
	}
	c.UpdatedAt = time.Now()
	return nil
}

// SetQuantity sets the quantity of the product's line. A quantity below one
// removes the line; quantities are never negative or fractional.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	if quantity < 1 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	} else {
		c.Lines[i].Quantity = quantity
	}
	c.UpdatedAt = time.Now()
}

// SetPrice overwrites the line's unit price. Negative prices are rejected
// with a validation error and the cart is left unchanged.
func (c *Cart) SetPrice(productID uuid.UUID, unitPrice int64) error {
	if unitPrice < 0 {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "price", Message: "must not be negative"},
		})
	}
	if i := c.find(productID); i >= 0 {
		c.Lines[i].UnitPrice = unitPrice
		c.UpdatedAt = time.Now()
	}
	return nil
}

// Copy returns a detached copy of the cart whose lines are safe to read
// after the lock guarding the original is released
func (c *Cart) Copy() *Cart {
	dup := *c
	dup.Lines = make([]CartLine, len(c.Lines))
	copy(dup.Lines, c.Lines)
	return &dup
}

// Remove drops the product's line if present; no-op otherwise
func (c *Cart) Remove(productID uuid.UUID) {
	if i := c.find(productID); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		c.UpdatedAt = time.Now()
	}
}

// Clear empties the cart. Used after a successful checkout or on explicit
// cashier action.
func (c *Cart) Clear() {
	c.Lines = c.Lines[:0]
	c.UpdatedAt = time.Now()
}

// Total returns the sum of line extensions in cents. Integer cent
// arithmetic keeps the result exact and independent of line order.
func (c *Cart) Total() int64 {
	var total int64
	for i := range c.Lines {
		total += c.Lines[i].Extension()
	}
	return total
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
