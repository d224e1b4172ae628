package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jjpos/jjpos-api/pkg/currency"
)

// Customer represents a buyer who may carry negotiated per-product prices
type Customer struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Prices []CustomerPrice `gorm:"foreignKey:CustomerID" json:"-"`
	Sales  []Sale          `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// CustomerPrice is a customer-specific unit price overriding the product's
// default. The (customer_id, product_id) pair is unique; the price resolver
// relies on that.
type CustomerPrice struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_customer_product" json:"customer_id"`
	ProductID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_customer_product" json:"product_id"`
	Price      int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
	Product  Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (cp CustomerPrice) MarshalJSON() ([]byte, error) {
	type Alias CustomerPrice
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(cp),
		Price: currency.DollarsFromCents(cp.Price),
	})
}

// BeforeCreate generates a UUID before creating a new customer price
func (cp *CustomerPrice) BeforeCreate(tx *gorm.DB) error {
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CustomerPrice model
func (CustomerPrice) TableName() string {
	return "customer_prices"
}
