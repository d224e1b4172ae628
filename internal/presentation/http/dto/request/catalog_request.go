package request

import "github.com/google/uuid"

// ProductRequest is the create/update product payload. Price is in dollars.
type ProductRequest struct {
	Name        string      `json:"name" binding:"required"`
	Price       float64     `json:"price"`
	ImageURL    *string     `json:"image_url"`
	CategoryIDs []uuid.UUID `json:"category_ids"`
}

// CategoryRequest is the create/update category payload
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
