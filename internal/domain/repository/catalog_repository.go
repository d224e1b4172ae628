package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
)

// ProductFilterParams holds filters for listing products
type ProductFilterParams struct {
	Search     string
	CategoryID *uuid.UUID
}

// ProductRepository defines the catalog's product operations. The POS
// engine only reads products; the catalog screens own mutation.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceCategories(ctx context.Context, product *entity.Product, categoryIDs []uuid.UUID) error
}

// CategoryRepository defines product category storage operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
