package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
)

// CustomerRepository defines customer storage operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	List(ctx context.Context, search string) ([]entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CustomerPriceRepository defines per-customer price override storage.
// ListByCustomer returns rows ordered by creation time ascending, so a
// caller building a product→price map ends up with the most recently
// created row when the uniqueness invariant was ever violated upstream.
type CustomerPriceRepository interface {
	Create(ctx context.Context, price *entity.CustomerPrice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomerPrice, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.CustomerPrice, error)
	List(ctx context.Context) ([]entity.CustomerPrice, error)
	Update(ctx context.Context, price *entity.CustomerPrice) error
	Delete(ctx context.Context, id uuid.UUID) error
}
