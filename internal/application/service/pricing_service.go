package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
	"github.com/jjpos/jjpos-api/internal/domain/repository"
	"github.com/jjpos/jjpos-api/pkg/apperror"
)

// PricingService resolves the unit price to charge for a product: the
// customer's override when one exists, the product's default otherwise.
type PricingService struct {
	customerPriceRepo repository.CustomerPriceRepository
}

// NewPricingService creates a new pricing service
func NewPricingService(customerPriceRepo repository.CustomerPriceRepository) *PricingService {
	return &PricingService{customerPriceRepo: customerPriceRepo}
}

// OverridesFor loads the customer's price overrides as a product→cents map.
// The repository returns rows ordered by creation time ascending, so if the
// (customer, product) uniqueness invariant was ever violated upstream the
// most recently created row wins. A nil customer id yields an empty map.
func (s *PricingService) OverridesFor(ctx context.Context, customerID *uuid.UUID) (map[uuid.UUID]int64, error) {
	if customerID == nil {
		return map[uuid.UUID]int64{}, nil
	}

	prices, err := s.customerPriceRepo.ListByCustomer(ctx, *customerID)
	if err != nil {
		return nil, apperror.NewCatalogUnavailable(err)
	}

	overrides := make(map[uuid.UUID]int64, len(prices))
	for _, p := range prices {
		overrides[p.ProductID] = p.Price
	}
	return overrides, nil
}

// ResolvePrice returns the unit price in cents for the product given the
// current customer's override lookup. A missing override is the common
// case, not an error.
func (s *PricingService) ResolvePrice(product *entity.Product, overrides map[uuid.UUID]int64) int64 {
	if price, ok := overrides[product.ID]; ok {
		return price
	}
	return product.Price
}
