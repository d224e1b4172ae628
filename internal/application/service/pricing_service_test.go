package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
	"github.com/jjpos/jjpos-api/pkg/apperror"
)

func TestOverridesFor_NilCustomerYieldsEmptyMap(t *testing.T) {
	repo := &mockCustomerPriceRepo{
		listByCustomerFn: func(ctx context.Context, customerID uuid.UUID) ([]entity.CustomerPrice, error) {
			t.Fatal("repository must not be called for a nil customer")
			return nil, nil
		},
	}
	pricing := NewPricingService(repo)

	overrides, err := pricing.OverridesFor(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestOverridesFor_MapsProductToPrice(t *testing.T) {
	customerID := uuid.New()
	burgerID := uuid.New()
	friesID := uuid.New()

	repo := &mockCustomerPriceRepo{
		listByCustomerFn: func(ctx context.Context, id uuid.UUID) ([]entity.CustomerPrice, error) {
			assert.Equal(t, customerID, id)
			return []entity.CustomerPrice{
				{CustomerID: customerID, ProductID: burgerID, Price: 450},
				{CustomerID: customerID, ProductID: friesID, Price: 200},
			}, nil
		},
	}
	pricing := NewPricingService(repo)

	overrides, err := pricing.OverridesFor(context.Background(), &customerID)

	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int64{burgerID: 450, friesID: 200}, overrides)
}

func TestOverridesFor_DuplicateRowsMostRecentWins(t *testing.T) {
	// Rows arrive ordered by creation time ascending, so the later-created
	// duplicate overwrites the earlier one in the map
	customerID := uuid.New()
	burgerID := uuid.New()

	repo := &mockCustomerPriceRepo{
		listByCustomerFn: func(ctx context.Context, id uuid.UUID) ([]entity.CustomerPrice, error) {
			return []entity.CustomerPrice{
				{CustomerID: customerID, ProductID: burgerID, Price: 450},
				{CustomerID: customerID, ProductID: burgerID, Price: 425},
			}, nil
		},
	}
	pricing := NewPricingService(repo)

	overrides, err := pricing.OverridesFor(context.Background(), &customerID)

	require.NoError(t, err)
	assert.Equal(t, int64(425), overrides[burgerID])
}

func TestOverridesFor_RepoFailureIsCatalogUnavailable(t *testing.T) {
	customerID := uuid.New()
	repo := &mockCustomerPriceRepo{
		listByCustomerFn: func(ctx context.Context, id uuid.UUID) ([]entity.CustomerPrice, error) {
			return nil, errors.New("connection refused")
		},
	}
	pricing := NewPricingService(repo)

	_, err := pricing.OverridesFor(context.Background(), &customerID)

	var catalogErr *apperror.CatalogUnavailableError
	require.ErrorAs(t, err, &catalogErr)
}

func TestResolvePrice_OverrideWinsOverDefault(t *testing.T) {
	pricing := NewPricingService(&mockCustomerPriceRepo{})
	burger := &entity.Product{ID: uuid.New(), Name: "Burger", Price: 500}

	overrides := map[uuid.UUID]int64{burger.ID: 450}

	assert.Equal(t, int64(450), pricing.ResolvePrice(burger, overrides))
}

func TestResolvePrice_FallsBackToDefault(t *testing.T) {
	pricing := NewPricingService(&mockCustomerPriceRepo{})
	burger := &entity.Product{ID: uuid.New(), Name: "Burger", Price: 500}

	assert.Equal(t, int64(500), pricing.ResolvePrice(burger, map[uuid.UUID]int64{}))
	assert.Equal(t, int64(500), pricing.ResolvePrice(burger, map[uuid.UUID]int64{uuid.New(): 100}))
}

func TestResolvePrice_ZeroOverrideIsHonored(t *testing.T) {
	// A zero-price override means "free for this customer", not "unset"
	pricing := NewPricingService(&mockCustomerPriceRepo{})
	burger := &entity.Product{ID: uuid.New(), Name: "Burger", Price: 500}

	overrides := map[uuid.UUID]int64{burger.ID: 0}

	assert.Equal(t, int64(0), pricing.ResolvePrice(burger, overrides))
}
