package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
	"github.com/jjpos/jjpos-api/internal/domain/enum"
	"github.com/jjpos/jjpos-api/pkg/apperror"
)

type checkoutFixture struct {
	carts     *CartService
	checkout  *CheckoutService
	saleRepo  *mockSaleRepo
	itemRepo  *mockSaleItemRepo
	sessionID uuid.UUID
	burger    *entity.Product
	fries     *entity.Product
}

// newCheckoutFixture wires a cart session against an in-memory catalog of
// two products. TTL zero disables the session reaper.
func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	burger := &entity.Product{ID: uuid.New(), Name: "Burger", Price: 500}
	fries := &entity.Product{ID: uuid.New(), Name: "Fries", Price: 250}
	catalog := map[uuid.UUID]*entity.Product{burger.ID: burger, fries.ID: fries}

	productRepo := &mockProductRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
			return catalog[id], nil
		},
	}
	pricing := NewPricingService(&mockCustomerPriceRepo{})
	carts := NewCartService(productRepo, &mockCustomerRepo{}, pricing, 0)

	saleRepo := &mockSaleRepo{}
	itemRepo := &mockSaleItemRepo{}

	return &checkoutFixture{
		carts:     carts,
		checkout:  NewCheckoutService(saleRepo, itemRepo, carts),
		saleRepo:  saleRepo,
		itemRepo:  itemRepo,
		sessionID: carts.CreateSession().ID,
		burger:    burger,
		fries:     fries,
	}
}

func (f *checkoutFixture) fillCart(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	// Burger x2 at $5.00, Fries x1 at $2.50
	_, err := f.carts.AddProduct(ctx, f.sessionID, f.burger.ID)
	require.NoError(t, err)
	_, err = f.carts.AddProduct(ctx, f.sessionID, f.burger.ID)
	require.NoError(t, err)
	_, err = f.carts.AddProduct(ctx, f.sessionID, f.fries.ID)
	require.NoError(t, err)
}

func TestCheckout_EmptyCartRejectedWithoutStoreCalls(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.checkout.Checkout(context.Background(), f.sessionID)

	require.ErrorIs(t, err, apperror.ErrEmptyCart)
	assert.Zero(t, f.saleRepo.createCalls)
	assert.Zero(t, f.itemRepo.createBatchCalls)
}

func TestCheckout_Success(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t)

	sale, err := f.checkout.Checkout(context.Background(), f.sessionID)

	require.NoError(t, err)
	assert.Equal(t, int64(1250), sale.Total)
	assert.Equal(t, enum.SaleStatusCompleted, sale.Status)
	require.Len(t, sale.Items, 2)

	byProduct := map[uuid.UUID]entity.SaleItem{}
	for _, item := range sale.Items {
		assert.Equal(t, sale.ID, item.SaleID)
		byProduct[item.ProductID] = item
	}
	assert.Equal(t, 2, byProduct[f.burger.ID].Quantity)
	assert.Equal(t, int64(500), byProduct[f.burger.ID].Price)
	assert.Equal(t, 1, byProduct[f.fries.ID].Quantity)
	assert.Equal(t, int64(250), byProduct[f.fries.ID].Price)

	// Cart is cleared only after both writes confirm
	cart, err := f.carts.GetCart(f.sessionID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCheckout_SaleRowFailureLeavesCartIntact(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t)
	f.saleRepo.createFn = func(ctx context.Context, sale *entity.Sale) error {
		return errors.New("connection reset")
	}

	_, err := f.checkout.Checkout(context.Background(), f.sessionID)

	var saleErr *apperror.SaleCreationFailedError
	require.ErrorAs(t, err, &saleErr)
	assert.Zero(t, f.itemRepo.createBatchCalls)

	cart, getErr := f.carts.GetCart(f.sessionID)
	require.NoError(t, getErr)
	assert.Equal(t, int64(1250), cart.Total())
}

func TestCheckout_ItemFailureIsPartialWithSaleID(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t)

	var createdSaleID uuid.UUID
	f.saleRepo.createFn = func(ctx context.Context, sale *entity.Sale) error {
		sale.ID = uuid.New()
		createdSaleID = sale.ID
		return nil
	}
	f.itemRepo.createBatchFn = func(ctx context.Context, items []entity.SaleItem) error {
		return errors.New("connection reset")
	}

	_, err := f.checkout.Checkout(context.Background(), f.sessionID)

	var partial *apperror.PartialCheckoutError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, createdSaleID, partial.SaleID)

	// The cart survives so the recovery path can re-derive the items
	cart, getErr := f.carts.GetCart(f.sessionID)
	require.NoError(t, getErr)
	assert.Equal(t, int64(1250), cart.Total())
}

func TestRetryItems_InsertsItemsAndClearsCart(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t)

	saleID := uuid.New()
	f.saleRepo.getByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
		return &entity.Sale{ID: saleID, Total: 1250, Status: enum.SaleStatusCompleted}, nil
	}

	sale, err := f.checkout.RetryItems(context.Background(), f.sessionID, saleID)

	require.NoError(t, err)
	assert.Equal(t, 1, f.itemRepo.createBatchCalls)
	require.Len(t, sale.Items, 2)

	cart, getErr := f.carts.GetCart(f.sessionID)
	require.NoError(t, getErr)
	assert.True(t, cart.IsEmpty())
}

func TestRetryItems_ItemsAlreadyLandedSkipsInsert(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t)

	saleID := uuid.New()
	whole := &entity.Sale{ID: saleID, Total: 1250, Items: []entity.SaleItem{{SaleID: saleID}}}
	f.saleRepo.getByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
		return &entity.Sale{ID: saleID, Total: 1250}, nil
	}
	f.saleRepo.getWithItemsFn = func(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
		return whole, nil
	}
	f.itemRepo.countBySaleFn = func(ctx context.Context, id uuid.UUID) (int64, error) {
		return 2, nil
	}

	sale, err := f.checkout.RetryItems(context.Background(), f.sessionID, saleID)

	require.NoError(t, err)
	assert.Same(t, whole, sale)
	assert.Zero(t, f.itemRepo.createBatchCalls)
}

func TestRetryItems_UnknownSale(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t)

	_, err := f.checkout.RetryItems(context.Background(), f.sessionID, uuid.New())

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestRetryItems_TotalMismatchRejected(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t)

	saleID := uuid.New()
	f.saleRepo.getByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
		return &entity.Sale{ID: saleID, Total: 9999}, nil
	}

	_, err := f.checkout.RetryItems(context.Background(), f.sessionID, saleID)

	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
	assert.Zero(t, f.itemRepo.createBatchCalls)
}

func TestCheckout_EditDuringStoreWriteKeepsSaleConsistent(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t)

	// A cashier edit lands while the sale row write is in flight. The sale
	// must persist the snapshot: total and items from the same frozen copy.
	f.saleRepo.createFn = func(ctx context.Context, sale *entity.Sale) error {
		_, err := f.carts.SetQuantity(f.sessionID, f.burger.ID, 10)
		require.NoError(t, err)
		sale.ID = uuid.New()
		return nil
	}

	var persisted []entity.SaleItem
	f.itemRepo.createBatchFn = func(ctx context.Context, items []entity.SaleItem) error {
		persisted = items
		return nil
	}

	sale, err := f.checkout.Checkout(context.Background(), f.sessionID)

	require.NoError(t, err)
	assert.Equal(t, int64(1250), sale.Total)

	var sum int64
	for _, item := range persisted {
		sum += item.Price * int64(item.Quantity)
	}
	assert.Equal(t, sale.Total, sum)

	// The mid-flight edit survives instead of being cleared away
	cart, getErr := f.carts.GetCart(f.sessionID)
	require.NoError(t, getErr)
	assert.Equal(t, int64(5250), cart.Total())
}

func TestCheckout_ManualPriceEditFlowsIntoSale(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := f.carts.AddProduct(ctx, f.sessionID, f.burger.ID)
	require.NoError(t, err)
	_, err = f.carts.SetPrice(f.sessionID, f.burger.ID, 475)
	require.NoError(t, err)

	sale, err := f.checkout.Checkout(ctx, f.sessionID)

	require.NoError(t, err)
	assert.Equal(t, int64(475), sale.Total)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, int64(475), sale.Items[0].Price)
}
