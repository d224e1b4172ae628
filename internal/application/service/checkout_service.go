package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
	"github.com/jjpos/jjpos-api/internal/domain/enum"
	"github.com/jjpos/jjpos-api/internal/domain/repository"
	"github.com/jjpos/jjpos-api/pkg/apperror"
)

// CheckoutService turns a cart into a durable sale. The sale store offers
// only independent single-row-set writes, so checkout is two steps: create
// the sale row, then batch-insert its items. This service, not the store,
// owns the failure semantics between those writes.
type CheckoutService struct {
	saleRepo     repository.SaleRepository
	saleItemRepo repository.SaleItemRepository
	carts        *CartService
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	saleRepo repository.SaleRepository,
	saleItemRepo repository.SaleItemRepository,
	carts *CartService,
) *CheckoutService {
	return &CheckoutService{
		saleRepo:     saleRepo,
		saleItemRepo: saleItemRepo,
		carts:        carts,
	}
}

// Checkout persists the session's cart as a completed sale. It works off a
// snapshot taken under the session lock: the total and the items both come
// from the same frozen copy, so a line edit racing the store writes cannot
// make them diverge.
//
// Failure contract:
//   - empty cart: validation error, no store call, no side effect
//   - sale row creation fails: SaleCreationFailedError, nothing persisted,
//     cart intact, safe to retry from scratch
//   - item insertion fails: PartialCheckoutError carrying the created sale
//     id, cart intact; retry with RetryItems or roll the sale back, since a
//     fresh checkout would duplicate the sale row
//
// The cart is cleared only after the item write confirms, and only if no
// edit landed while the writes were in flight.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID uuid.UUID) (*entity.Sale, error) {
	cart, version, err := s.carts.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, apperror.ErrEmptyCart
	}

	sale := &entity.Sale{
		CustomerID: cart.CustomerID,
		Total:      cart.Total(),
		Status:     enum.SaleStatusCompleted,
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, apperror.NewSaleCreationFailed(err)
	}

	items := s.itemsFromCart(sale.ID, cart)
	if err := s.saleItemRepo.CreateBatch(ctx, items); err != nil {
		return nil, apperror.NewPartialCheckout(sale.ID, err)
	}

	s.carts.ClearIfUnchanged(sessionID, version)
	sale.Items = items
	return sale, nil
}

// RetryItems re-attempts the item insertion for a sale left behind by a
// partial checkout, using the already-assigned sale id. It is idempotent:
// if the items landed after all, nothing is inserted again. The cart is
// cleared once the sale is whole.
func (s *CheckoutService) RetryItems(ctx context.Context, sessionID, saleID uuid.UUID) (*entity.Sale, error) {
	cart, version, err := s.carts.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}

	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	count, err := s.saleItemRepo.CountBySale(ctx, saleID)
	if err != nil {
		return nil, apperror.NewPartialCheckout(saleID, err)
	}
	if count > 0 {
		// Items landed on a previous attempt; the sale is already whole.
		s.carts.ClearIfUnchanged(sessionID, version)
		return s.saleRepo.GetWithItems(ctx, saleID)
	}

	if cart.IsEmpty() {
		return nil, apperror.NewBadRequestError("Cart no longer holds the lines of this sale")
	}
	if cart.Total() != sale.Total {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "cart", Message: "cart total no longer matches the sale total"},
		})
	}

	items := s.itemsFromCart(saleID, cart)
	if err := s.saleItemRepo.CreateBatch(ctx, items); err != nil {
		return nil, apperror.NewPartialCheckout(saleID, err)
	}

	s.carts.ClearIfUnchanged(sessionID, version)
	sale.Items = items
	return sale, nil
}

// itemsFromCart freezes the cart lines as sale items. Each item carries the
// product snapshot from the cart so a receipt can be formatted without
// another catalog read.
func (s *CheckoutService) itemsFromCart(saleID uuid.UUID, cart *entity.Cart) []entity.SaleItem {
	items := make([]entity.SaleItem, len(cart.Lines))
	for i, line := range cart.Lines {
		items[i] = entity.SaleItem{
			SaleID:    saleID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice,
			Product: entity.Product{
				ID:       line.ProductID,
				Name:     line.Name,
				ImageURL: line.ImageURL,
			},
		}
	}
	return items
}
