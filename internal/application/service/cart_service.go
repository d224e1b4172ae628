package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
	"github.com/jjpos/jjpos-api/internal/domain/repository"
	"github.com/jjpos/jjpos-api/pkg/apperror"
)

// CartService owns the active checkout sessions. Each session holds one
// cart plus the override lookup for its selected customer. Sessions are
// in-memory only; an idle session is reaped after the configured TTL.
type CartService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*cartSession

	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	pricing      *PricingService
	ttl          time.Duration
}

type cartSession struct {
	cart *entity.Cart
	// overrides maps product id to the selected customer's override price.
	// Refreshed when the customer changes; consulted only at add time, so
	// lines already in the cart keep their snapshot price.
	overrides map[uuid.UUID]int64
	// version increments on every cart mutation. Checkout snapshots the
	// cart with its version and clears it afterwards only if the version
	// still matches, so edits made mid-checkout are never discarded.
	version  uint64
	lastSeen time.Time
}

// NewCartService creates a new cart session service
func NewCartService(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	pricing *PricingService,
	ttl time.Duration,
) *CartService {
	s := &CartService{
		sessions:     make(map[uuid.UUID]*cartSession),
		productRepo:  productRepo,
		customerRepo: customerRepo,
		pricing:      pricing,
		ttl:          ttl,
	}
	go s.cleanupLoop()
	return s
}

// CreateSession starts a new checkout session with an empty cart
func (s *CartService) CreateSession() *entity.Cart {
	cart := entity.NewCart()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[cart.ID] = &cartSession{
		cart:      cart,
		overrides: map[uuid.UUID]int64{},
		lastSeen:  time.Now(),
	}
	return cart
}

func (s *CartService) session(id uuid.UUID) (*cartSession, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Session")
	}
	sess.lastSeen = time.Now()
	return sess, nil
}

// GetCart returns the session's cart
func (s *CartService) GetCart(sessionID uuid.UUID) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.cart, nil
}

// SetCustomer selects (or clears, with nil) the session's customer and
// refreshes the override lookup. Lines already in the cart are NOT
// re-priced: prices resolve only at add time.
func (s *CartService) SetCustomer(ctx context.Context, sessionID uuid.UUID, customerID *uuid.UUID) (*entity.Cart, error) {
	if customerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *customerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	overrides, err := s.pricing.OverridesFor(ctx, customerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.cart.CustomerID = customerID
	sess.overrides = overrides
	sess.version++
	return sess.cart, nil
}

// Snapshot returns a detached copy of the session's cart together with the
// session's current version. Checkout works off the copy, so line edits
// racing the store writes cannot make the persisted items diverge from the
// persisted total.
func (s *CartService) Snapshot(sessionID uuid.UUID) (*entity.Cart, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, 0, err
	}
	return sess.cart.Copy(), sess.version, nil
}

// ClearIfUnchanged empties the cart only if no mutation happened since the
// snapshot with the given version was taken. An edit made while a checkout
// was in flight survives; the snapshot already checked out is durable either
// way.
func (s *CartService) ClearIfUnchanged(sessionID uuid.UUID, version uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return
	}
	if sess.version == version {
		sess.cart.Clear()
		sess.version++
	}
}

// AddProduct resolves the product's price for the session's customer and
// adds it to the cart. A product already in the cart gets its quantity
// incremented and keeps the price it was added at.
func (s *CartService) AddProduct(ctx context.Context, sessionID, productID uuid.UUID) (*entity.Cart, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, apperror.NewCatalogUnavailable(err)
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.cart.Add(product, s.pricing.ResolvePrice(product, sess.overrides)); err != nil {
		return nil, err
	}
	sess.version++
	return sess.cart, nil
}

// SetQuantity sets a line's quantity; below one the line is removed
func (s *CartService) SetQuantity(sessionID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.cart.SetQuantity(productID, quantity)
	sess.version++
	return sess.cart, nil
}

// SetPrice overrides a line's unit price (cents). This manual edit takes
// precedence over both the default and the customer price from then on.
func (s *CartService) SetPrice(sessionID, productID uuid.UUID, unitPrice int64) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.cart.SetPrice(productID, unitPrice); err != nil {
		return nil, err
	}
	sess.version++
	return sess.cart, nil
}

// RemoveLine drops a product from the cart
func (s *CartService) RemoveLine(sessionID, productID uuid.UUID) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.cart.Remove(productID)
	sess.version++
	return sess.cart, nil
}

// ClearCart empties the session's cart on explicit cashier action
func (s *CartService) ClearCart(sessionID uuid.UUID) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.cart.Clear()
	sess.version++
	return sess.cart, nil
}

// cleanupLoop periodically reaps sessions idle longer than the TTL
func (s *CartService) cleanupLoop() {
	if s.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(s.ttl / 4)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-s.ttl)
		s.mu.Lock()
		for id, sess := range s.sessions {
			if sess.lastSeen.Before(cutoff) {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}
