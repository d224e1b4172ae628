package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
	domainRepo "github.com/jjpos/jjpos-api/internal/domain/repository"
)

type customerPriceRepository struct {
	db *gorm.DB
}

// NewCustomerPriceRepository creates a new customer price repository
func NewCustomerPriceRepository(db *gorm.DB) domainRepo.CustomerPriceRepository {
	return &customerPriceRepository{db: db}
}

func (r *customerPriceRepository) Create(ctx context.Context, price *entity.CustomerPrice) error {
	return r.db.WithContext(ctx).Create(price).Error
}

func (r *customerPriceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomerPrice, error) {
	var price entity.CustomerPrice
	err := r.db.WithContext(ctx).First(&price, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &price, nil
}

// ListByCustomer returns the customer's overrides ordered by creation time
// ascending so map-building callers end up with the newest row per product.
func (r *customerPriceRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.CustomerPrice, error) {
	var prices []entity.CustomerPrice
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&prices).Error
	return prices, err
}

func (r *customerPriceRepository) List(ctx context.Context) ([]entity.CustomerPrice, error) {
	var prices []entity.CustomerPrice
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("created_at ASC").
		Find(&prices).Error
	return prices, err
}

func (r *customerPriceRepository) Update(ctx context.Context, price *entity.CustomerPrice) error {
	return r.db.WithContext(ctx).Save(price).Error
}

func (r *customerPriceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CustomerPrice{}, "id = ?", id).Error
}
