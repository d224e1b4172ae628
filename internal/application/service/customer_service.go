package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
	"github.com/jjpos/jjpos-api/internal/domain/repository"
	"github.com/jjpos/jjpos-api/pkg/apperror"
	"github.com/jjpos/jjpos-api/pkg/currency"
)

// CustomerService handles customer and customer price list operations
type CustomerService struct {
	customerRepo      repository.CustomerRepository
	customerPriceRepo repository.CustomerPriceRepository
	productRepo       repository.ProductRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	customerPriceRepo repository.CustomerPriceRepository,
	productRepo repository.ProductRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo:      customerRepo,
		customerPriceRepo: customerPriceRepo,
		productRepo:       productRepo,
	}
}

// CustomerInput represents the create/update customer input
type CustomerInput struct {
	Name  string
	Phone *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CustomerInput) (*entity.Customer, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "is required"},
		})
	}

	customer := &entity.Customer{Name: input.Name, Phone: input.Phone}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with optional name search
func (s *CustomerService) ListCustomers(ctx context.Context, search string) ([]entity.Customer, error) {
	return s.customerRepo.List(ctx, search)
}

// UpdateCustomer updates a customer's name and phone
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "is required"},
		})
	}

	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Name = input.Name
	customer.Phone = input.Phone
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}

// CustomerPriceInput represents the create/update customer price input
type CustomerPriceInput struct {
	CustomerID uuid.UUID
	ProductID  uuid.UUID
	Price      float64
}

// CreateCustomerPrice adds a per-product override price for a customer.
// At most one override may exist per (customer, product) pair.
func (s *CustomerService) CreateCustomerPrice(ctx context.Context, input *CustomerPriceInput) (*entity.CustomerPrice, error) {
	if input.Price < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "price", Message: "must not be negative"},
		})
	}

	if _, err := s.GetCustomer(ctx, input.CustomerID); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	price := &entity.CustomerPrice{
		CustomerID: input.CustomerID,
		ProductID:  input.ProductID,
		Price:      currency.CentsFromDollars(input.Price),
	}
	if err := s.customerPriceRepo.Create(ctx, price); err != nil {
		return nil, apperror.NewConflictError("A price for this customer and product already exists")
	}
	return price, nil
}

// ListCustomerPrices lists a customer's override prices
func (s *CustomerService) ListCustomerPrices(ctx context.Context, customerID uuid.UUID) ([]entity.CustomerPrice, error) {
	if _, err := s.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	return s.customerPriceRepo.ListByCustomer(ctx, customerID)
}

// UpdateCustomerPrice changes an override price
func (s *CustomerService) UpdateCustomerPrice(ctx context.Context, id uuid.UUID, amount float64) (*entity.CustomerPrice, error) {
	if amount < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "price", Message: "must not be negative"},
		})
	}

	price, err := s.customerPriceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, apperror.NewNotFoundError("Customer price")
	}

	price.Price = currency.CentsFromDollars(amount)
	if err := s.customerPriceRepo.Update(ctx, price); err != nil {
		return nil, err
	}
	return price, nil
}

// DeleteCustomerPrice removes an override price; the customer falls back to
// default pricing for that product
func (s *CustomerService) DeleteCustomerPrice(ctx context.Context, id uuid.UUID) error {
	price, err := s.customerPriceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if price == nil {
		return apperror.NewNotFoundError("Customer price")
	}
	return s.customerPriceRepo.Delete(ctx, id)
}
