package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
	"github.com/jjpos/jjpos-api/internal/domain/repository"
	"github.com/jjpos/jjpos-api/pkg/apperror"
	"github.com/jjpos/jjpos-api/pkg/currency"
)

// ProductService handles catalog product operations
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{productRepo: productRepo, categoryRepo: categoryRepo}
}

// ProductInput represents the create/update product input
type ProductInput struct {
	Name        string
	Price       float64
	ImageURL    *string
	CategoryIDs []uuid.UUID
}

func (s *ProductService) validate(input *ProductInput) error {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "is required"})
	}
	if input.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func (s *ProductService) categories(ctx context.Context, ids []uuid.UUID) ([]entity.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	categories, err := s.categoryRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, apperror.NewNotFoundError("Category")
	}
	return categories, nil
}

// CreateProduct creates a new catalog product
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	categories, err := s.categories(ctx, input.CategoryIDs)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:       input.Name,
		Price:      currency.CentsFromDollars(input.Price),
		ImageURL:   input.ImageURL,
		Categories: categories,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists catalog products with optional search and category filter
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, error) {
	return s.productRepo.List(ctx, params)
}

// UpdateProduct updates a product's name, price, image and categories.
// Historical sale items keep their frozen prices regardless.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Price = currency.CentsFromDollars(input.Price)
	product.ImageURL = input.ImageURL
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	if err := s.productRepo.ReplaceCategories(ctx, product, input.CategoryIDs); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

// DeleteProduct removes a product from the catalog
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
