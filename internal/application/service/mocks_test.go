package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
	"github.com/jjpos/jjpos-api/internal/domain/repository"
)

// Hand-rolled repository fakes. Each method delegates to an optional
// function field so tests only stub what they use.

type mockProductRepo struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error { return nil }
func (m *mockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}
func (m *mockProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, error) {
	return nil, nil
}
func (m *mockProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }
func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (m *mockProductRepo) ReplaceCategories(ctx context.Context, product *entity.Product, categoryIDs []uuid.UUID) error {
	return nil
}

type mockCustomerRepo struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error { return nil }
func (m *mockCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}
func (m *mockCustomerRepo) List(ctx context.Context, search string) ([]entity.Customer, error) {
	return nil, nil
}
func (m *mockCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error { return nil }
func (m *mockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

type mockCustomerPriceRepo struct {
	listByCustomerFn func(ctx context.Context, customerID uuid.UUID) ([]entity.CustomerPrice, error)
}

func (m *mockCustomerPriceRepo) Create(ctx context.Context, price *entity.CustomerPrice) error {
	return nil
}
func (m *mockCustomerPriceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomerPrice, error) {
	return nil, nil
}
func (m *mockCustomerPriceRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.CustomerPrice, error) {
	if m.listByCustomerFn != nil {
		return m.listByCustomerFn(ctx, customerID)
	}
	return nil, nil
}
func (m *mockCustomerPriceRepo) List(ctx context.Context) ([]entity.CustomerPrice, error) {
	return nil, nil
}
func (m *mockCustomerPriceRepo) Update(ctx context.Context, price *entity.CustomerPrice) error {
	return nil
}
func (m *mockCustomerPriceRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type mockSaleRepo struct {
	createFn       func(ctx context.Context, sale *entity.Sale) error
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	getWithItemsFn func(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	createCalls    int
}

func (m *mockSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, sale)
	}
	sale.ID = uuid.New()
	return nil
}
func (m *mockSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}
func (m *mockSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	if m.getWithItemsFn != nil {
		return m.getWithItemsFn(ctx, id)
	}
	return nil, nil
}
func (m *mockSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	return nil, 0, nil
}

type mockSaleItemRepo struct {
	createBatchFn    func(ctx context.Context, items []entity.SaleItem) error
	countBySaleFn    func(ctx context.Context, saleID uuid.UUID) (int64, error)
	createBatchCalls int
}

func (m *mockSaleItemRepo) CreateBatch(ctx context.Context, items []entity.SaleItem) error {
	m.createBatchCalls++
	if m.createBatchFn != nil {
		return m.createBatchFn(ctx, items)
	}
	return nil
}
func (m *mockSaleItemRepo) CountBySale(ctx context.Context, saleID uuid.UUID) (int64, error) {
	if m.countBySaleFn != nil {
		return m.countBySaleFn(ctx, saleID)
	}
	return 0, nil
}
