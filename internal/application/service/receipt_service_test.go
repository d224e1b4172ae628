package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
)

func receiptSale() *entity.Sale {
	burgerID := uuid.New()
	friesID := uuid.New()
	return &entity.Sale{
		ID:        uuid.New(),
		Total:     1250,
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Items: []entity.SaleItem{
			{ProductID: burgerID, Quantity: 2, Price: 500, Product: entity.Product{ID: burgerID, Name: "Burger"}},
			{ProductID: friesID, Quantity: 1, Price: 250, Product: entity.Product{ID: friesID, Name: "Fries"}},
		},
	}
}

func TestFormat_DualCurrencyTotals(t *testing.T) {
	svc := NewReceiptService(&mockSaleRepo{}, &mockCustomerRepo{}, "JJ POS System")

	receipt, err := svc.Format(receiptSale(), nil, 4100)

	require.NoError(t, err)
	assert.Equal(t, "JJ POS System", receipt.Header.StoreName)
	assert.Empty(t, receipt.Header.Customer)
	assert.Equal(t, 12.50, receipt.TotalUSD)
	assert.Equal(t, int64(51250), receipt.TotalKHR)
	assert.Equal(t, 4100.0, receipt.ExchangeRate)

	require.Len(t, receipt.Lines, 2)
	assert.Equal(t, "Burger", receipt.Lines[0].Name)
	assert.Equal(t, 2, receipt.Lines[0].Quantity)
	assert.Equal(t, 5.00, receipt.Lines[0].UnitPrice)
	assert.Equal(t, 10.00, receipt.Lines[0].Total)
}

func TestFormat_UsesPersistedTotalVerbatim(t *testing.T) {
	// The USD total comes from the sale row, never recomputed from the
	// lines, so a receipt always matches what was stored
	svc := NewReceiptService(&mockSaleRepo{}, &mockCustomerRepo{}, "JJ POS System")
	sale := receiptSale()
	sale.Total = 1300 // deliberately different from the line sum

	receipt, err := svc.Format(sale, nil, 4100)

	require.NoError(t, err)
	assert.Equal(t, 13.00, receipt.TotalUSD)
	assert.Equal(t, int64(53300), receipt.TotalKHR)
}

func TestFormat_LineOrderDoesNotChangeTotals(t *testing.T) {
	svc := NewReceiptService(&mockSaleRepo{}, &mockCustomerRepo{}, "JJ POS System")
	sale := receiptSale()

	first, err := svc.Format(sale, nil, 4100)
	require.NoError(t, err)

	sale.Items[0], sale.Items[1] = sale.Items[1], sale.Items[0]
	second, err := svc.Format(sale, nil, 4100)
	require.NoError(t, err)

	assert.Equal(t, first.TotalUSD, second.TotalUSD)
	assert.Equal(t, first.TotalKHR, second.TotalKHR)
}

func TestFormat_CustomerNameOnHeader(t *testing.T) {
	svc := NewReceiptService(&mockSaleRepo{}, &mockCustomerRepo{}, "JJ POS System")
	customer := &entity.Customer{ID: uuid.New(), Name: "Sokha"}

	receipt, err := svc.Format(receiptSale(), customer, 4100)

	require.NoError(t, err)
	assert.Equal(t, "Sokha", receipt.Header.Customer)
}

func TestFormat_InvalidRateRejected(t *testing.T) {
	svc := NewReceiptService(&mockSaleRepo{}, &mockCustomerRepo{}, "JJ POS System")

	_, err := svc.Format(receiptSale(), nil, 0)

	require.Error(t, err)
}

func TestBuildForSale_LoadsSaleAndCustomer(t *testing.T) {
	sale := receiptSale()
	customerID := uuid.New()
	sale.CustomerID = &customerID

	saleRepo := &mockSaleRepo{
		getWithItemsFn: func(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
			if id == sale.ID {
				return sale, nil
			}
			return nil, nil
		},
	}
	customerRepo := &mockCustomerRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
			return &entity.Customer{ID: customerID, Name: "Sokha"}, nil
		},
	}
	svc := NewReceiptService(saleRepo, customerRepo, "JJ POS System")

	receipt, err := svc.BuildForSale(context.Background(), sale.ID, 4000)

	require.NoError(t, err)
	assert.Equal(t, "Sokha", receipt.Header.Customer)
	assert.Equal(t, int64(50000), receipt.TotalKHR)
}

func TestBuildForSale_UnknownSale(t *testing.T) {
	svc := NewReceiptService(&mockSaleRepo{}, &mockCustomerRepo{}, "JJ POS System")

	_, err := svc.BuildForSale(context.Background(), uuid.New(), 4100)

	require.Error(t, err)
}
