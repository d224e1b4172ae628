package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
	"github.com/jjpos/jjpos-api/internal/domain/repository"
	"github.com/jjpos/jjpos-api/pkg/apperror"
	"github.com/jjpos/jjpos-api/pkg/currency"
)

// ReceiptService composes printable dual-currency receipts from completed
// sales. Formatting is pure; rendering and printing live elsewhere.
type ReceiptService struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	storeName    string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	storeName string,
) *ReceiptService {
	return &ReceiptService{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		storeName:    storeName,
	}
}

// Format builds a receipt from a completed sale. The USD total is the
// persisted sale total verbatim (never recomputed from the lines), so the
// printed figure matches the stored one regardless of line order. The KHR
// total is derived from it at the given rate.
func (s *ReceiptService) Format(sale *entity.Sale, customer *entity.Customer, rate float64) (*entity.Receipt, error) {
	totalKHR, err := currency.ToRiel(sale.Total, decimal.NewFromFloat(rate))
	if err != nil {
		return nil, err
	}

	header := entity.ReceiptHeader{
		StoreName: s.storeName,
		Date:      sale.CreatedAt.Format(time.RFC1123),
	}
	if customer != nil {
		header.Customer = customer.Name
	}

	lines := make([]entity.ReceiptLine, len(sale.Items))
	for i, item := range sale.Items {
		lines[i] = entity.ReceiptLine{
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: currency.DollarsFromCents(item.Price),
			Total:     currency.DollarsFromCents(item.Price * int64(item.Quantity)),
		}
	}

	return &entity.Receipt{
		Header:       header,
		Lines:        lines,
		TotalUSD:     currency.DollarsFromCents(sale.Total),
		TotalKHR:     totalKHR,
		ExchangeRate: rate,
	}, nil
}

// BuildFromSale formats a receipt for a sale the caller already holds, as
// returned by checkout. The sale's items carry product snapshots, so only the
// customer name needs a lookup.
func (s *ReceiptService) BuildFromSale(ctx context.Context, sale *entity.Sale, rate float64) (*entity.Receipt, error) {
	var customer *entity.Customer
	if sale.CustomerID != nil {
		var err error
		customer, err = s.customerRepo.GetByID(ctx, *sale.CustomerID)
		if err != nil {
			return nil, err
		}
	}
	return s.Format(sale, customer, rate)
}

// BuildForSale loads a persisted sale and formats its receipt. Used by the
// sales history screen to reprint past receipts.
func (s *ReceiptService) BuildForSale(ctx context.Context, saleID uuid.UUID, rate float64) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	var customer *entity.Customer
	if sale.CustomerID != nil {
		customer, err = s.customerRepo.GetByID(ctx, *sale.CustomerID)
		if err != nil {
			return nil, err
		}
	}

	return s.Format(sale, customer, rate)
}
