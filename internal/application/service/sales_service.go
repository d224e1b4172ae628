package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
	"github.com/jjpos/jjpos-api/internal/domain/repository"
	"github.com/jjpos/jjpos-api/pkg/apperror"
	"github.com/jjpos/jjpos-api/pkg/pagination"
)

// SalesService serves the sales history screen
type SalesService struct {
	saleRepo repository.SaleRepository
}

// NewSalesService creates a new sales service
func NewSalesService(saleRepo repository.SaleRepository) *SalesService {
	return &SalesService{saleRepo: saleRepo}
}

// ListSales lists sales with date range and customer filtering
func (s *SalesService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// GetSale retrieves a sale with its items
func (s *SalesService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}
