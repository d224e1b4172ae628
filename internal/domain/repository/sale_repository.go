package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
	"github.com/jjpos/jjpos-api/pkg/pagination"
)

// SaleFilterParams holds filters for listing sales history
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// SaleRepository defines durable sale storage. Sales are append-only from
// the engine's point of view: there is no update or delete in the checkout
// contract.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
}

// SaleItemRepository defines sale line item storage. CreateBatch is the
// second write of the two-step checkout; CountBySale lets the recovery path
// check whether a partial checkout's items already landed before retrying.
type SaleItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.SaleItem) error
	CountBySale(ctx context.Context, saleID uuid.UUID) (int64, error)
}
