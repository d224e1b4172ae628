package repository

import (
	"context"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
)

// IdempotencyRepository defines idempotency key storage operations
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
