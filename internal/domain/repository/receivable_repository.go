package repository

import (
	"context"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/capelli/salonpos-api/pkg/pagination"
	"github.com/google/uuid"
)

// ReceivableRepository defines the interface for receivable data operations
type ReceivableRepository interface {
	Create(ctx context.Context, receivable *entity.Receivable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receivable, error)
	ListOpen(ctx context.Context, params *pagination.PaginationParams) ([]entity.Receivable, int64, error)
	// MarkCollected closes the receivable once the balance has been settled.
	MarkCollected(ctx context.Context, id uuid.UUID) error
}
