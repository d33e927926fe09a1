package service

import (
	"context"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/capelli/salonpos-api/internal/domain/repository"
	"github.com/capelli/salonpos-api/pkg/apperror"
	"github.com/capelli/salonpos-api/pkg/pagination"
	"github.com/google/uuid"
)

// ReceivableService tracks sales committed with an outstanding balance
// and settles them once the client pays.
type ReceivableService struct {
	receivableRepo repository.ReceivableRepository
	saleRepo       repository.SaleRepository
}

// NewReceivableService creates a receivable service.
func NewReceivableService(receivableRepo repository.ReceivableRepository, saleRepo repository.SaleRepository) *ReceivableService {
	return &ReceivableService{
		receivableRepo: receivableRepo,
		saleRepo:       saleRepo,
	}
}

// ListOpen returns receivables that have not been collected yet.
func (s *ReceivableService) ListOpen(ctx context.Context, params *pagination.PaginationParams) ([]entity.Receivable, int64, error) {
	return s.receivableRepo.ListOpen(ctx, params)
}

// Collect settles an open receivable. The original sale keeps its
// receivable status for reporting; only the balance is closed here.
func (s *ReceivableService) Collect(ctx context.Context, id uuid.UUID) (*entity.Receivable, error) {
	receivable, err := s.receivableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receivable == nil {
		return nil, apperror.NewNotFoundError("Receivable")
	}
	if receivable.Collected {
		return nil, apperror.NewConflictError("La cuenta por cobrar ya fue cobrada")
	}

	if err := s.receivableRepo.MarkCollected(ctx, id); err != nil {
		return nil, err
	}
	return s.receivableRepo.GetByID(ctx, id)
}
