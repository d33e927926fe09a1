package repository

import (
	"context"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/capelli/salonpos-api/pkg/pagination"
	"github.com/google/uuid"
)

// ServiceRepository defines the interface for salon catalog operations
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.SalonService) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SalonService, error)
	GetByName(ctx context.Context, name string) (*entity.SalonService, error)
	GetAll(ctx context.Context) ([]entity.SalonService, error)
	Update(ctx context.Context, service *entity.SalonService) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WorkerRepository defines the interface for worker data operations
type WorkerRepository interface {
	Create(ctx context.Context, worker *entity.Worker) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error)
	GetAll(ctx context.Context, activeOnly bool) ([]entity.Worker, error)
	Update(ctx context.Context, worker *entity.Worker) error
	Delete(ctx context.Context, id uuid.UUID) error
	// GetCommissionRates returns all per-category overrides for a worker.
	GetCommissionRates(ctx context.Context, workerID uuid.UUID) ([]entity.CommissionRate, error)
	SetCommissionRate(ctx context.Context, rate *entity.CommissionRate) error
}

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}
