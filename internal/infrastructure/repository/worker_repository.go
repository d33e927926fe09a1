package repository

import (
	"context"
	"errors"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	domainRepo "github.com/capelli/salonpos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type workerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *gorm.DB) domainRepo.WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(ctx context.Context, worker *entity.Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}

func (r *workerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error) {
	var worker entity.Worker
	err := r.db.WithContext(ctx).First(&worker, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &worker, err
}

func (r *workerRepository) GetAll(ctx context.Context, activeOnly bool) ([]entity.Worker, error) {
	var workers []entity.Worker
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Order("name ASC").Find(&workers).Error
	return workers, err
}

func (r *workerRepository) Update(ctx context.Context, worker *entity.Worker) error {
	return r.db.WithContext(ctx).Save(worker).Error
}

func (r *workerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Worker{}, "id = ?", id).Error
}

func (r *workerRepository) GetCommissionRates(ctx context.Context, workerID uuid.UUID) ([]entity.CommissionRate, error) {
	var rates []entity.CommissionRate
	err := r.db.WithContext(ctx).Where("worker_id = ?", workerID).Find(&rates).Error
	return rates, err
}

// SetCommissionRate upserts the per-category override for a worker.
func (r *workerRepository) SetCommissionRate(ctx context.Context, rate *entity.CommissionRate) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "worker_id"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate_pct", "updated_at"}),
	}).Create(rate).Error
}
