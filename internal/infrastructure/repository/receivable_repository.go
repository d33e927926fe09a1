package repository

import (
	"context"
	"errors"
	"time"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	domainRepo "github.com/capelli/salonpos-api/internal/domain/repository"
	"github.com/capelli/salonpos-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type receivableRepository struct {
	db *gorm.DB
}

// NewReceivableRepository creates a new receivable repository
func NewReceivableRepository(db *gorm.DB) domainRepo.ReceivableRepository {
	return &receivableRepository{db: db}
}

func (r *receivableRepository) Create(ctx context.Context, receivable *entity.Receivable) error {
	return r.db.WithContext(ctx).Create(receivable).Error
}

func (r *receivableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receivable, error) {
	var receivable entity.Receivable
	err := r.db.WithContext(ctx).
		Preload("Client").
		First(&receivable, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receivable, err
}

func (r *receivableRepository) ListOpen(ctx context.Context, params *pagination.PaginationParams) ([]entity.Receivable, int64, error) {
	var receivables []entity.Receivable
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Receivable{}).Where("collected = ?", false)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Client").
		Order("created_at ASC").
		Find(&receivables).Error

	return receivables, total, err
}

func (r *receivableRepository) MarkCollected(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&entity.Receivable{}).
		Where("id = ? AND collected = ?", id, false).
		Updates(map[string]interface{}{"collected": true, "collected_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
