package repository

import (
	"context"
	"errors"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	domainRepo "github.com/capelli/salonpos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new catalog service repository
func NewServiceRepository(db *gorm.DB) domainRepo.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.SalonService) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SalonService, error) {
	var service entity.SalonService
	err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &service, err
}

func (r *serviceRepository) GetByName(ctx context.Context, name string) (*entity.SalonService, error) {
	var service entity.SalonService
	err := r.db.WithContext(ctx).First(&service, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &service, err
}

func (r *serviceRepository) GetAll(ctx context.Context) ([]entity.SalonService, error) {
	var services []entity.SalonService
	err := r.db.WithContext(ctx).Order("category ASC, name ASC").Find(&services).Error
	return services, err
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.SalonService) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.SalonService{}, "id = ?", id).Error
}
