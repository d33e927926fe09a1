package service

import (
	"context"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/capelli/salonpos-api/internal/domain/repository"
	"github.com/capelli/salonpos-api/pkg/apperror"
	"github.com/capelli/salonpos-api/pkg/pagination"
	"github.com/google/uuid"
)

// CatalogService manages the salon's services, workers and clients.
// Catalog writes invalidate the pricing snapshot so an open sale never
// sees half-updated prices.
type CatalogService struct {
	serviceRepo repository.ServiceRepository
	workerRepo  repository.WorkerRepository
	clientRepo  repository.ClientRepository
	pricing     *PricingService
}

// NewCatalogService creates a catalog service.
func NewCatalogService(serviceRepo repository.ServiceRepository, workerRepo repository.WorkerRepository, clientRepo repository.ClientRepository, pricing *PricingService) *CatalogService {
	return &CatalogService{
		serviceRepo: serviceRepo,
		workerRepo:  workerRepo,
		clientRepo:  clientRepo,
		pricing:     pricing,
	}
}

// ServiceInput carries catalog prices in USD cents.
type ServiceInput struct {
	Name             string
	Category         string
	PriceCorto       int64
	PriceMediano     int64
	PriceLargo       int64
	PriceExtensiones int64
}

// CreateService adds a service to the catalog.
func (s *CatalogService) CreateService(ctx context.Context, input ServiceInput) (*entity.SalonService, error) {
	existing, err := s.serviceRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A service with that name already exists")
	}

	svc := &entity.SalonService{
		Name:             input.Name,
		Category:         input.Category,
		PriceCorto:       input.PriceCorto,
		PriceMediano:     input.PriceMediano,
		PriceLargo:       input.PriceLargo,
		PriceExtensiones: input.PriceExtensiones,
		Active:           true,
	}
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	s.pricing.Invalidate()
	return svc, nil
}

// UpdateService updates a catalog entry and invalidates the price snapshot.
func (s *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, input ServiceInput) (*entity.SalonService, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}

	svc.Name = input.Name
	svc.Category = input.Category
	svc.PriceCorto = input.PriceCorto
	svc.PriceMediano = input.PriceMediano
	svc.PriceLargo = input.PriceLargo
	svc.PriceExtensiones = input.PriceExtensiones
	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	s.pricing.Invalidate()
	return svc, nil
}

// DeleteService removes a service from the catalog.
func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if svc == nil {
		return apperror.NewNotFoundError("Service")
	}
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.pricing.Invalidate()
	return nil
}

// ListServices returns the whole catalog.
func (s *CatalogService) ListServices(ctx context.Context) ([]entity.SalonService, error) {
	return s.serviceRepo.GetAll(ctx)
}

// CreateWorker adds a stylist.
func (s *CatalogService) CreateWorker(ctx context.Context, name string, phone *string, defaultCommissionPct int) (*entity.Worker, error) {
	if defaultCommissionPct < 0 || defaultCommissionPct > 100 {
		return nil, apperror.NewBadRequestError("Commission percentage must be between 0 and 100")
	}
	worker := &entity.Worker{
		Name:                 name,
		Phone:                phone,
		DefaultCommissionPct: defaultCommissionPct,
		Active:               true,
	}
	if err := s.workerRepo.Create(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

// ListWorkers returns stylists, optionally only active ones.
func (s *CatalogService) ListWorkers(ctx context.Context, activeOnly bool) ([]entity.Worker, error) {
	return s.workerRepo.GetAll(ctx, activeOnly)
}

// SetCommissionRate sets a per-category commission override for a worker.
func (s *CatalogService) SetCommissionRate(ctx context.Context, workerID uuid.UUID, category string, ratePct int) error {
	if ratePct < 0 || ratePct > 100 {
		return apperror.NewBadRequestError("Commission percentage must be between 0 and 100")
	}
	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return err
	}
	if worker == nil {
		return apperror.NewNotFoundError("Worker")
	}
	return s.workerRepo.SetCommissionRate(ctx, &entity.CommissionRate{
		WorkerID: workerID,
		Category: category,
		RatePct:  ratePct,
	})
}

// CreateClient adds a client.
func (s *CatalogService) CreateClient(ctx context.Context, client *entity.Client) error {
	return s.clientRepo.Create(ctx, client)
}

// ListClients returns clients filtered by an optional name search.
func (s *CatalogService) ListClients(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error) {
	return s.clientRepo.List(ctx, params, search)
}

// UpdateClient updates a client's details.
func (s *CatalogService) UpdateClient(ctx context.Context, client *entity.Client) error {
	existing, err := s.clientRepo.GetByID(ctx, client.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFoundError("Client")
	}
	return s.clientRepo.Update(ctx, client)
}
