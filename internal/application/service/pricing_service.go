package service

import (
	"context"
	"sync"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/internal/domain/repository"
	"github.com/capelli/salonpos-api/pkg/apperror"
	"github.com/capelli/salonpos-api/pkg/money"
	"github.com/google/uuid"
)

// PricingService resolves a service plus hair-length tier (or an explicit
// override) to a USD price. The catalog is read through a snapshot cache
// that is only invalidated manually, matching how the front desk works: the
// price list changes rarely and never mid-sale.
type PricingService struct {
	serviceRepo repository.ServiceRepository

	mu    sync.RWMutex
	cache map[uuid.UUID]*entity.SalonService
}

// NewPricingService creates a pricing service over the catalog repository.
func NewPricingService(serviceRepo repository.ServiceRepository) *PricingService {
	return &PricingService{
		serviceRepo: serviceRepo,
		cache:       nil,
	}
}

// ResolvePrice returns the USD price of a service for the given hair length.
// A positive overrideCents wins verbatim (manual surcharge or courtesy
// price); zero or negative means "use the catalog".
func (s *PricingService) ResolvePrice(ctx context.Context, serviceID uuid.UUID, length enum.HairLength, overrideCents int64) (money.Money, *entity.SalonService, error) {
	svc, err := s.lookup(ctx, serviceID)
	if err != nil {
		return money.Money{}, nil, err
	}

	if overrideCents > 0 {
		return money.New(overrideCents, money.USD), svc, nil
	}
	return money.New(svc.PriceFor(length), money.USD), svc, nil
}

// Invalidate drops the catalog snapshot; the next lookup reloads it.
func (s *PricingService) Invalidate() {
	s.mu.Lock()
	s.cache = nil
	s.mu.Unlock()
}

func (s *PricingService) lookup(ctx context.Context, serviceID uuid.UUID) (*entity.SalonService, error) {
	s.mu.RLock()
	if s.cache != nil {
		svc, ok := s.cache[serviceID]
		s.mu.RUnlock()
		if !ok {
			return nil, apperror.NewNotFoundError("Service")
		}
		return svc, nil
	}
	s.mu.RUnlock()

	services, err := s.serviceRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	cache := make(map[uuid.UUID]*entity.SalonService, len(services))
	for i := range services {
		cache[services[i].ID] = &services[i]
	}

	s.mu.Lock()
	s.cache = cache
	s.mu.Unlock()

	svc, ok := cache[serviceID]
	if !ok {
		return nil, apperror.NewNotFoundError("Service")
	}
	return svc, nil
}
