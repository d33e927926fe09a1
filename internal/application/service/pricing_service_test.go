package service

import (
	"context"
	"testing"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededCatalog() (*fakeServiceRepo, uuid.UUID) {
	id := uuid.New()
	repo := &fakeServiceRepo{
		services: []entity.SalonService{{
			ID:               id,
			Name:             "Corte de dama",
			Category:         "corte",
			PriceCorto:       1500,
			PriceMediano:     2000,
			PriceLargo:       2500,
			PriceExtensiones: 4000,
			Active:           true,
		}},
	}
	return repo, id
}

func TestResolvePriceByHairLength(t *testing.T) {
	repo, id := seededCatalog()
	pricing := NewPricingService(repo)

	testCases := []struct {
		name   string
		length enum.HairLength
		want   int64
	}{
		{name: "corto", length: enum.HairLengthCorto, want: 1500},
		{name: "mediano", length: enum.HairLengthMediano, want: 2000},
		{name: "largo", length: enum.HairLengthLargo, want: 2500},
		{name: "extensiones", length: enum.HairLengthExtensiones, want: 4000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, svc, err := pricing.ResolvePrice(context.Background(), id, tc.length, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, price.Amount)
			assert.Equal(t, "Corte de dama", svc.Name)
		})
	}
}

func TestResolvePriceOverrideWins(t *testing.T) {
	repo, id := seededCatalog()
	pricing := NewPricingService(repo)

	price, _, err := pricing.ResolvePrice(context.Background(), id, enum.HairLengthCorto, 1800)
	require.NoError(t, err)
	assert.Equal(t, int64(1800), price.Amount)
}

func TestResolvePriceUnknownService(t *testing.T) {
	repo, _ := seededCatalog()
	pricing := NewPricingService(repo)

	_, _, err := pricing.ResolvePrice(context.Background(), uuid.New(), enum.HairLengthCorto, 0)
	assert.Error(t, err)
}

func TestResolvePriceCachesCatalog(t *testing.T) {
	repo, id := seededCatalog()
	pricing := NewPricingService(repo)

	_, _, err := pricing.ResolvePrice(context.Background(), id, enum.HairLengthCorto, 0)
	require.NoError(t, err)
	_, _, err = pricing.ResolvePrice(context.Background(), id, enum.HairLengthLargo, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getAlls)

	pricing.Invalidate()
	_, _, err = pricing.ResolvePrice(context.Background(), id, enum.HairLengthCorto, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getAlls)
}
