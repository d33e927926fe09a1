package service

import (
	"testing"

	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionWithItems(prices ...int64) *SaleSession {
	s := NewSaleSession(uuid.New())
	for i, p := range prices {
		s.AddLineItem(LineItem{
			ServiceName: "Corte",
			Category:    "corte",
			WorkerID:    uuid.New(),
			WorkerName:  "Trabajadora",
			HairLength:  enum.HairLength(i % 4),
			PriceUSD:    p,
		})
	}
	return s
}

func TestSaleSessionTotalsIdempotent(t *testing.T) {
	rate := decimal.NewFromInt(40)
	s := sessionWithItems(3000, 5000)
	s.DiscountUSD = 1600
	s.TipUSD = 500

	first, err := s.Totals(rate, true)
	require.NoError(t, err)
	second, err := s.Totals(rate, true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(8000), first.Subtotal)
	assert.Equal(t, int64(6900), first.TotalUSD)
}

func TestSaleSessionDisplayCurrencyConversion(t *testing.T) {
	rate := decimal.NewFromInt(40)
	s := sessionWithItems(3000, 5000)
	s.DiscountUSD = 1600
	s.TipUSD = 500
	s.DisplayCurrency = money.VES

	totals, err := s.Totals(rate, true)
	require.NoError(t, err)

	// totals stay USD internally; only the display figure converts
	assert.Equal(t, int64(6900), totals.TotalUSD)
	assert.Equal(t, int64(276000), totals.TotalDisplay)
	assert.Equal(t, money.VES, totals.DisplayCurrency)
}

func TestSaleSessionNegativeTotalClamp(t *testing.T) {
	rate := decimal.NewFromInt(40)

	s := sessionWithItems(3000)
	s.DiscountUSD = 3000
	s.TipUSD = 0
	// a full discount plus no tip is exactly zero, not negative
	totals, err := s.Totals(rate, false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.TotalUSD)
	assert.False(t, totals.Clamped)

	// discount resolved before an item was removed can exceed the subtotal
	s = sessionWithItems(3000, 5000)
	s.DiscountUSD = 4000
	require.NoError(t, s.RemoveLineItem(1))

	totals, err = s.Totals(rate, true)
	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.TotalUSD)
	assert.True(t, totals.Clamped)

	_, err = s.Totals(rate, false)
	assert.Error(t, err)
}

func TestSaleSessionLineItemMutations(t *testing.T) {
	s := sessionWithItems(3000, 5000)

	require.NoError(t, s.UpdateLineItemPrice(0, 3500))
	assert.Equal(t, int64(8500), s.Subtotal())

	err := s.UpdateLineItemPrice(0, 0)
	assert.Error(t, err)
	err = s.UpdateLineItemPrice(7, 1000)
	assert.Error(t, err)

	require.NoError(t, s.RemoveLineItem(0))
	assert.Equal(t, int64(5000), s.Subtotal())
	assert.Error(t, s.RemoveLineItem(3))
}
