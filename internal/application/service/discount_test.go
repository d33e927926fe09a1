package service

import (
	"testing"

	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDiscount(t *testing.T) {
	engine := NewDiscountEngine(20)

	testCases := []struct {
		name         string
		policy       enum.DiscountPolicy
		subtotal     int64
		entered      int64
		want         int64
		wantWarnings int
		wantErr      bool
	}{
		{
			name:     "none with no amount",
			policy:   enum.DiscountPolicyNone,
			subtotal: 8000,
			entered:  0,
			want:     0,
		},
		{
			name:     "none with amount rejected",
			policy:   enum.DiscountPolicyNone,
			subtotal: 8000,
			entered:  500,
			wantErr:  true,
		},
		{
			name:     "promotion computes 20 percent",
			policy:   enum.DiscountPolicyPromotion,
			subtotal: 8000,
			entered:  0,
			want:     1600,
		},
		{
			name:     "promotion matching entry no warning",
			policy:   enum.DiscountPolicyPromotion,
			subtotal: 8000,
			entered:  1600,
			want:     1600,
		},
		{
			name:         "promotion deviating entry warns but uses computed",
			policy:       enum.DiscountPolicyPromotion,
			subtotal:     8000,
			entered:      2000,
			want:         1600,
			wantWarnings: 1,
		},
		{
			name:     "exchange takes entered amount",
			policy:   enum.DiscountPolicyExchange,
			subtotal: 8000,
			entered:  3000,
			want:     3000,
		},
		{
			name:     "payable account takes entered amount",
			policy:   enum.DiscountPolicyPayableAccount,
			subtotal: 8000,
			entered:  8000,
			want:     8000,
		},
		{
			name:     "manual discount above subtotal rejected",
			policy:   enum.DiscountPolicyExchange,
			subtotal: 8000,
			entered:  9000,
			wantErr:  true,
		},
		{
			name:     "negative manual discount rejected",
			policy:   enum.DiscountPolicyReceivableAccount,
			subtotal: 8000,
			entered:  -100,
			wantErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, warnings, err := engine.ComputeDiscount(tc.policy, tc.subtotal, tc.entered)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Amount)
			assert.Len(t, warnings, tc.wantWarnings)
		})
	}
}

func TestComputeDiscountConfigurablePercentage(t *testing.T) {
	engine := NewDiscountEngine(15)

	got, warnings, err := engine.ComputeDiscount(enum.DiscountPolicyPromotion, 10000, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), got.Amount)
	assert.Empty(t, warnings)
}
