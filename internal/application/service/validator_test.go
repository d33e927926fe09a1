package service

import (
	"testing"

	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() *SaleValidator {
	return NewSaleValidator(30, 100, 50000)
}

func TestValidateConsistentSalePasses(t *testing.T) {
	v := newTestValidator()

	// subtotal 80, promo discount 16, tip 5, total 69, fully paid
	res := v.Validate(ValidationInput{
		ItemPrices:     []int64{3000, 5000},
		Subtotal:       8000,
		Discount:       1600,
		Tip:            500,
		Total:          6900,
		TotalPaidUSD:   6900,
		PaymentCount:   2,
		DiscountPolicy: enum.DiscountPolicyPromotion,
	})

	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.True(t, res.OK())
}

func TestValidateTotalMismatch(t *testing.T) {
	v := newTestValidator()

	res := v.Validate(ValidationInput{
		ItemPrices:     []int64{3000, 5000},
		Subtotal:       8000,
		Discount:       1600,
		Tip:            500,
		Total:          7000, // should be 6900
		TotalPaidUSD:   7000,
		PaymentCount:   1,
		DiscountPolicy: enum.DiscountPolicyPromotion,
	})

	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "El Total")
	assert.False(t, res.OK())
}

func TestValidateInsufficientPayment(t *testing.T) {
	v := newTestValidator()

	res := v.Validate(ValidationInput{
		ItemPrices:     []int64{8000},
		Subtotal:       8000,
		Discount:       0,
		Tip:            0,
		Total:          8000,
		TotalPaidUSD:   5000,
		PaymentCount:   1,
		DiscountPolicy: enum.DiscountPolicyNone,
	})

	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "Monto pagado insuficiente")
}

func TestValidateReceivableAllowsOutstanding(t *testing.T) {
	v := newTestValidator()

	res := v.Validate(ValidationInput{
		ItemPrices:     []int64{8000},
		Subtotal:       8000,
		Discount:       0,
		Tip:            0,
		Total:          8000,
		TotalPaidUSD:   5000,
		PaymentCount:   1,
		DiscountPolicy: enum.DiscountPolicyReceivableAccount,
	})

	assert.Empty(t, res.Errors)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "cuenta por cobrar")
	assert.True(t, res.OK())
}

func TestValidateAccumulatesAllErrors(t *testing.T) {
	v := newTestValidator()

	// stale subtotal, impossible discount, wrong total, no payments
	res := v.Validate(ValidationInput{
		ItemPrices:     []int64{3000},
		Subtotal:       8000,
		Discount:       9000,
		Tip:            0,
		Total:          100,
		TotalPaidUSD:   0,
		PaymentCount:   0,
		DiscountPolicy: enum.DiscountPolicyNone,
	})

	assert.GreaterOrEqual(t, len(res.Errors), 3)
	assert.False(t, res.OK())
}

func TestValidateWarnings(t *testing.T) {
	testCases := []struct {
		name  string
		input ValidationInput
		want  string
	}{
		{
			name: "excessive tip",
			input: ValidationInput{
				ItemPrices:     []int64{8000},
				Subtotal:       8000,
				Tip:            4000, // 50% of subtotal, limit is 30%
				Total:          12000,
				TotalPaidUSD:   12000,
				PaymentCount:   1,
				DiscountPolicy: enum.DiscountPolicyNone,
			},
			want: "propina",
		},
		{
			name: "suspiciously low price",
			input: ValidationInput{
				ItemPrices:     []int64{50},
				Subtotal:       50,
				Total:          50,
				TotalPaidUSD:   50,
				PaymentCount:   1,
				DiscountPolicy: enum.DiscountPolicyNone,
			},
			want: "inusualmente bajo",
		},
		{
			name: "suspiciously high price",
			input: ValidationInput{
				ItemPrices:     []int64{90000},
				Subtotal:       90000,
				Total:          90000,
				TotalPaidUSD:   90000,
				PaymentCount:   1,
				DiscountPolicy: enum.DiscountPolicyNone,
			},
			want: "inusualmente alto",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := newTestValidator().Validate(tc.input)
			assert.Empty(t, res.Errors)
			require.NotEmpty(t, res.Warnings)
			assert.Contains(t, res.Warnings[0], tc.want)
			// warnings never block commit
			assert.True(t, res.OK())
		})
	}
}

func TestValidateEmptySale(t *testing.T) {
	res := newTestValidator().Validate(ValidationInput{
		DiscountPolicy: enum.DiscountPolicyNone,
	})

	assert.False(t, res.OK())
	assert.Contains(t, res.Errors[0], "no tiene servicios")
}
