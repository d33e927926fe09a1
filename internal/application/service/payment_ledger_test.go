package service

import (
	"testing"

	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/pkg/apperror"
	"github.com/capelli/salonpos-api/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentLedgerMixedCurrencies(t *testing.T) {
	rate := decimal.NewFromInt(40)
	var ledger PaymentLedger

	_, err := ledger.AddPayment(enum.PaymentMethodCash, money.USD, 5000, decimal.Zero, enum.DestinationNone, "")
	require.NoError(t, err)

	// 400 Bs at 40 Bs/USD is exactly 10 USD
	p, err := ledger.AddPayment(enum.PaymentMethodMobile, money.VES, 40000, rate, enum.DestinationSecondary, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), p.AmountUSD)
	assert.True(t, p.Rate.Equal(rate))

	assert.Equal(t, int64(6000), ledger.TotalPaidUSD())
	assert.Equal(t, LedgerBalanced, ledger.State(6000, enum.DiscountPolicyNone))
}

func TestPaymentLedgerAddRemoveRestoresTotal(t *testing.T) {
	rate := decimal.NewFromInt(40)
	var ledger PaymentLedger

	_, err := ledger.AddPayment(enum.PaymentMethodCash, money.USD, 2500, decimal.Zero, enum.DestinationNone, "")
	require.NoError(t, err)
	before := ledger.TotalPaidUSD()

	_, err = ledger.AddPayment(enum.PaymentMethodMobile, money.VES, 80000, rate, enum.DestinationNone, "")
	require.NoError(t, err)
	assert.Equal(t, before+2000, ledger.TotalPaidUSD())

	require.NoError(t, ledger.RemovePayment(1))
	assert.Equal(t, before, ledger.TotalPaidUSD())
	assert.Equal(t, 1, ledger.Len())

	err = ledger.RemovePayment(5)
	assert.Error(t, err)
	assert.Equal(t, before, ledger.TotalPaidUSD())
}

func TestPaymentLedgerValidation(t *testing.T) {
	rate := decimal.NewFromInt(40)

	testCases := []struct {
		name        string
		method      enum.PaymentMethod
		currency    money.Currency
		amount      int64
		rate        decimal.Decimal
		destination enum.PaymentDestination
		reference   string
		wantErr     string
	}{
		{
			name:     "zero amount rejected",
			method:   enum.PaymentMethodCash,
			currency: money.USD,
			amount:   0,
			wantErr:  "greater than zero",
		},
		{
			name:     "negative amount rejected",
			method:   enum.PaymentMethodCash,
			currency: money.USD,
			amount:   -100,
			wantErr:  "greater than zero",
		},
		{
			name:     "mobile payment in USD rejected",
			method:   enum.PaymentMethodMobile,
			currency: money.USD,
			amount:   1000,
			wantErr:  "tendered in Bs",
		},
		{
			name:      "usd transfer without reference rejected",
			method:    enum.PaymentMethodTransfer,
			currency:  money.USD,
			amount:    1000,
			reference: "",
			wantErr:   "reference",
		},
		{
			name:     "bs payment without rate rejected",
			method:   enum.PaymentMethodCash,
			currency: money.VES,
			amount:   40000,
			rate:     decimal.Zero,
			wantErr:  "exchange rate",
		},
		{
			name:        "mobile payment with unknown destination rejected",
			method:      enum.PaymentMethodMobile,
			currency:    money.VES,
			amount:      20000,
			rate:        rate,
			destination: enum.PaymentDestination(9),
			wantErr:     "destination",
		},
		{
			name:      "usd transfer with reference accepted",
			method:    enum.PaymentMethodTransfer,
			currency:  money.USD,
			amount:    1000,
			reference: "REF-0042",
		},
		{
			name:     "bs transfer without reference accepted",
			method:   enum.PaymentMethodTransfer,
			currency: money.VES,
			amount:   40000,
			rate:     rate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var ledger PaymentLedger
			_, err := ledger.AddPayment(tc.method, tc.currency, tc.amount, tc.rate, tc.destination, tc.reference)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, 1, ledger.Len())
				return
			}
			require.Error(t, err)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Error(), tc.wantErr)
			// a rejected add must leave the ledger untouched
			assert.Equal(t, 0, ledger.Len())
			assert.Equal(t, int64(0), ledger.TotalPaidUSD())
		})
	}
}

func TestPaymentLedgerMobileDefaultDestination(t *testing.T) {
	rate := decimal.NewFromInt(40)
	var ledger PaymentLedger

	p, err := ledger.AddPayment(enum.PaymentMethodMobile, money.VES, 20000, rate, enum.DestinationNone, "")
	require.NoError(t, err)
	assert.Equal(t, enum.DestinationPrimary, p.Destination)
}

func TestPaymentLedgerMobileByDestination(t *testing.T) {
	rate := decimal.NewFromInt(40)
	var ledger PaymentLedger

	_, err := ledger.AddPayment(enum.PaymentMethodMobile, money.VES, 20000, rate, enum.DestinationPrimary, "")
	require.NoError(t, err)
	_, err = ledger.AddPayment(enum.PaymentMethodMobile, money.VES, 30000, rate, enum.DestinationSecondary, "")
	require.NoError(t, err)
	// cash in Bs must not show up in the mobile partition
	_, err = ledger.AddPayment(enum.PaymentMethodCash, money.VES, 10000, rate, enum.DestinationNone, "")
	require.NoError(t, err)

	totals := ledger.MobileByDestination()
	assert.Equal(t, int64(20000), totals[enum.DestinationPrimary])
	assert.Equal(t, int64(30000), totals[enum.DestinationSecondary])
	assert.Len(t, totals, 2)
}

func TestPaymentLedgerStates(t *testing.T) {
	testCases := []struct {
		name     string
		paidUSD  int64
		totalUSD int64
		policy   enum.DiscountPolicy
		want     LedgerState
	}{
		{name: "nothing paid", paidUSD: 0, totalUSD: 5000, policy: enum.DiscountPolicyNone, want: LedgerCollecting},
		{name: "partially paid", paidUSD: 3000, totalUSD: 5000, policy: enum.DiscountPolicyNone, want: LedgerCollecting},
		{name: "exactly paid", paidUSD: 5000, totalUSD: 5000, policy: enum.DiscountPolicyNone, want: LedgerBalanced},
		{name: "within one cent", paidUSD: 4999, totalUSD: 5000, policy: enum.DiscountPolicyNone, want: LedgerBalanced},
		{name: "overpaid", paidUSD: 6000, totalUSD: 5000, policy: enum.DiscountPolicyNone, want: LedgerOverpaid},
		{name: "short under receivable policy", paidUSD: 3000, totalUSD: 5000, policy: enum.DiscountPolicyReceivableAccount, want: LedgerDeferred},
		{name: "covered under receivable policy", paidUSD: 5000, totalUSD: 5000, policy: enum.DiscountPolicyReceivableAccount, want: LedgerBalanced},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var ledger PaymentLedger
			if tc.paidUSD > 0 {
				_, err := ledger.AddPayment(enum.PaymentMethodCash, money.USD, tc.paidUSD, decimal.Zero, enum.DestinationNone, "")
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, ledger.State(tc.totalUSD, tc.policy))
		})
	}
}

func TestPaymentLedgerChangeDue(t *testing.T) {
	var ledger PaymentLedger
	_, err := ledger.AddPayment(enum.PaymentMethodCash, money.USD, 10000, decimal.Zero, enum.DestinationNone, "")
	require.NoError(t, err)

	assert.Equal(t, int64(1500), ledger.ChangeDueUSD(8500))
	assert.Equal(t, int64(0), ledger.ChangeDueUSD(10000))
	assert.Equal(t, int64(0), ledger.ChangeDueUSD(12000))
}

func TestPaymentLedgerAutoFillRemaining(t *testing.T) {
	rate := decimal.NewFromInt(40)
	var ledger PaymentLedger
	_, err := ledger.AddPayment(enum.PaymentMethodCash, money.USD, 3500, decimal.Zero, enum.DestinationNone, "")
	require.NoError(t, err)

	inUSD := ledger.AutoFillRemaining(6000, money.USD, rate)
	assert.Equal(t, int64(2500), inUSD.Amount)
	assert.Equal(t, money.USD, inUSD.Currency)

	inBs := ledger.AutoFillRemaining(6000, money.VES, rate)
	assert.Equal(t, int64(100000), inBs.Amount)
	assert.Equal(t, money.VES, inBs.Currency)

	// suggestion must not mutate the ledger
	assert.Equal(t, int64(3500), ledger.TotalPaidUSD())
	assert.Equal(t, 1, ledger.Len())

	covered := ledger.AutoFillRemaining(3500, money.USD, rate)
	assert.True(t, covered.IsZero())
}
