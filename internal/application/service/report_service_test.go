package service

import (
	"context"
	"testing"
	"time"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyReport(t *testing.T) {
	rate := decimal.NewFromInt(40)
	day := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	lastInstant := time.Date(2026, 8, 28, 23, 59, 59, 999999999, time.UTC)
	nextMidnight := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	saleRepo := &fakeSaleRepo{
		sales: []entity.Sale{
			{
				ID: uuid.New(), Status: enum.SaleStatusPaid,
				SaleDate: day.Add(-6 * time.Hour),
				Subtotal: 8000, Discount: 1600, Tip: 500,
				Total: 6900, TotalPaidUSD: 6900,
			},
			{
				// the final sub-second of the day still belongs to it
				ID: uuid.New(), Status: enum.SaleStatusReceivable,
				SaleDate: lastInstant,
				Subtotal: 5000, Discount: 0, Tip: 0,
				Total: 5000, TotalPaidUSD: 2000,
			},
			{
				// voided sales stay out of every figure
				ID: uuid.New(), Status: enum.SaleStatusVoid,
				SaleDate: day,
				Subtotal: 9999, Total: 9999, TotalPaidUSD: 9999,
			},
			{
				// midnight of the next day is the next day's business
				ID: uuid.New(), Status: enum.SaleStatusPaid,
				SaleDate: nextMidnight,
				Subtotal: 7777, Total: 7777, TotalPaidUSD: 7777,
			},
		},
		payments: []entity.SalePayment{
			{Method: enum.PaymentMethodCash, Currency: money.USD, Amount: 5000, AmountUSD: 5000},
			{Method: enum.PaymentMethodCash, Currency: money.USD, Amount: 2000, AmountUSD: 2000},
			{Method: enum.PaymentMethodMobile, Currency: money.VES, Amount: 40000, Rate: rate, AmountUSD: 1000, Destination: enum.DestinationPrimary},
			{Method: enum.PaymentMethodMobile, Currency: money.VES, Amount: 36000, Rate: rate, AmountUSD: 900, Destination: enum.DestinationSecondary},
		},
	}

	report, err := NewReportService(saleRepo).Daily(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Sales)
	assert.InDelta(t, 130.0, report.GrossUSD, 0.001)
	assert.InDelta(t, 16.0, report.DiscountsUSD, 0.001)
	assert.InDelta(t, 5.0, report.TipsUSD, 0.001)
	assert.InDelta(t, 119.0, report.TotalUSD, 0.001)
	assert.InDelta(t, 89.0, report.PaidUSD, 0.001)
	assert.InDelta(t, 30.0, report.ReceivablesUSD, 0.001)

	require.Len(t, report.ByMethod, 2)
	cash := report.ByMethod[0]
	assert.Equal(t, "Cash", cash.Method)
	assert.Equal(t, 2, cash.Count)
	assert.InDelta(t, 70.0, cash.AmountUSD, 0.001)

	mobile := report.ByMethod[1]
	assert.Equal(t, "MobilePayment", mobile.Method)
	assert.InDelta(t, 760.0, mobile.Amount, 0.001)
	assert.InDelta(t, 19.0, mobile.AmountUSD, 0.001)

	require.Len(t, report.MobileByAccount, 2)
	assert.Equal(t, "Capelli", report.MobileByAccount[0].Destination)
	assert.InDelta(t, 400.0, report.MobileByAccount[0].AmountBs, 0.001)
	assert.Equal(t, "Rosa", report.MobileByAccount[1].Destination)
	assert.InDelta(t, 360.0, report.MobileByAccount[1].AmountBs, 0.001)
}
