package service

import (
	"context"
	"testing"
	"time"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayrollCommissions(t *testing.T) {
	ctx := context.Background()
	workerRepo := &fakeWorkerRepo{}

	maria := &entity.Worker{Name: "Maria", DefaultCommissionPct: 40, Active: true}
	rosa := &entity.Worker{Name: "Rosa", DefaultCommissionPct: 50, Active: true}
	require.NoError(t, workerRepo.Create(ctx, maria))
	require.NoError(t, workerRepo.Create(ctx, rosa))

	// Maria earns 60% on color work, default 40% elsewhere
	require.NoError(t, workerRepo.SetCommissionRate(ctx, &entity.CommissionRate{
		WorkerID: maria.ID, Category: "color", RatePct: 60,
	}))

	saleRepo := &fakeSaleRepo{
		items: []entity.SaleItem{
			{WorkerID: maria.ID, WorkerName: "Maria", Category: "corte", PriceUSD: 2000},
			{WorkerID: maria.ID, WorkerName: "Maria", Category: "corte", PriceUSD: 3000},
			{WorkerID: maria.ID, WorkerName: "Maria", Category: "color", PriceUSD: 5000},
			{WorkerID: rosa.ID, WorkerName: "Rosa", Category: "corte", PriceUSD: 4000},
		},
	}

	svc := NewCommissionService(saleRepo, workerRepo)
	payrolls, err := svc.Payroll(ctx, time.Now().AddDate(0, 0, -7), time.Now())
	require.NoError(t, err)
	require.Len(t, payrolls, 2)

	// sorted by name: Maria, Rosa
	m := payrolls[0]
	assert.Equal(t, "Maria", m.WorkerName)
	require.Len(t, m.Lines, 2)
	// lines sorted by category: color then corte
	assert.Equal(t, "color", m.Lines[0].Category)
	assert.Equal(t, 60, m.Lines[0].RatePct)
	assert.InDelta(t, 30.0, m.Lines[0].CommissionUSD, 0.001)
	assert.Equal(t, "corte", m.Lines[1].Category)
	assert.Equal(t, 40, m.Lines[1].RatePct)
	assert.InDelta(t, 20.0, m.Lines[1].CommissionUSD, 0.001)
	assert.InDelta(t, 100.0, m.GrossUSD, 0.001)
	assert.InDelta(t, 50.0, m.CommissionUSD, 0.001)

	r := payrolls[1]
	assert.Equal(t, "Rosa", r.WorkerName)
	assert.InDelta(t, 20.0, r.CommissionUSD, 0.001)
}

func TestPayrollIncludesTips(t *testing.T) {
	ctx := context.Background()
	workerRepo := &fakeWorkerRepo{}

	maria := &entity.Worker{Name: "Maria", DefaultCommissionPct: 40, Active: true}
	rosa := &entity.Worker{Name: "Rosa", DefaultCommissionPct: 50, Active: true}
	require.NoError(t, workerRepo.Create(ctx, maria))
	require.NoError(t, workerRepo.Create(ctx, rosa))

	saleRepo := &fakeSaleRepo{
		items: []entity.SaleItem{
			{WorkerID: maria.ID, WorkerName: "Maria", Category: "corte", PriceUSD: 2000},
		},
		sales: []entity.Sale{
			{ID: uuid.New(), SaleDate: time.Now().Add(-time.Hour), Tip: 500, TipWorkerID: &maria.ID},
			{ID: uuid.New(), SaleDate: time.Now().Add(-time.Hour), Tip: 300, TipWorkerID: &rosa.ID}, // tips-only worker
			{ID: uuid.New(), SaleDate: time.Now().Add(-time.Hour), Tip: 0, TipWorkerID: &rosa.ID},
		},
	}

	svc := NewCommissionService(saleRepo, workerRepo)
	payrolls, err := svc.Payroll(ctx, time.Now().AddDate(0, 0, -1), time.Now())
	require.NoError(t, err)
	require.Len(t, payrolls, 2)

	m := payrolls[0]
	assert.Equal(t, "Maria", m.WorkerName)
	assert.InDelta(t, 5.0, m.TipsUSD, 0.001)
	assert.InDelta(t, 8.0+5.0, m.TotalUSD, 0.001)

	r := payrolls[1]
	assert.Equal(t, "Rosa", r.WorkerName)
	assert.Empty(t, r.Lines)
	assert.InDelta(t, 3.0, r.TipsUSD, 0.001)
	assert.InDelta(t, 3.0, r.TotalUSD, 0.001)
}
