package service

import (
	"context"
	"sort"
	"time"

	"github.com/capelli/salonpos-api/internal/domain/repository"
	"github.com/google/uuid"
)

// CommissionLine is one category's share of a worker's payroll.
type CommissionLine struct {
	Category      string  `json:"category"`
	Services      int     `json:"services"`
	GrossUSD      float64 `json:"gross_usd"`
	RatePct       int     `json:"rate_pct"`
	CommissionUSD float64 `json:"commission_usd"`
}

// WorkerPayroll is the commission summary for one worker over a period.
type WorkerPayroll struct {
	WorkerID      uuid.UUID        `json:"worker_id"`
	WorkerName    string           `json:"worker_name"`
	Lines         []CommissionLine `json:"lines"`
	GrossUSD      float64          `json:"gross_usd"`
	CommissionUSD float64          `json:"commission_usd"`
	TipsUSD       float64          `json:"tips_usd"`
	TotalUSD      float64          `json:"total_usd"`
}

// CommissionService computes payroll from committed sale items. It reads
// the PriceUSD recorded at commit time — the final post-override figure —
// never the current catalog price.
type CommissionService struct {
	saleRepo   repository.SaleRepository
	workerRepo repository.WorkerRepository
}

// NewCommissionService creates a commission service.
func NewCommissionService(saleRepo repository.SaleRepository, workerRepo repository.WorkerRepository) *CommissionService {
	return &CommissionService{saleRepo: saleRepo, workerRepo: workerRepo}
}

// Payroll computes per-worker commissions for sales committed in [from, to).
func (s *CommissionService) Payroll(ctx context.Context, from, to time.Time) ([]WorkerPayroll, error) {
	items, err := s.saleRepo.ItemsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	workers, err := s.workerRepo.GetAll(ctx, false)
	if err != nil {
		return nil, err
	}

	type rateKey struct {
		worker   uuid.UUID
		category string
	}
	defaultRates := make(map[uuid.UUID]int, len(workers))
	overrides := make(map[rateKey]int)
	names := make(map[uuid.UUID]string, len(workers))
	for _, w := range workers {
		defaultRates[w.ID] = w.DefaultCommissionPct
		names[w.ID] = w.Name
		rates, err := s.workerRepo.GetCommissionRates(ctx, w.ID)
		if err != nil {
			return nil, err
		}
		for _, r := range rates {
			overrides[rateKey{worker: w.ID, category: r.Category}] = r.RatePct
		}
	}

	// Accumulate cents per worker per category, convert at the edge.
	type bucket struct {
		services int
		gross    int64
		rate     int
	}
	buckets := make(map[uuid.UUID]map[string]*bucket)
	for _, item := range items {
		rate, ok := overrides[rateKey{worker: item.WorkerID, category: item.Category}]
		if !ok {
			rate = defaultRates[item.WorkerID]
		}
		if buckets[item.WorkerID] == nil {
			buckets[item.WorkerID] = make(map[string]*bucket)
		}
		b := buckets[item.WorkerID][item.Category]
		if b == nil {
			b = &bucket{rate: rate}
			buckets[item.WorkerID][item.Category] = b
		}
		b.services++
		b.gross += item.PriceUSD
	}

	tips, err := s.tipsByWorker(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var payrolls []WorkerPayroll
	for workerID, categories := range buckets {
		p := WorkerPayroll{
			WorkerID:   workerID,
			WorkerName: names[workerID],
			TipsUSD:    float64(tips[workerID]) / 100,
		}
		var grossCents, commissionCents int64
		for category, b := range categories {
			lineCommission := b.gross * int64(b.rate) / 100
			p.Lines = append(p.Lines, CommissionLine{
				Category:      category,
				Services:      b.services,
				GrossUSD:      float64(b.gross) / 100,
				RatePct:       b.rate,
				CommissionUSD: float64(lineCommission) / 100,
			})
			grossCents += b.gross
			commissionCents += lineCommission
		}
		sort.Slice(p.Lines, func(i, j int) bool { return p.Lines[i].Category < p.Lines[j].Category })
		p.GrossUSD = float64(grossCents) / 100
		p.CommissionUSD = float64(commissionCents) / 100
		p.TotalUSD = p.CommissionUSD + p.TipsUSD
		payrolls = append(payrolls, p)
	}

	// Workers who only received tips still appear on payroll.
	for workerID, tipCents := range tips {
		if _, ok := buckets[workerID]; ok {
			continue
		}
		payrolls = append(payrolls, WorkerPayroll{
			WorkerID:   workerID,
			WorkerName: names[workerID],
			TipsUSD:    float64(tipCents) / 100,
			TotalUSD:   float64(tipCents) / 100,
		})
	}

	sort.Slice(payrolls, func(i, j int) bool { return payrolls[i].WorkerName < payrolls[j].WorkerName })
	return payrolls, nil
}

func (s *CommissionService) tipsByWorker(ctx context.Context, from, to time.Time) (map[uuid.UUID]int64, error) {
	sales, err := s.saleRepo.SalesInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	tips := make(map[uuid.UUID]int64)
	for _, sale := range sales {
		if sale.TipWorkerID != nil && sale.Tip > 0 {
			tips[*sale.TipWorkerID] += sale.Tip
		}
	}
	return tips, nil
}
