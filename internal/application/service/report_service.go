package service

import (
	"context"
	"sort"
	"time"

	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/internal/domain/repository"
	"github.com/capelli/salonpos-api/pkg/money"
)

// MethodTotal is the reconciliation figure for one payment method+currency.
type MethodTotal struct {
	Method    string  `json:"method"`
	Currency  string  `json:"currency"`
	Amount    float64 `json:"amount"`
	AmountUSD float64 `json:"amount_usd"`
	Count     int     `json:"count"`
}

// DestinationTotal partitions mobile payments by receiving account.
type DestinationTotal struct {
	Destination string  `json:"destination"`
	AmountBs    float64 `json:"amount_bs"`
	Count       int     `json:"count"`
}

// DailyReport is the end-of-day cash reconciliation summary.
type DailyReport struct {
	Date              string             `json:"date"`
	Sales             int                `json:"sales"`
	GrossUSD          float64            `json:"gross_usd"`
	DiscountsUSD      float64            `json:"discounts_usd"`
	TipsUSD           float64            `json:"tips_usd"`
	TotalUSD          float64            `json:"total_usd"`
	PaidUSD           float64            `json:"paid_usd"`
	ChangeGivenUSD    float64            `json:"change_given_usd"`
	ReceivablesUSD    float64            `json:"receivables_usd"`
	ByMethod          []MethodTotal      `json:"by_method"`
	MobileByAccount   []DestinationTotal `json:"mobile_by_account"`
}

// ReportService builds reconciliation reports from committed sales.
type ReportService struct {
	saleRepo repository.SaleRepository
}

// NewReportService creates a report service.
func NewReportService(saleRepo repository.SaleRepository) *ReportService {
	return &ReportService{saleRepo: saleRepo}
}

// Daily builds the reconciliation report for one calendar day.
func (s *ReportService) Daily(ctx context.Context, day time.Time) (*DailyReport, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	sales, err := s.saleRepo.SalesInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	payments, err := s.saleRepo.PaymentsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &DailyReport{Date: from.Format("2006-01-02")}

	var gross, discounts, tips, total, paid, change, receivables int64
	for _, sale := range sales {
		if sale.Status == enum.SaleStatusVoid {
			continue
		}
		report.Sales++
		gross += sale.Subtotal
		discounts += sale.Discount
		tips += sale.Tip
		total += sale.Total
		paid += sale.TotalPaidUSD
		change += sale.ChangeUSD
		if sale.Status == enum.SaleStatusReceivable {
			receivables += sale.Total - sale.TotalPaidUSD
		}
	}

	type methodKey struct {
		method   enum.PaymentMethod
		currency money.Currency
	}
	methodTotals := make(map[methodKey]*MethodTotal)
	destTotals := make(map[enum.PaymentDestination]*DestinationTotal)
	for _, p := range payments {
		k := methodKey{method: p.Method, currency: p.Currency}
		mt := methodTotals[k]
		if mt == nil {
			mt = &MethodTotal{Method: p.Method.String(), Currency: string(p.Currency)}
			methodTotals[k] = mt
		}
		mt.Amount += float64(p.Amount) / 100
		mt.AmountUSD += float64(p.AmountUSD) / 100
		mt.Count++

		if p.Method == enum.PaymentMethodMobile {
			dt := destTotals[p.Destination]
			if dt == nil {
				dt = &DestinationTotal{Destination: p.Destination.String()}
				destTotals[p.Destination] = dt
			}
			dt.AmountBs += float64(p.Amount) / 100
			dt.Count++
		}
	}

	for _, mt := range methodTotals {
		report.ByMethod = append(report.ByMethod, *mt)
	}
	sort.Slice(report.ByMethod, func(i, j int) bool {
		if report.ByMethod[i].Method != report.ByMethod[j].Method {
			return report.ByMethod[i].Method < report.ByMethod[j].Method
		}
		return report.ByMethod[i].Currency < report.ByMethod[j].Currency
	})
	for _, dt := range destTotals {
		report.MobileByAccount = append(report.MobileByAccount, *dt)
	}
	sort.Slice(report.MobileByAccount, func(i, j int) bool {
		return report.MobileByAccount[i].Destination < report.MobileByAccount[j].Destination
	})

	report.GrossUSD = float64(gross) / 100
	report.DiscountsUSD = float64(discounts) / 100
	report.TipsUSD = float64(tips) / 100
	report.TotalUSD = float64(total) / 100
	report.PaidUSD = float64(paid) / 100
	report.ChangeGivenUSD = float64(change) / 100
	report.ReceivablesUSD = float64(receivables) / 100
	return report, nil
}
