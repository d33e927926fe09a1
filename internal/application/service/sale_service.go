package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/internal/domain/repository"
	"github.com/capelli/salonpos-api/pkg/apperror"
	"github.com/capelli/salonpos-api/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateProvider supplies the current Bs-per-USD exchange rate. Reads never
// block and never fail; the provider falls back internally.
type RateProvider interface {
	CurrentRate() decimal.Decimal
}

// SaleService owns the in-progress sale sessions and the commit path.
// One session belongs to one operator; the registry mutex serializes the
// map while each session itself is only touched by its operator's requests.
type SaleService struct {
	saleRepo   repository.SaleRepository
	workerRepo repository.WorkerRepository
	clientRepo repository.ClientRepository
	pricing    *PricingService
	discounts  *DiscountEngine
	validator  *SaleValidator
	rates      RateProvider

	clampNegativeTotal bool

	mu       sync.Mutex
	sessions map[uuid.UUID]*SaleSession
}

// NewSaleService creates the sale service.
func NewSaleService(
	saleRepo repository.SaleRepository,
	workerRepo repository.WorkerRepository,
	clientRepo repository.ClientRepository,
	pricing *PricingService,
	discounts *DiscountEngine,
	validator *SaleValidator,
	rates RateProvider,
	clampNegativeTotal bool,
) *SaleService {
	return &SaleService{
		saleRepo:           saleRepo,
		workerRepo:         workerRepo,
		clientRepo:         clientRepo,
		pricing:            pricing,
		discounts:          discounts,
		validator:          validator,
		rates:              rates,
		clampNegativeTotal: clampNegativeTotal,
		sessions:           make(map[uuid.UUID]*SaleSession),
	}
}

// StartSession opens a new empty sale session for an operator.
func (s *SaleService) StartSession(userID uuid.UUID) *SaleSession {
	sess := NewSaleSession(userID)
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// GetSession looks up an open session.
func (s *SaleService) GetSession(id uuid.UUID) (*SaleSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Sale session")
	}
	return sess, nil
}

// CancelSession discards an open session.
func (s *SaleService) CancelSession(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return apperror.NewNotFoundError("Sale session")
	}
	delete(s.sessions, id)
	return nil
}

// AddItemInput describes a service being added to the sale.
type AddItemInput struct {
	ServiceID     uuid.UUID
	WorkerID      uuid.UUID
	HairLength    enum.HairLength
	OverrideCents int64 // 0 means use the catalog price
}

// AddItem resolves the price and appends a line item.
func (s *SaleService) AddItem(ctx context.Context, sessionID uuid.UUID, input AddItemInput) (*SaleSession, error) {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	worker, err := s.workerRepo.GetByID(ctx, input.WorkerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperror.NewNotFoundError("Worker")
	}

	price, svc, err := s.pricing.ResolvePrice(ctx, input.ServiceID, input.HairLength, input.OverrideCents)
	if err != nil {
		return nil, err
	}

	serviceID := svc.ID
	sess.AddLineItem(LineItem{
		ServiceID:   &serviceID,
		ServiceName: svc.Name,
		Category:    svc.Category,
		WorkerID:    worker.ID,
		WorkerName:  worker.Name,
		HairLength:  input.HairLength,
		PriceUSD:    price.Amount,
	})
	s.refreshDiscount(sess)
	return sess, nil
}

// RemoveItem drops a line item by index.
func (s *SaleService) RemoveItem(sessionID uuid.UUID, index int) (*SaleSession, error) {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.RemoveLineItem(index); err != nil {
		return nil, err
	}
	s.refreshDiscount(sess)
	return sess, nil
}

// UpdateItemPrice overrides the price of a line item.
func (s *SaleService) UpdateItemPrice(sessionID uuid.UUID, index int, priceCents int64) (*SaleSession, error) {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.UpdateLineItemPrice(index, priceCents); err != nil {
		return nil, err
	}
	s.refreshDiscount(sess)
	return sess, nil
}

// SetDiscount selects a discount policy with the operator-entered amount.
// Returns discount-engine warnings (e.g. a promo amount typed wrong).
func (s *SaleService) SetDiscount(sessionID uuid.UUID, policy enum.DiscountPolicy, enteredCents int64) ([]string, error) {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	resolved, warnings, err := s.discounts.ComputeDiscount(policy, sess.Subtotal(), enteredCents)
	if err != nil {
		return nil, err
	}

	sess.Policy = policy
	sess.EnteredDiscount = enteredCents
	sess.DiscountUSD = resolved.Amount
	return warnings, nil
}

// SetTip records the tip and its recipient.
func (s *SaleService) SetTip(sessionID uuid.UUID, tipCents int64, workerID *uuid.UUID) error {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return err
	}
	if tipCents < 0 {
		return apperror.NewInvalidAmountError("Tip cannot be negative")
	}
	sess.TipUSD = tipCents
	sess.TipWorkerID = workerID
	return nil
}

// SetClient attaches a client to the session.
func (s *SaleService) SetClient(ctx context.Context, sessionID uuid.UUID, clientID *uuid.UUID) error {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return err
	}
	if clientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *clientID)
		if err != nil {
			return err
		}
		if client == nil {
			return apperror.NewNotFoundError("Client")
		}
	}
	sess.ClientID = clientID
	return nil
}

// SetDisplayCurrency switches the currency totals are rendered in.
func (s *SaleService) SetDisplayCurrency(sessionID uuid.UUID, currency money.Currency) error {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return err
	}
	if !currency.Valid() {
		return apperror.NewBadRequestError(fmt.Sprintf("Unknown currency %q", currency))
	}
	sess.DisplayCurrency = currency
	return nil
}

// AddPayment appends a payment to the session ledger, capturing the rate
// in effect right now so later rate changes cannot skew this row.
func (s *SaleService) AddPayment(sessionID uuid.UUID, method enum.PaymentMethod, currency money.Currency, amountCents int64, destination enum.PaymentDestination, reference string) (*Payment, error) {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Ledger.AddPayment(method, currency, amountCents, s.rates.CurrentRate(), destination, reference)
}

// RemovePayment drops a payment row by index.
func (s *SaleService) RemovePayment(sessionID uuid.UUID, index int) error {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return err
	}
	return sess.Ledger.RemovePayment(index)
}

// AutoFillRemaining suggests the amount covering the outstanding balance in
// the requested currency. Suggestion only; the ledger is not touched.
func (s *SaleService) AutoFillRemaining(sessionID uuid.UUID, currency money.Currency) (money.Money, error) {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return money.Money{}, err
	}
	totals, err := sess.Totals(s.rates.CurrentRate(), s.clampNegativeTotal)
	if err != nil {
		return money.Money{}, err
	}
	return sess.Ledger.AutoFillRemaining(totals.TotalUSD, currency, s.rates.CurrentRate()), nil
}

// SessionSummary is the full derived view of a session the entry surface renders.
type SessionSummary struct {
	Session        *SaleSession     `json:"session"`
	Totals         SaleTotals       `json:"totals"`
	Payments       []Payment        `json:"payments"`
	TotalPaidUSD   int64            `json:"total_paid_usd"`
	OutstandingUSD int64            `json:"outstanding_usd"`
	ChangeDueUSD   int64            `json:"change_due_usd"`
	State          LedgerState      `json:"state"`
	Validation     ValidationResult `json:"validation"`
}

// Summarize recomputes totals, ledger state and the validation report.
func (s *SaleService) Summarize(sessionID uuid.UUID) (*SessionSummary, error) {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	return s.summarize(sess)
}

func (s *SaleService) summarize(sess *SaleSession) (*SessionSummary, error) {
	totals, err := sess.Totals(s.rates.CurrentRate(), s.clampNegativeTotal)
	if err != nil {
		return nil, err
	}

	prices := make([]int64, len(sess.Items))
	for i, item := range sess.Items {
		prices[i] = item.PriceUSD
	}

	validation := s.validator.Validate(ValidationInput{
		ItemPrices:     prices,
		Subtotal:       totals.Subtotal,
		Discount:       totals.Discount,
		Tip:            totals.Tip,
		Total:          totals.TotalUSD,
		TotalPaidUSD:   sess.Ledger.TotalPaidUSD(),
		PaymentCount:   sess.Ledger.Len(),
		DiscountPolicy: sess.Policy,
	})

	return &SessionSummary{
		Session:        sess,
		Totals:         totals,
		Payments:       sess.Ledger.Payments(),
		TotalPaidUSD:   sess.Ledger.TotalPaidUSD(),
		OutstandingUSD: sess.Ledger.OutstandingUSD(totals.TotalUSD),
		ChangeDueUSD:   sess.Ledger.ChangeDueUSD(totals.TotalUSD),
		State:          sess.Ledger.State(totals.TotalUSD, sess.Policy),
		Validation:     validation,
	}, nil
}

// Commit validates the session and persists the immutable sale snapshot.
// Validation errors are returned as data, not as a Go error. A persistence
// failure is returned verbatim and the session survives so the operator can
// retry; on success the session is cleared.
func (s *SaleService) Commit(ctx context.Context, sessionID uuid.UUID) (*entity.Sale, *ValidationResult, error) {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return nil, nil, err
	}

	summary, err := s.summarize(sess)
	if err != nil {
		return nil, nil, err
	}
	if !summary.Validation.OK() {
		return nil, &summary.Validation, nil
	}

	rate := s.rates.CurrentRate()
	now := time.Now()

	sale := &entity.Sale{
		InvoiceNo:      fmt.Sprintf("FAC-%s", uuid.New().String()[:8]),
		UserID:         sess.UserID,
		ClientID:       sess.ClientID,
		SaleDate:       now,
		Status:         enum.SaleStatusPaid,
		DiscountPolicy: sess.Policy,
		ExchangeRate:   rate,
		Subtotal:       summary.Totals.Subtotal,
		Discount:       summary.Totals.Discount,
		Tip:            summary.Totals.Tip,
		Total:          summary.Totals.TotalUSD,
		TotalPaidUSD:   summary.TotalPaidUSD,
		ChangeUSD:      summary.ChangeDueUSD,
		TipWorkerID:    sess.TipWorkerID,
	}

	items := make([]entity.SaleItem, 0, len(sess.Items))
	for _, li := range sess.Items {
		items = append(items, entity.SaleItem{
			ServiceID:   li.ServiceID,
			ServiceName: li.ServiceName,
			Category:    li.Category,
			WorkerID:    li.WorkerID,
			WorkerName:  li.WorkerName,
			HairLength:  li.HairLength,
			PriceUSD:    li.PriceUSD, // final post-override price, read by payroll
		})
	}

	payments := make([]entity.SalePayment, 0, sess.Ledger.Len())
	for _, p := range sess.Ledger.Payments() {
		var ref *string
		if p.Reference != "" {
			r := p.Reference
			ref = &r
		}
		payments = append(payments, entity.SalePayment{
			Method:      p.Method,
			Currency:    p.Currency,
			Amount:      p.Amount,
			Rate:        p.Rate,
			AmountUSD:   p.AmountUSD,
			Destination: p.Destination,
			Reference:   ref,
		})
	}

	var receivable *entity.Receivable
	if summary.State == LedgerDeferred {
		sale.Status = enum.SaleStatusReceivable
		receivable = &entity.Receivable{
			ClientID:  sess.ClientID,
			AmountUSD: summary.OutstandingUSD,
		}
	}

	if err := s.saleRepo.CommitSale(ctx, sale, items, payments, receivable); err != nil {
		// Session intentionally preserved: the operator retries the commit.
		return nil, nil, apperror.NewPersistenceError(err)
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	return sale, &summary.Validation, nil
}

// refreshDiscount re-resolves the discount after line items change, so a
// Promotion discount tracks the subtotal. Bounds violations are left for the
// validator to report rather than silently corrected.
func (s *SaleService) refreshDiscount(sess *SaleSession) {
	if sess.Policy == enum.DiscountPolicyNone {
		sess.DiscountUSD = 0
		return
	}
	resolved, _, err := s.discounts.ComputeDiscount(sess.Policy, sess.Subtotal(), sess.EnteredDiscount)
	if err != nil {
		return
	}
	sess.DiscountUSD = resolved.Amount
}
