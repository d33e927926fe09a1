package service

import (
	"fmt"
	"log"
	"time"

	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/pkg/apperror"
	"github.com/capelli/salonpos-api/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is a rendered service on the in-progress sale. PriceUSD is
// mutable (price override) until the sale commits.
type LineItem struct {
	ServiceID   *uuid.UUID      `json:"service_id,omitempty"`
	ServiceName string          `json:"service_name"`
	Category    string          `json:"category"`
	WorkerID    uuid.UUID       `json:"worker_id"`
	WorkerName  string          `json:"worker_name"`
	HairLength  enum.HairLength `json:"hair_length"`
	PriceUSD    int64           `json:"price_usd"` // USD cents
}

// SaleTotals is the derived money summary of a session, recomputed on every
// mutation. Subtotal, Discount and Tip are always USD cents; Total is in the
// session's display currency, converted once at the end so rounding error
// never compounds per term.
type SaleTotals struct {
	Subtotal        int64          `json:"subtotal"`
	Discount        int64          `json:"discount"`
	Tip             int64          `json:"tip"`
	TotalUSD        int64          `json:"total_usd"`
	TotalDisplay    int64          `json:"total_display"`
	DisplayCurrency money.Currency `json:"display_currency"`
	Clamped         bool           `json:"clamped"`
}

// SaleSession is the exclusively-owned state of one in-progress sale:
// line items, discount selection, tip and the payment ledger. It is driven
// by a single operator; the registry in SaleService serializes access.
type SaleSession struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ClientID        *uuid.UUID
	Items           []LineItem
	Policy          enum.DiscountPolicy
	EnteredDiscount int64 // USD cents, as typed by the operator
	DiscountUSD     int64 // USD cents, as resolved by the discount engine
	TipUSD          int64 // USD cents
	TipWorkerID     *uuid.UUID
	DisplayCurrency money.Currency
	Ledger          PaymentLedger
	CreatedAt       time.Time
}

// NewSaleSession starts an empty session for an operator.
func NewSaleSession(userID uuid.UUID) *SaleSession {
	return &SaleSession{
		ID:              uuid.New(),
		UserID:          userID,
		DisplayCurrency: money.USD,
		CreatedAt:       time.Now(),
	}
}

// AddLineItem appends a line and returns its index.
func (s *SaleSession) AddLineItem(item LineItem) int {
	s.Items = append(s.Items, item)
	return len(s.Items) - 1
}

// RemoveLineItem drops the line at index.
func (s *SaleSession) RemoveLineItem(index int) error {
	if index < 0 || index >= len(s.Items) {
		return apperror.NewBadRequestError(fmt.Sprintf("No line item at position %d", index))
	}
	s.Items = append(s.Items[:index], s.Items[index+1:]...)
	return nil
}

// UpdateLineItemPrice overrides the price of an existing line.
func (s *SaleSession) UpdateLineItemPrice(index int, priceUSD int64) error {
	if index < 0 || index >= len(s.Items) {
		return apperror.NewBadRequestError(fmt.Sprintf("No line item at position %d", index))
	}
	if priceUSD <= 0 {
		return apperror.NewInvalidAmountError("Price must be greater than zero")
	}
	s.Items[index].PriceUSD = priceUSD
	return nil
}

// Subtotal returns the USD-cent sum of line item prices.
func (s *SaleSession) Subtotal() int64 {
	var sum int64
	for _, item := range s.Items {
		sum += item.PriceUSD
	}
	return sum
}

// Totals recomputes the money summary. Pure over the session state, the
// rate and the clamp flag: calling it twice yields identical results.
func (s *SaleSession) Totals(rate decimal.Decimal, clampNegative bool) (SaleTotals, error) {
	subtotal := s.Subtotal()
	totalUSD := subtotal - s.DiscountUSD + s.TipUSD

	clamped := false
	if totalUSD < 0 {
		if !clampNegative {
			return SaleTotals{}, apperror.NewBadRequestError("Discount exceeds subtotal plus tip")
		}
		// Legacy behavior: a negative computed total silently becomes zero.
		log.Printf("sale: negative total %.2f clamped to zero (subtotal %.2f, discount %.2f, tip %.2f)",
			float64(totalUSD)/100, float64(subtotal)/100, float64(s.DiscountUSD)/100, float64(s.TipUSD)/100)
		totalUSD = 0
		clamped = true
	}

	totals := SaleTotals{
		Subtotal:        subtotal,
		Discount:        s.DiscountUSD,
		Tip:             s.TipUSD,
		TotalUSD:        totalUSD,
		TotalDisplay:    totalUSD,
		DisplayCurrency: s.DisplayCurrency,
		Clamped:         clamped,
	}

	if s.DisplayCurrency == money.VES {
		local, err := money.ToLocal(money.New(totalUSD, money.USD), rate)
		if err != nil {
			return SaleTotals{}, apperror.NewBadRequestError(err.Error())
		}
		totals.TotalDisplay = local.Amount
	}

	return totals, nil
}
