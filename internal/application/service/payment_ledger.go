package service

import (
	"fmt"

	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/pkg/apperror"
	"github.com/capelli/salonpos-api/pkg/money"
	"github.com/shopspring/decimal"
)

// LedgerState is the reconciliation state of an in-progress sale's payments.
type LedgerState string

const (
	// LedgerCollecting: payments do not yet cover the total.
	LedgerCollecting LedgerState = "collecting"
	// LedgerBalanced: paid within one cent of the total; commit permitted.
	LedgerBalanced LedgerState = "balanced"
	// LedgerOverpaid: paid over the total; commit permitted, change is due.
	LedgerOverpaid LedgerState = "overpaid"
	// LedgerDeferred: uncovered balance allowed to commit as a receivable.
	// Reachable only under the ReceivableAccount discount policy.
	LedgerDeferred LedgerState = "deferred"
)

// Payment is one tendered payment row in the in-progress ledger.
// Amount is in cents of Currency; Rate is the Bs-per-USD rate captured at
// the moment of entry, which makes the ledger immune to rate drift
// mid-transaction. AmountUSD is derived once, at entry.
type Payment struct {
	Method      enum.PaymentMethod      `json:"method"`
	Currency    money.Currency          `json:"currency"`
	Amount      int64                   `json:"amount"`
	Rate        decimal.Decimal         `json:"rate"`
	AmountUSD   int64                   `json:"amount_usd"`
	Destination enum.PaymentDestination `json:"destination"`
	Reference   string                  `json:"reference,omitempty"`
}

// PaymentLedger accumulates heterogeneous payments against a sale until the
// total is covered. Add and Remove are the only mutation paths; there is no
// in-place edit, which keeps the audit trail trivial. Every add either fully
// succeeds or leaves the ledger untouched.
type PaymentLedger struct {
	payments     []Payment
	totalPaidUSD int64
}

// AddPayment validates and appends a payment, returning the derived row.
func (l *PaymentLedger) AddPayment(method enum.PaymentMethod, currency money.Currency, amount int64, rate decimal.Decimal, destination enum.PaymentDestination, reference string) (*Payment, error) {
	if amount <= 0 {
		return nil, apperror.NewInvalidAmountError("Payment amount must be greater than zero")
	}
	if !currency.Valid() {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Unknown currency %q", currency))
	}

	switch method {
	case enum.PaymentMethodMobile:
		if currency != money.VES {
			return nil, apperror.NewBadRequestError("Mobile payments are tendered in Bs")
		}
		// The entry surface may leave the destination blank; the ledger
		// records the default explicitly so reconciliation never guesses.
		switch destination {
		case enum.DestinationNone:
			destination = enum.DestinationPrimary
		case enum.DestinationPrimary, enum.DestinationSecondary:
		default:
			return nil, apperror.NewMissingDestinationError()
		}
	case enum.PaymentMethodTransfer:
		if currency == money.USD && reference == "" {
			return nil, apperror.NewMissingReferenceError()
		}
		destination = enum.DestinationNone
	default:
		destination = enum.DestinationNone
	}

	p := Payment{
		Method:      method,
		Currency:    currency,
		Amount:      amount,
		Rate:        decimal.NewFromInt(1),
		AmountUSD:   amount,
		Destination: destination,
		Reference:   reference,
	}

	if currency == money.VES {
		if !rate.IsPositive() {
			return nil, apperror.NewBadRequestError("A positive exchange rate is required for Bs payments")
		}
		usd, err := money.ToUSD(money.New(amount, money.VES), rate)
		if err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
		p.Rate = rate
		p.AmountUSD = usd.Amount
	}

	l.payments = append(l.payments, p)
	l.totalPaidUSD += p.AmountUSD
	return &p, nil
}

// RemovePayment drops the payment at index and recomputes totals.
func (l *PaymentLedger) RemovePayment(index int) error {
	if index < 0 || index >= len(l.payments) {
		return apperror.NewBadRequestError(fmt.Sprintf("No payment at position %d", index))
	}
	l.totalPaidUSD -= l.payments[index].AmountUSD
	l.payments = append(l.payments[:index], l.payments[index+1:]...)
	return nil
}

// Payments returns a copy of the ordered payment rows.
func (l *PaymentLedger) Payments() []Payment {
	out := make([]Payment, len(l.payments))
	copy(out, l.payments)
	return out
}

// Len returns the number of payment rows.
func (l *PaymentLedger) Len() int {
	return len(l.payments)
}

// TotalPaidUSD returns the USD-cent sum of all payments.
func (l *PaymentLedger) TotalPaidUSD() int64 {
	return l.totalPaidUSD
}

// OutstandingUSD returns totalUSD minus what has been paid. Negative means
// change is due.
func (l *PaymentLedger) OutstandingUSD(totalUSD int64) int64 {
	return totalUSD - l.totalPaidUSD
}

// ChangeDueUSD returns the change owed to the client, zero when not overpaid.
func (l *PaymentLedger) ChangeDueUSD(totalUSD int64) int64 {
	if out := l.OutstandingUSD(totalUSD); out < -money.Epsilon {
		return -out
	}
	return 0
}

// State classifies the ledger against the sale total and discount policy.
func (l *PaymentLedger) State(totalUSD int64, policy enum.DiscountPolicy) LedgerState {
	out := l.OutstandingUSD(totalUSD)
	switch {
	case out > money.Epsilon && policy == enum.DiscountPolicyReceivableAccount:
		return LedgerDeferred
	case out > money.Epsilon:
		return LedgerCollecting
	case out < -money.Epsilon:
		return LedgerOverpaid
	default:
		return LedgerBalanced
	}
}

// AutoFillRemaining suggests an amount that would cover the outstanding
// balance, expressed in the requested currency at the given rate. It is a
// suggestion for the entry surface only and never mutates the ledger.
// Returns zero when nothing is outstanding.
func (l *PaymentLedger) AutoFillRemaining(totalUSD int64, currency money.Currency, rate decimal.Decimal) money.Money {
	out := l.OutstandingUSD(totalUSD)
	if out <= money.Epsilon {
		return money.Zero(currency)
	}
	if currency == money.VES {
		local, err := money.ToLocal(money.New(out, money.USD), rate)
		if err != nil {
			return money.Zero(currency)
		}
		return local
	}
	return money.New(out, money.USD)
}

// MobileByDestination partitions mobile-payment amounts (Bs cents) by
// receiving account for daily reconciliation.
func (l *PaymentLedger) MobileByDestination() map[enum.PaymentDestination]int64 {
	totals := make(map[enum.PaymentDestination]int64)
	for _, p := range l.payments {
		if p.Method == enum.PaymentMethodMobile {
			totals[p.Destination] += p.Amount
		}
	}
	return totals
}
