package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Currency identifies the denomination of an amount.
type Currency string

const (
	// USD is the reference currency; all reconciliation happens in USD.
	USD Currency = "USD"
	// VES is the local currency ("Bs"), always tied to an exchange rate.
	VES Currency = "VES"
)

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	if c == VES {
		return "Bs"
	}
	return "$"
}

// Valid reports whether the currency is one of the supported values.
func (c Currency) Valid() bool {
	return c == USD || c == VES
}

// Epsilon is the comparison tolerance in minor units (one cent).
const Epsilon int64 = 1

// Money is an amount in integer minor units (cents) tagged with a currency.
// Example: $10.50 is {Amount: 1050, Currency: USD}.
type Money struct {
	Amount   int64    `json:"amount"`
	Currency Currency `json:"currency"`
}

// New creates a Money value from minor units.
func New(amount int64, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// Zero returns a zero amount in the given currency.
func Zero(currency Currency) Money {
	return Money{Currency: currency}
}

// FromFloat converts a decimal amount (e.g. operator input) to minor units,
// rounding half away from zero to absorb float representation noise.
func FromFloat(amount float64, currency Currency) Money {
	return Money{Amount: int64(math.Round(amount * 100)), Currency: currency}
}

// Float64 returns the amount in major units for presentation boundaries only.
func (m Money) Float64() float64 {
	return float64(m.Amount) / 100
}

// String formats the amount with its currency symbol.
func (m Money) String() string {
	return fmt.Sprintf("%s %.2f", m.Currency.Symbol(), m.Float64())
}

// Add returns m + other. Both operands must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("money: currency mismatch: cannot add %s to %s", other.Currency, m.Currency)
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Sub returns m - other. Both operands must share a currency.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("money: currency mismatch: cannot subtract %s from %s", other.Currency, m.Currency)
	}
	return Money{Amount: m.Amount - other.Amount, Currency: m.Currency}, nil
}

// IsZero reports whether the amount is within Epsilon of zero.
func (m Money) IsZero() bool {
	return WithinEpsilon(m.Amount, 0)
}

// WithinEpsilon reports whether two minor-unit amounts differ by at most Epsilon.
func WithinEpsilon(a, b int64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= Epsilon
}

// USDCents returns the exact USD cent value of a VES cent amount at the
// given rate (Bs per 1 USD), without rounding. A conversion chain should
// carry this decimal and round once at its final boundary: converting back
// with LocalCents recovers the original amount within one cent for any
// amount and any positive rate.
func USDCents(localCents int64, rate decimal.Decimal) (decimal.Decimal, error) {
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("money: exchange rate must be positive, got %s", rate)
	}
	return decimal.New(localCents, 0).Div(rate), nil
}

// LocalCents returns the exact VES cent value of a USD cent amount at the
// given rate, without rounding. The USD side is a decimal so unrounded
// values from USDCents pass through with full precision.
func LocalCents(usdCents decimal.Decimal, rate decimal.Decimal) (decimal.Decimal, error) {
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("money: exchange rate must be positive, got %s", rate)
	}
	return usdCents.Mul(rate), nil
}

// ToUSD converts a VES amount to whole USD cents at the given rate (Bs per
// 1 USD). USD amounts pass through unchanged. Rounding to whole cents here
// loses up to half a USD cent, which re-expressed in Bs is up to rate/2
// cents; code that later owes the client a Bs figure keeps the tendered
// original (as payment rows do) instead of reconverting.
func ToUSD(m Money, rate decimal.Decimal) (Money, error) {
	if m.Currency == USD {
		return m, nil
	}
	cents, err := USDCents(m.Amount, rate)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: cents.Round(0).IntPart(), Currency: USD}, nil
}

// ToLocal converts a USD amount to whole VES cents at the given rate (Bs
// per 1 USD). VES amounts pass through unchanged.
func ToLocal(m Money, rate decimal.Decimal) (Money, error) {
	if m.Currency == VES {
		return m, nil
	}
	cents, err := LocalCents(decimal.New(m.Amount, 0), rate)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: cents.Round(0).IntPart(), Currency: VES}, nil
}
