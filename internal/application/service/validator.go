package service

import (
	"fmt"

	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/pkg/money"
)

// ValidationResult is the batched outcome of pre-commit validation.
// Errors block commit; warnings are surfaced to the operator who may
// override and proceed.
type ValidationResult struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// OK reports whether commit is permitted.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// ValidationInput is everything the validator cross-checks. All amounts are
// USD cents. Subtotal and Total are the figures the entry surface displays,
// re-verified here against the line items to guard against UI/model desync.
type ValidationInput struct {
	ItemPrices     []int64
	Subtotal       int64
	Discount       int64
	Tip            int64
	Total          int64
	TotalPaidUSD   int64
	PaymentCount   int
	DiscountPolicy enum.DiscountPolicy
}

// SaleValidator cross-checks a sale's figures before commit. It never
// returns a Go error: every rule accumulates into one result so the
// operator sees all problems at once.
type SaleValidator struct {
	tipWarningPct     int
	priceSanityMinUSD int64
	priceSanityMaxUSD int64
}

// NewSaleValidator creates a validator with the configured warning bounds.
func NewSaleValidator(tipWarningPct int, priceMinCents, priceMaxCents int64) *SaleValidator {
	return &SaleValidator{
		tipWarningPct:     tipWarningPct,
		priceSanityMinUSD: priceMinCents,
		priceSanityMaxUSD: priceMaxCents,
	}
}

// Validate runs every rule and returns the accumulated result.
func (v *SaleValidator) Validate(in ValidationInput) ValidationResult {
	var res ValidationResult

	if len(in.ItemPrices) == 0 {
		res.Errors = append(res.Errors, "La venta no tiene servicios")
	}

	var itemSum int64
	for _, p := range in.ItemPrices {
		itemSum += p
	}
	if len(in.ItemPrices) > 0 && !money.WithinEpsilon(in.Subtotal, itemSum) {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"El subtotal (%.2f) no coincide con la suma de los servicios (%.2f)",
			float64(in.Subtotal)/100, float64(itemSum)/100))
	}

	if in.Discount > in.Subtotal {
		res.Errors = append(res.Errors, "El descuento supera el subtotal")
	}

	expectedTotal := in.Subtotal - in.Discount + in.Tip
	if !money.WithinEpsilon(in.Total, expectedTotal) {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"El Total (%.2f) no coincide con subtotal - descuento + propina (%.2f)",
			float64(in.Total)/100, float64(expectedTotal)/100))
	}

	if in.PaymentCount == 0 {
		res.Errors = append(res.Errors, "Debe registrar al menos un metodo de pago")
	}

	outstanding := in.Total - in.TotalPaidUSD
	if outstanding > money.Epsilon {
		if in.DiscountPolicy == enum.DiscountPolicyReceivableAccount {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"La venta queda como cuenta por cobrar: faltan %.2f USD", float64(outstanding)/100))
		} else {
			res.Errors = append(res.Errors, fmt.Sprintf(
				"Monto pagado insuficiente: faltan %.2f USD", float64(outstanding)/100))
		}
	}

	if in.Subtotal > 0 && in.Tip*100 > in.Subtotal*int64(v.tipWarningPct) {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"La propina (%.2f) supera el %d%% del subtotal", float64(in.Tip)/100, v.tipWarningPct))
	}

	for i, p := range in.ItemPrices {
		if p < v.priceSanityMinUSD {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"El servicio #%d tiene un precio inusualmente bajo (%.2f)", i+1, float64(p)/100))
		} else if p > v.priceSanityMaxUSD {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"El servicio #%d tiene un precio inusualmente alto (%.2f)", i+1, float64(p)/100))
		}
	}

	return res
}
