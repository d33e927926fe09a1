package service

import (
	"fmt"

	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/pkg/apperror"
	"github.com/capelli/salonpos-api/pkg/money"
)

// DiscountEngine applies a named discount policy to a subtotal. All amounts
// are USD cents.
type DiscountEngine struct {
	promoPct int
}

// NewDiscountEngine creates a discount engine with the configured promotion
// percentage (legacy default 20).
func NewDiscountEngine(promoPct int) *DiscountEngine {
	return &DiscountEngine{promoPct: promoPct}
}

// ComputeDiscount resolves the discount for a policy. For Promotion the
// amount is computed from the subtotal; entered is the operator-typed figure
// and yields a warning when it disagrees with the computed one. For the
// manual policies the entered amount is taken as-is, bounded by the subtotal.
func (e *DiscountEngine) ComputeDiscount(policy enum.DiscountPolicy, subtotal, entered int64) (money.Money, []string, error) {
	var warnings []string

	switch policy {
	case enum.DiscountPolicyNone:
		if entered > 0 {
			return money.Money{}, nil, apperror.NewInvalidDiscountError("A discount requires a discount policy")
		}
		return money.Zero(money.USD), nil, nil

	case enum.DiscountPolicyPromotion:
		computed := subtotal * int64(e.promoPct) / 100
		if entered > 0 && !money.WithinEpsilon(entered, computed) {
			warnings = append(warnings, fmt.Sprintf(
				"El descuento ingresado (%.2f) no coincide con la promocion del %d%% (%.2f)",
				float64(entered)/100, e.promoPct, float64(computed)/100))
		}
		if computed > subtotal {
			return money.Money{}, nil, apperror.NewInvalidDiscountError("Discount exceeds subtotal")
		}
		return money.New(computed, money.USD), warnings, nil

	case enum.DiscountPolicyExchange, enum.DiscountPolicyPayableAccount, enum.DiscountPolicyReceivableAccount:
		if entered < 0 {
			return money.Money{}, nil, apperror.NewInvalidDiscountError("Discount cannot be negative")
		}
		if entered > subtotal {
			return money.Money{}, nil, apperror.NewInvalidDiscountError("Discount exceeds subtotal")
		}
		return money.New(entered, money.USD), nil, nil
	}

	return money.Money{}, nil, apperror.NewBadRequestError(fmt.Sprintf("Unknown discount policy %d", policy))
}
