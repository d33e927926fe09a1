package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountPolicy names the rule governing how much is subtracted from a
// sale's subtotal.
type DiscountPolicy int

const (
	DiscountPolicyNone DiscountPolicy = 0
	// DiscountPolicyPromotion applies the configured promo percentage.
	DiscountPolicyPromotion DiscountPolicy = 1
	// DiscountPolicyExchange covers barter/canje arrangements; the amount is operator-entered.
	DiscountPolicyExchange DiscountPolicy = 2
	// DiscountPolicyPayableAccount settles a debt the salon owes; operator-entered.
	DiscountPolicyPayableAccount DiscountPolicy = 3
	// DiscountPolicyReceivableAccount lets the sale commit with an uncovered
	// balance, recorded as a receivable for later collection.
	DiscountPolicyReceivableAccount DiscountPolicy = 4
)

func (p DiscountPolicy) String() string {
	names := [...]string{"None", "Promotion", "Exchange", "PayableAccount", "ReceivableAccount"}
	if int(p) < 0 || int(p) >= len(names) {
		return "None"
	}
	return names[p]
}

func (p DiscountPolicy) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *DiscountPolicy) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = DiscountPolicy(i)
		return nil
	}
	switch str {
	case "Promotion":
		*p = DiscountPolicyPromotion
	case "Exchange":
		*p = DiscountPolicyExchange
	case "PayableAccount":
		*p = DiscountPolicyPayableAccount
	case "ReceivableAccount":
		*p = DiscountPolicyReceivableAccount
	default:
		*p = DiscountPolicyNone
	}
	return nil
}

func (p DiscountPolicy) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *DiscountPolicy) Scan(value interface{}) error {
	if value == nil {
		*p = DiscountPolicyNone
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = DiscountPolicy(v)
	case int:
		*p = DiscountPolicy(v)
	}
	return nil
}
