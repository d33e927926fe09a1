package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how a payment was tendered.
type PaymentMethod int

const (
	PaymentMethodCash PaymentMethod = 0
	// PaymentMethodCard is a card swiped on the salon's point terminal.
	PaymentMethodCard PaymentMethod = 1
	// PaymentMethodMobile is a pago movil; always in local currency and
	// routed to one of the salon's receiving accounts.
	PaymentMethodMobile PaymentMethod = 2
	// PaymentMethodTransfer is a bank transfer; USD transfers require a reference.
	PaymentMethodTransfer PaymentMethod = 3
	PaymentMethodZelle    PaymentMethod = 4
)

func (m PaymentMethod) String() string {
	names := [...]string{"Cash", "Card", "MobilePayment", "Transfer", "Zelle"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Cash"
	}
	return names[m]
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	switch str {
	case "Card":
		*m = PaymentMethodCard
	case "MobilePayment":
		*m = PaymentMethodMobile
	case "Transfer":
		*m = PaymentMethodTransfer
	case "Zelle":
		*m = PaymentMethodZelle
	default:
		*m = PaymentMethodCash
	}
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
