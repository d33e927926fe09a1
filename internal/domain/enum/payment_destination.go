package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentDestination is the sub-account a mobile payment is routed to.
// The salon operates two receiving accounts: the business account
// ("Capelli") and the owner's personal account ("Rosa").
type PaymentDestination int

const (
	// DestinationNone applies to methods that carry no routing.
	DestinationNone PaymentDestination = 0
	// DestinationPrimary is the Capelli business account (the default).
	DestinationPrimary PaymentDestination = 1
	// DestinationSecondary is the Rosa account.
	DestinationSecondary PaymentDestination = 2
)

func (d PaymentDestination) String() string {
	switch d {
	case DestinationPrimary:
		return "Capelli"
	case DestinationSecondary:
		return "Rosa"
	}
	return ""
}

func (d PaymentDestination) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *PaymentDestination) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*d = PaymentDestination(i)
		return nil
	}
	switch str {
	case "Capelli":
		*d = DestinationPrimary
	case "Rosa":
		*d = DestinationSecondary
	default:
		*d = DestinationNone
	}
	return nil
}

func (d PaymentDestination) Value() (driver.Value, error) {
	return int64(d), nil
}

func (d *PaymentDestination) Scan(value interface{}) error {
	if value == nil {
		*d = DestinationNone
		return nil
	}
	switch v := value.(type) {
	case int64:
		*d = PaymentDestination(v)
	case int:
		*d = PaymentDestination(v)
	}
	return nil
}
