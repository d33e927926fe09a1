package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SaleStatus is the persisted state of a committed sale.
type SaleStatus int

const (
	// SaleStatusPaid means payments fully covered (or overpaid) the total.
	SaleStatusPaid SaleStatus = 0
	// SaleStatusReceivable means the sale committed with an uncovered balance.
	SaleStatusReceivable SaleStatus = 1
	// SaleStatusVoid marks an annulled sale kept for audit.
	SaleStatusVoid SaleStatus = 2
)

func (s SaleStatus) String() string {
	names := [...]string{"Paid", "Receivable", "Void"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Paid"
	}
	return names[s]
}

func (s SaleStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SaleStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = SaleStatus(i)
		return nil
	}
	switch str {
	case "Receivable":
		*s = SaleStatusReceivable
	case "Void":
		*s = SaleStatusVoid
	default:
		*s = SaleStatusPaid
	}
	return nil
}

func (s SaleStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *SaleStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SaleStatusPaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = SaleStatus(v)
	case int:
		*s = SaleStatus(v)
	}
	return nil
}
