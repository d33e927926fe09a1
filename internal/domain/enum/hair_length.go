package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// HairLength is the pricing tier a service is billed under.
type HairLength int

const (
	HairLengthCorto       HairLength = 0
	HairLengthMediano     HairLength = 1
	HairLengthLargo       HairLength = 2
	HairLengthExtensiones HairLength = 3
)

func (h HairLength) String() string {
	names := [...]string{"Corto", "Mediano", "Largo", "Extensiones"}
	if int(h) < 0 || int(h) >= len(names) {
		return "Corto"
	}
	return names[h]
}

func (h HairLength) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *HairLength) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*h = HairLength(i)
		return nil
	}
	switch str {
	case "Mediano":
		*h = HairLengthMediano
	case "Largo":
		*h = HairLengthLargo
	case "Extensiones":
		*h = HairLengthExtensiones
	default:
		*h = HairLengthCorto
	}
	return nil
}

func (h HairLength) Value() (driver.Value, error) {
	return int64(h), nil
}

func (h *HairLength) Scan(value interface{}) error {
	if value == nil {
		*h = HairLengthCorto
		return nil
	}
	switch v := value.(type) {
	case int64:
		*h = HairLength(v)
	case int:
		*h = HairLength(v)
	}
	return nil
}
