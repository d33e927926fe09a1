package entity

import (
	"encoding/json"
	"time"

	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalePayment is one tendered payment on a committed sale, immutable once
// persisted. Amount is in cents of the tendered currency; Rate is the
// Bs-per-USD rate captured at entry (1 for USD payments); AmountUSD is the
// derived USD-cent value used for reconciliation.
type SalePayment struct {
	ID          uuid.UUID               `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID               `gorm:"type:uuid;not null;index" json:"sale_id"`
	Method      enum.PaymentMethod      `gorm:"default:0" json:"method"`
	Currency    money.Currency          `gorm:"size:10;not null" json:"currency"`
	Amount      int64                   `gorm:"not null" json:"-"` // cents of Currency
	Rate        decimal.Decimal         `gorm:"type:numeric(14,4)" json:"rate"`
	AmountUSD   int64                   `gorm:"not null" json:"-"` // USD cents
	Destination enum.PaymentDestination `gorm:"default:0" json:"destination"`
	Reference   *string                 `gorm:"size:255" json:"reference,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	DeletedAt   gorm.DeletedAt          `gorm:"index" json:"-"`

	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p SalePayment) MarshalJSON() ([]byte, error) {
	type Alias SalePayment
	return json.Marshal(&struct {
		Alias
		Amount    float64 `json:"amount"`
		AmountUSD float64 `json:"amount_usd"`
	}{
		Alias:     Alias(p),
		Amount:    float64(p.Amount) / 100,
		AmountUSD: float64(p.AmountUSD) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *SalePayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalePayment model
func (SalePayment) TableName() string {
	return "sale_payments"
}
