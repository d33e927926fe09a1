package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Receivable records the uncovered balance of a sale committed under the
// ReceivableAccount policy, kept open until collected.
type Receivable struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"sale_id"`
	ClientID    *uuid.UUID     `gorm:"type:uuid;index" json:"client_id,omitempty"`
	AmountUSD   int64          `gorm:"not null" json:"-"` // USD cents outstanding
	Collected   bool           `gorm:"default:false;index" json:"collected"`
	CollectedAt *time.Time     `json:"collected_at,omitempty"`
	Notes       *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Sale   Sale    `gorm:"foreignKey:SaleID" json:"-"`
	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (r Receivable) MarshalJSON() ([]byte, error) {
	type Alias Receivable
	return json.Marshal(&struct {
		Alias
		AmountUSD float64 `json:"amount_usd"`
	}{
		Alias:     Alias(r),
		AmountUSD: float64(r.AmountUSD) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new receivable
func (r *Receivable) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receivable model
func (Receivable) TableName() string {
	return "receivables"
}
