package entity

import (
	"encoding/json"
	"time"

	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale is the immutable snapshot of a committed sale. All monetary columns
// are USD cents; ExchangeRate is the Bs-per-USD rate in effect at commit.
type Sale struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo      string              `gorm:"size:100;unique;not null" json:"invoice_no"`
	UserID         uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID       *uuid.UUID          `gorm:"type:uuid;index" json:"client_id,omitempty"`
	SaleDate       time.Time           `gorm:"type:date;not null;index" json:"sale_date"`
	Status         enum.SaleStatus     `gorm:"default:0" json:"status"`
	DiscountPolicy enum.DiscountPolicy `gorm:"default:0" json:"discount_policy"`
	ExchangeRate   decimal.Decimal     `gorm:"type:numeric(14,4)" json:"exchange_rate"`
	Subtotal       int64               `gorm:"default:0" json:"-"` // USD cents
	Discount       int64               `gorm:"default:0" json:"-"` // USD cents
	Tip            int64               `gorm:"default:0" json:"-"` // USD cents
	Total          int64               `gorm:"default:0" json:"-"` // USD cents
	TotalPaidUSD   int64               `gorm:"default:0" json:"-"` // USD cents
	ChangeUSD      int64               `gorm:"default:0" json:"-"` // USD cents given back
	TipWorkerID    *uuid.UUID          `gorm:"type:uuid" json:"tip_worker_id,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	DeletedAt      gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	User     User          `gorm:"foreignKey:UserID" json:"-"`
	Client   *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items    []SaleItem    `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	Payments []SalePayment `gorm:"foreignKey:SaleID" json:"payments,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		Subtotal     float64 `json:"subtotal"`
		Discount     float64 `json:"discount"`
		Tip          float64 `json:"tip"`
		Total        float64 `json:"total"`
		TotalPaidUSD float64 `json:"total_paid_usd"`
		ChangeUSD    float64 `json:"change_usd"`
	}{
		Alias:        Alias(s),
		Subtotal:     float64(s.Subtotal) / 100,
		Discount:     float64(s.Discount) / 100,
		Tip:          float64(s.Tip) / 100,
		Total:        float64(s.Total) / 100,
		TotalPaidUSD: float64(s.TotalPaidUSD) / 100,
		ChangeUSD:    float64(s.ChangeUSD) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one rendered service on a committed sale. PriceUSD is the
// final post-override USD-cent price, the figure commission payroll reads.
type SaleItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	ServiceID   *uuid.UUID      `gorm:"type:uuid;index" json:"service_id,omitempty"`
	ServiceName string          `gorm:"size:255;not null" json:"service_name"`
	Category    string          `gorm:"size:100" json:"category"`
	WorkerID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"worker_id"`
	WorkerName  string          `gorm:"size:255;not null" json:"worker_name"`
	HairLength  enum.HairLength `gorm:"default:0" json:"hair_length"`
	PriceUSD    int64           `gorm:"not null" json:"-"` // USD cents
	CreatedAt   time.Time       `json:"created_at"`

	Sale   Sale   `gorm:"foreignKey:SaleID" json:"-"`
	Worker Worker `gorm:"foreignKey:WorkerID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		PriceUSD float64 `json:"price_usd"`
	}{
		Alias:    Alias(i),
		PriceUSD: float64(i.PriceUSD) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
