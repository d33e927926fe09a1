package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Worker is a stylist whose rendered services earn commission.
type Worker struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name                 string         `gorm:"size:255;not null" json:"name"`
	Phone                *string        `gorm:"size:50" json:"phone,omitempty"`
	DefaultCommissionPct int            `gorm:"default:50" json:"default_commission_pct"`
	Active               bool           `gorm:"default:true" json:"active"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	SaleItems       []SaleItem       `gorm:"foreignKey:WorkerID" json:"-"`
	CommissionRates []CommissionRate `gorm:"foreignKey:WorkerID" json:"commission_rates,omitempty"`
}

// BeforeCreate generates a UUID before creating a new worker
func (w *Worker) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Worker model
func (Worker) TableName() string {
	return "workers"
}

// CommissionRate overrides a worker's default commission for one service
// category. Payroll falls back to DefaultCommissionPct when no override exists.
type CommissionRate struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	WorkerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_worker_category" json:"worker_id"`
	Category  string    `gorm:"size:100;not null;uniqueIndex:idx_worker_category" json:"category"`
	RatePct   int       `gorm:"not null" json:"rate_pct"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Worker Worker `gorm:"foreignKey:WorkerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new commission rate
func (c *CommissionRate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CommissionRate model
func (CommissionRate) TableName() string {
	return "commission_rates"
}
