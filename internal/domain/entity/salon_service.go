package entity

import (
	"encoding/json"
	"time"

	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalonService is a catalog entry priced per hair length tier.
// All prices are USD cents.
type SalonService struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name             string         `gorm:"size:255;unique;not null" json:"name"`
	Category         string         `gorm:"size:100;default:'General'" json:"category"`
	PriceCorto       int64          `gorm:"default:0" json:"-"`
	PriceMediano     int64          `gorm:"default:0" json:"-"`
	PriceLargo       int64          `gorm:"default:0" json:"-"`
	PriceExtensiones int64          `gorm:"default:0" json:"-"`
	Active           bool           `gorm:"default:true" json:"active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s SalonService) MarshalJSON() ([]byte, error) {
	type Alias SalonService
	return json.Marshal(&struct {
		Alias
		PriceCorto       float64 `json:"price_corto"`
		PriceMediano     float64 `json:"price_mediano"`
		PriceLargo       float64 `json:"price_largo"`
		PriceExtensiones float64 `json:"price_extensiones"`
	}{
		Alias:            Alias(s),
		PriceCorto:       float64(s.PriceCorto) / 100,
		PriceMediano:     float64(s.PriceMediano) / 100,
		PriceLargo:       float64(s.PriceLargo) / 100,
		PriceExtensiones: float64(s.PriceExtensiones) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new service
func (s *SalonService) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalonService model
func (SalonService) TableName() string {
	return "salon_services"
}

// PriceFor returns the USD-cent price for the given hair length tier.
func (s *SalonService) PriceFor(length enum.HairLength) int64 {
	switch length {
	case enum.HairLengthMediano:
		return s.PriceMediano
	case enum.HairLengthLargo:
		return s.PriceLargo
	case enum.HairLengthExtensiones:
		return s.PriceExtensiones
	default:
		return s.PriceCorto
	}
}
