package request

// ServiceRequest creates or updates a catalog service.
// The four prices are the USD price per hair-length tier.
type ServiceRequest struct {
	Name             string  `json:"name" binding:"required,min=2,max=255"`
	Category         string  `json:"category" binding:"required,min=2,max=100"`
	PriceCorto       float64 `json:"price_corto" binding:"required,gt=0"`
	PriceMediano     float64 `json:"price_mediano" binding:"required,gt=0"`
	PriceLargo       float64 `json:"price_largo" binding:"required,gt=0"`
	PriceExtensiones float64 `json:"price_extensiones" binding:"required,gt=0"`
}

// WorkerRequest creates a stylist
type WorkerRequest struct {
	Name                 string  `json:"name" binding:"required,min=2,max=255"`
	Phone                *string `json:"phone" binding:"omitempty,max=50"`
	DefaultCommissionPct int     `json:"default_commission_pct" binding:"gte=0,lte=100"`
}

// CommissionRateRequest sets a per-category commission override
type CommissionRateRequest struct {
	Category string `json:"category" binding:"required,min=2,max=100"`
	RatePct  int    `json:"rate_pct" binding:"gte=0,lte=100"`
}

// ClientRequest creates or updates a client
type ClientRequest struct {
	Name  string  `json:"name" binding:"required,min=2,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
	Email *string `json:"email" binding:"omitempty,email"`
	Notes *string `json:"notes"`
}

// OverrideRateRequest manually pins the exchange rate (Bs per USD)
type OverrideRateRequest struct {
	Rate float64 `json:"rate" binding:"required,gt=0"`
}
