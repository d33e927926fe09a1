package handler

import (
	"github.com/capelli/salonpos-api/internal/infrastructure/exchange"
	"github.com/capelli/salonpos-api/internal/presentation/http/dto/request"
	"github.com/capelli/salonpos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RateHandler exposes the Bs-per-USD exchange rate
type RateHandler struct {
	provider *exchange.Provider
}

// NewRateHandler creates a new rate handler
func NewRateHandler(provider *exchange.Provider) *RateHandler {
	return &RateHandler{provider: provider}
}

// Current returns the rate currently applied to new payments
func (h *RateHandler) Current(c *gin.Context) {
	response.OK(c, "Exchange rate", gin.H{
		"rate":       h.provider.CurrentRate(),
		"fetched_at": h.provider.FetchedAt(),
	})
}

// Refresh fetches the rate from the configured source. A failed fetch
// keeps the last known good rate, so this always returns a usable value.
func (h *RateHandler) Refresh(c *gin.Context) {
	h.provider.Refresh(c.Request.Context())
	response.OK(c, "Exchange rate refreshed", gin.H{
		"rate":       h.provider.CurrentRate(),
		"fetched_at": h.provider.FetchedAt(),
	})
}

// Override manually pins the rate (admin only)
func (h *RateHandler) Override(c *gin.Context) {
	var req request.OverrideRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.provider.Override(decimal.NewFromFloat(req.Rate)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Exchange rate overridden", gin.H{"rate": h.provider.CurrentRate()})
}
