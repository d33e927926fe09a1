package handler

import (
	"strconv"
	"time"

	"github.com/capelli/salonpos-api/internal/application/service"
	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/internal/domain/repository"
	"github.com/capelli/salonpos-api/internal/presentation/http/dto/request"
	"github.com/capelli/salonpos-api/internal/presentation/http/dto/response"
	"github.com/capelli/salonpos-api/pkg/money"
	"github.com/capelli/salonpos-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaleHandler drives the sale session lifecycle: items, discount, tip,
// payments and the final commit.
type SaleHandler struct {
	saleService *service.SaleService
	saleRepo    repository.SaleRepository
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService, saleRepo repository.SaleRepository) *SaleHandler {
	return &SaleHandler{saleService: saleService, saleRepo: saleRepo}
}

// StartSession opens a new sale session for the operator
func (h *SaleHandler) StartSession(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	sess := h.saleService.StartSession(*userID)
	response.Created(c, "Sale session started", gin.H{"session_id": sess.ID})
}

// GetSummary returns totals, payments, ledger state and validation
func (h *SaleHandler) GetSummary(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	summary, err := h.saleService.Summarize(sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Session summary", summary)
}

// CancelSession discards an open session
func (h *SaleHandler) CancelSession(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	if err := h.saleService.CancelSession(sessionID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddItem adds a rendered service to the session
func (h *SaleHandler) AddItem(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}
	workerID, err := uuid.Parse(req.WorkerID)
	if err != nil {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	sess, err := h.saleService.AddItem(c.Request.Context(), sessionID, service.AddItemInput{
		ServiceID:     serviceID,
		WorkerID:      workerID,
		HairLength:    parseHairLength(req.HairLength),
		OverrideCents: usdToCents(req.PriceUSD),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added", gin.H{"items": sess.Items})
}

// RemoveItem drops a line item by its position
func (h *SaleHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid item index")
		return
	}

	sess, err := h.saleService.RemoveItem(sessionID, index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed", gin.H{"items": sess.Items})
}

// UpdateItemPrice overrides a line item's price
func (h *SaleHandler) UpdateItemPrice(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid item index")
		return
	}

	var req request.UpdateItemPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess, err := h.saleService.UpdateItemPrice(sessionID, index, usdToCents(req.PriceUSD))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Price updated", gin.H{"items": sess.Items})
}

// SetDiscount selects the discount policy
func (h *SaleHandler) SetDiscount(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.SetDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	warnings, err := h.saleService.SetDiscount(sessionID, parseDiscountPolicy(req.Policy), usdToCents(req.AmountUSD))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Discount applied", gin.H{"warnings": warnings})
}

// SetTip records the tip and its recipient
func (h *SaleHandler) SetTip(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.SetTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var workerID *uuid.UUID
	if req.WorkerID != nil {
		id, err := uuid.Parse(*req.WorkerID)
		if err != nil {
			response.BadRequest(c, "Invalid worker ID")
			return
		}
		workerID = &id
	}

	if err := h.saleService.SetTip(sessionID, usdToCents(req.AmountUSD), workerID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Tip recorded", nil)
}

// SetClient attaches a client to the session
func (h *SaleHandler) SetClient(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.SetClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var clientID *uuid.UUID
	if req.ClientID != nil {
		id, err := uuid.Parse(*req.ClientID)
		if err != nil {
			response.BadRequest(c, "Invalid client ID")
			return
		}
		clientID = &id
	}

	if err := h.saleService.SetClient(c.Request.Context(), sessionID, clientID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Client updated", nil)
}

// SetCurrency switches the display currency for totals
func (h *SaleHandler) SetCurrency(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.SetCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.saleService.SetDisplayCurrency(sessionID, money.Currency(req.Currency)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Display currency updated", nil)
}

// AddPayment tenders a payment against the session
func (h *SaleHandler) AddPayment(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	currency := money.Currency(req.Currency)
	payment, err := h.saleService.AddPayment(
		sessionID,
		parsePaymentMethod(req.Method),
		currency,
		amountToCents(req.Amount, currency),
		parseDestination(req.Destination),
		req.Reference,
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Payment added", payment)
}

// RemovePayment drops a payment row by its position
func (h *SaleHandler) RemovePayment(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid payment index")
		return
	}

	if err := h.saleService.RemovePayment(sessionID, index); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AutoFill suggests the amount that would cover the outstanding balance
func (h *SaleHandler) AutoFill(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	currency := money.Currency(c.DefaultQuery("currency", string(money.USD)))
	suggestion, err := h.saleService.AutoFillRemaining(sessionID, currency)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Suggested amount", gin.H{
		"currency": suggestion.Currency,
		"amount":   suggestion.Float64(),
	})
}

// Commit validates and persists the sale. Validation failures come back
// with 422 and the full error/warning report; the session stays open.
func (h *SaleHandler) Commit(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	sale, validation, err := h.saleService.Commit(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if sale == nil {
		c.JSON(422, response.APIResponse{
			Success: false,
			Message: "La venta no paso la validacion",
			Errors:  validation,
		})
		return
	}

	response.Created(c, "Sale committed", gin.H{
		"sale":       sale,
		"validation": validation,
	})
}

// List returns committed sales with filters
func (h *SaleHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	filter := &repository.SaleFilterParams{
		Pagination: params,
		Search:     c.Query("search"),
	}
	if s := c.Query("status"); s != "" {
		status := parseSaleStatus(s)
		filter.Status = &status
	}
	if d := c.Query("start_date"); d != "" {
		if t, err := time.Parse("2006-01-02", d); err == nil {
			filter.StartDate = &t
		}
	}
	if d := c.Query("end_date"); d != "" {
		if t, err := time.Parse("2006-01-02", d); err == nil {
			filter.EndDate = &t
		}
	}

	sales, total, err := h.saleRepo.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(sales, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Sales", result)
}

// Get returns one committed sale with items and payments
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if sale == nil {
		response.NotFound(c, "Sale not found")
		return
	}
	response.OK(c, "Sale", sale)
}

// Void marks a committed sale as void (admin only)
func (h *SaleHandler) Void(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleRepo.Void(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale voided", nil)
}

func (h *SaleHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}

func parseSaleStatus(s string) enum.SaleStatus {
	switch s {
	case "Receivable":
		return enum.SaleStatusReceivable
	case "Void":
		return enum.SaleStatusVoid
	default:
		return enum.SaleStatusPaid
	}
}
