package handler

import (
	"github.com/capelli/salonpos-api/internal/application/service"
	"github.com/capelli/salonpos-api/internal/presentation/http/dto/response"
	"github.com/capelli/salonpos-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReceivableHandler exposes open client balances
type ReceivableHandler struct {
	receivableService *service.ReceivableService
}

// NewReceivableHandler creates a new receivable handler
func NewReceivableHandler(receivableService *service.ReceivableService) *ReceivableHandler {
	return &ReceivableHandler{receivableService: receivableService}
}

// ListOpen returns receivables that have not been collected
func (h *ReceivableHandler) ListOpen(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	receivables, total, err := h.receivableService.ListOpen(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(receivables, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Open receivables", result)
}

// Collect settles an open receivable
func (h *ReceivableHandler) Collect(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receivable ID")
		return
	}

	receivable, err := h.receivableService.Collect(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receivable collected", receivable)
}
