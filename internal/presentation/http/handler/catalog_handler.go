package handler

import (
	"github.com/capelli/salonpos-api/internal/application/service"
	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/capelli/salonpos-api/internal/presentation/http/dto/request"
	"github.com/capelli/salonpos-api/internal/presentation/http/dto/response"
	"github.com/capelli/salonpos-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler exposes the service, worker and client catalogs
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListServices returns the full service catalog
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Services", services)
}

// CreateService adds a service to the catalog (admin only)
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req request.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), serviceInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Service created", svc)
}

// UpdateService updates a catalog entry (admin only)
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	var req request.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), id, serviceInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Service updated", svc)
}

// DeleteService removes a service from the catalog (admin only)
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListWorkers returns stylists; ?active=true filters to active ones
func (h *CatalogHandler) ListWorkers(c *gin.Context) {
	workers, err := h.catalogService.ListWorkers(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Workers", workers)
}

// CreateWorker adds a stylist (admin only)
func (h *CatalogHandler) CreateWorker(c *gin.Context) {
	var req request.WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	worker, err := h.catalogService.CreateWorker(c.Request.Context(), req.Name, req.Phone, req.DefaultCommissionPct)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Worker created", worker)
}

// SetCommissionRate sets a per-category override for a worker (admin only)
func (h *CatalogHandler) SetCommissionRate(c *gin.Context) {
	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	var req request.CommissionRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.catalogService.SetCommissionRate(c.Request.Context(), workerID, req.Category, req.RatePct); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Commission rate updated", nil)
}

// ListClients returns clients with optional name/phone search
func (h *CatalogHandler) ListClients(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	clients, total, err := h.catalogService.ListClients(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(clients, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Clients", result)
}

// CreateClient adds a client
func (h *CatalogHandler) CreateClient(c *gin.Context) {
	var req request.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	client := &entity.Client{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	}
	if err := h.catalogService.CreateClient(c.Request.Context(), client); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Client created", client)
}

// UpdateClient updates a client's details
func (h *CatalogHandler) UpdateClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	var req request.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	client := &entity.Client{
		ID:    id,
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	}
	if err := h.catalogService.UpdateClient(c.Request.Context(), client); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Client updated", client)
}

func serviceInput(req request.ServiceRequest) service.ServiceInput {
	return service.ServiceInput{
		Name:             req.Name,
		Category:         req.Category,
		PriceCorto:       usdToCents(req.PriceCorto),
		PriceMediano:     usdToCents(req.PriceMediano),
		PriceLargo:       usdToCents(req.PriceLargo),
		PriceExtensiones: usdToCents(req.PriceExtensiones),
	}
}
