package handler

import (
	"time"

	"github.com/capelli/salonpos-api/internal/application/service"
	"github.com/capelli/salonpos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler exposes reconciliation and payroll reports
type ReportHandler struct {
	reportService     *service.ReportService
	commissionService *service.CommissionService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, commissionService *service.CommissionService) *ReportHandler {
	return &ReportHandler{reportService: reportService, commissionService: commissionService}
}

// Daily returns the end-of-day reconciliation report. ?date=2026-08-30
// defaults to today.
func (h *ReportHandler) Daily(c *gin.Context) {
	day := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	report, err := h.reportService.Daily(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Daily report", report)
}

// Payroll returns per-worker commissions for a period.
// ?from and ?to default to the current week.
func (h *ReportHandler) Payroll(c *gin.Context) {
	now := time.Now()
	from := now.AddDate(0, 0, -int(now.Weekday()))
	to := now

	if d := c.Query("from"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			response.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if d := c.Query("to"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			response.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		// ?to names a whole day; the period runs through its end.
		to = parsed.AddDate(0, 0, 1)
	}

	payrolls, err := h.commissionService.Payroll(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payroll", payrolls)
}
