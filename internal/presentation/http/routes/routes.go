package routes

import (
	"time"

	"github.com/capelli/salonpos-api/internal/config"
	domainRepo "github.com/capelli/salonpos-api/internal/domain/repository"
	"github.com/capelli/salonpos-api/internal/presentation/http/handler"
	"github.com/capelli/salonpos-api/internal/presentation/http/middleware"
	"github.com/capelli/salonpos-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Sale       *handler.SaleHandler
	Catalog    *handler.CatalogHandler
	Report     *handler.ReportHandler
	Receivable *handler.ReceivableHandler
	Rate       *handler.RateHandler
	Receipt    *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewOperatorRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Operator management (admin only)
	protected.POST("/auth/register", middleware.RequireAdmin(), h.Auth.Register)

	registerSaleRoutes(protected, h, deps)
	registerCatalogRoutes(protected, h)
	registerReportRoutes(protected, h)
	registerReceivableRoutes(protected, h)
	registerRateRoutes(protected, h)
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sessions := protected.Group("/sessions")
	{
		sessions.POST("", h.Sale.StartSession)
		sessions.GET("/:id", h.Sale.GetSummary)
		sessions.DELETE("/:id", h.Sale.CancelSession)

		sessions.POST("/:id/items", h.Sale.AddItem)
		sessions.DELETE("/:id/items/:index", h.Sale.RemoveItem)
		sessions.PUT("/:id/items/:index/price", h.Sale.UpdateItemPrice)

		sessions.PUT("/:id/discount", h.Sale.SetDiscount)
		sessions.PUT("/:id/tip", h.Sale.SetTip)
		sessions.PUT("/:id/client", h.Sale.SetClient)
		sessions.PUT("/:id/currency", h.Sale.SetCurrency)

		sessions.POST("/:id/payments", h.Sale.AddPayment)
		sessions.DELETE("/:id/payments/:index", h.Sale.RemovePayment)
		sessions.GET("/:id/autofill", h.Sale.AutoFill)

		// Commit is replay-safe: a retried Idempotency-Key returns the
		// stored response instead of writing a second sale.
		sessions.POST("/:id/commit",
			middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
			h.Sale.Commit)
	}

	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.GET("/:id", h.Sale.Get)
		sales.POST("/:id/void", middleware.RequireAdmin(), h.Sale.Void)
		sales.GET("/:id/receipt", h.Receipt.Get)
		sales.POST("/:id/receipt/print", h.Receipt.Print)
	}
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	services := protected.Group("/services")
	{
		services.GET("", h.Catalog.ListServices)
		services.POST("", middleware.RequireAdmin(), h.Catalog.CreateService)
		services.PUT("/:id", middleware.RequireAdmin(), h.Catalog.UpdateService)
		services.DELETE("/:id", middleware.RequireAdmin(), h.Catalog.DeleteService)
	}

	workers := protected.Group("/workers")
	{
		workers.GET("", h.Catalog.ListWorkers)
		workers.POST("", middleware.RequireAdmin(), h.Catalog.CreateWorker)
		workers.PUT("/:id/commission", middleware.RequireAdmin(), h.Catalog.SetCommissionRate)
	}

	clients := protected.Group("/clients")
	{
		clients.GET("", h.Catalog.ListClients)
		clients.POST("", h.Catalog.CreateClient)
		clients.PUT("/:id", h.Catalog.UpdateClient)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/daily", h.Report.Daily)
		reports.GET("/payroll", middleware.RequireAdmin(), h.Report.Payroll)
	}
}

func registerReceivableRoutes(protected *gin.RouterGroup, h *Handlers) {
	receivables := protected.Group("/receivables")
	{
		receivables.GET("", h.Receivable.ListOpen)
		receivables.POST("/:id/collect", h.Receivable.Collect)
	}
}

func registerRateRoutes(protected *gin.RouterGroup, h *Handlers) {
	rate := protected.Group("/exchange-rate")
	{
		rate.GET("", h.Rate.Current)
		rate.POST("/refresh", h.Rate.Refresh)
		rate.PUT("", middleware.RequireAdmin(), h.Rate.Override)
	}
}
