package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/capelli/salonpos-api/internal/application/service"
	"github.com/capelli/salonpos-api/internal/config"
	"github.com/capelli/salonpos-api/internal/infrastructure/database"
	"github.com/capelli/salonpos-api/internal/infrastructure/exchange"
	"github.com/capelli/salonpos-api/internal/infrastructure/repository"
	"github.com/capelli/salonpos-api/internal/presentation/http/handler"
	"github.com/capelli/salonpos-api/internal/presentation/http/routes"
	"github.com/capelli/salonpos-api/pkg/printer"
	"github.com/capelli/salonpos-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// receiptWidth is the character width of the 58mm thermal printer paper.
const receiptWidth = 32

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	clientRepo := repository.NewClientRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	receivableRepo := repository.NewReceivableRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize the exchange rate provider. It starts on the configured
	// default rate and refreshes in the background; sale entry never waits
	// on the network.
	rateProvider := exchange.NewProvider(
		cfg.Salon.RateFetchURL,
		cfg.Salon.RateFetchTimeout,
		cfg.Salon.DefaultExchangeRate,
	)
	rateProvider.Refresh(context.Background())
	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			rateProvider.Refresh(context.Background())
		}
	}()

	// Initialize services
	pricingService := service.NewPricingService(serviceRepo)
	discountEngine := service.NewDiscountEngine(cfg.Salon.PromoDiscountPct)
	saleValidator := service.NewSaleValidator(
		cfg.Salon.TipWarningPct,
		cfg.Salon.PriceSanityMinUSD,
		cfg.Salon.PriceSanityMaxUSD,
	)
	saleService := service.NewSaleService(
		saleRepo,
		workerRepo,
		clientRepo,
		pricingService,
		discountEngine,
		saleValidator,
		rateProvider,
		cfg.Salon.ClampNegativeTotal,
	)
	catalogService := service.NewCatalogService(serviceRepo, workerRepo, clientRepo, pricingService)
	receivableService := service.NewReceivableService(receivableRepo, saleRepo)
	commissionService := service.NewCommissionService(saleRepo, workerRepo)
	reportService := service.NewReportService(saleRepo)
	authService := service.NewAuthService(userRepo, jwtManager)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	receiptService := service.NewReceiptService(saleRepo, userRepo, thermalPrinter, cfg.Salon, receiptWidth)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Sale:       handler.NewSaleHandler(saleService, saleRepo),
		Catalog:    handler.NewCatalogHandler(catalogService),
		Report:     handler.NewReportHandler(reportService, commissionService),
		Receivable: handler.NewReceivableHandler(receivableService),
		Rate:       handler.NewRateHandler(rateProvider),
		Receipt:    handler.NewReceiptHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
