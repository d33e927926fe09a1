package database

import (
	"fmt"
	"log"

	"github.com/capelli/salonpos-api/internal/config"
	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// A single front-desk terminal plus reports needs a small pool
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Operator accounts
		&entity.User{},

		// Catalog entities
		&entity.SalonService{},
		&entity.Worker{},
		&entity.CommissionRate{},
		&entity.Client{},

		// Sale entities
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.SalePayment{},
		&entity.Receivable{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the admin account and a starter service catalog.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")

	if adminUsername != "" && adminPassword != "" {
		var existing entity.User
		if err := db.Where("username = ?", adminUsername).First(&existing).Error; err != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				admin := entity.User{
					FirstName: "Administrador",
					LastName:  "Principal",
					Username:  adminUsername,
					Password:  string(hashed),
					Role:      "admin",
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminUsername)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminUsername)
		}
	}

	var serviceCount int64
	if err := db.Model(&entity.SalonService{}).Count(&serviceCount).Error; err == nil && serviceCount == 0 {
		// Prices are USD cents per hair-length tier.
		services := []entity.SalonService{
			{Name: "Corte de dama", Category: "corte", PriceCorto: 1000, PriceMediano: 1200, PriceLargo: 1500, PriceExtensiones: 2000, Active: true},
			{Name: "Secado", Category: "peinado", PriceCorto: 800, PriceMediano: 1000, PriceLargo: 1200, PriceExtensiones: 1500, Active: true},
			{Name: "Tinte completo", Category: "color", PriceCorto: 3000, PriceMediano: 4000, PriceLargo: 5000, PriceExtensiones: 6500, Active: true},
			{Name: "Keratina", Category: "tratamiento", PriceCorto: 4000, PriceMediano: 5500, PriceLargo: 7000, PriceExtensiones: 9000, Active: true},
			{Name: "Manicure", Category: "manos", PriceCorto: 800, PriceMediano: 800, PriceLargo: 800, PriceExtensiones: 800, Active: true},
		}
		for i := range services {
			if err := db.Create(&services[i]).Error; err != nil {
				log.Printf("Warning: failed to seed service %s: %v", services[i].Name, err)
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
