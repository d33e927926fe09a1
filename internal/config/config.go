package config

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Salon     SalonConfig
	Printer   PrinterConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// SalonConfig carries the business knobs of the sale engine. It is built
// once from the environment and injected into each component; nothing in
// the engine reads process-wide state.
type SalonConfig struct {
	// DefaultExchangeRate is the Bs-per-USD rate used until a fetch succeeds.
	DefaultExchangeRate decimal.Decimal
	// PromoDiscountPct is the Promotion policy percentage (default 20).
	PromoDiscountPct int
	// TipWarningPct triggers a validation warning when a tip exceeds this
	// share of the subtotal (default 30).
	TipWarningPct int
	// ClampNegativeTotal preserves the legacy clamp-to-zero behavior when a
	// discount exceeds subtotal plus tip. Off means such totals are rejected.
	ClampNegativeTotal bool
	// RateFetchURL is the JSON endpoint for the exchange rate; empty disables fetching.
	RateFetchURL string
	// RateFetchTimeout bounds a single fetch attempt (default 10s).
	RateFetchTimeout time.Duration
	// PriceSanityMinUSD/PriceSanityMaxUSD bound per-item price warnings, in cents.
	PriceSanityMinUSD int64
	PriceSanityMaxUSD int64
	// Receipt header fields.
	SalonName    string
	SalonAddress string
	SalonPhone   string
	SalonTaxID   string
}

type PrinterConfig struct {
	Type    string // "usb", "network" or "none"
	USBPath string
	Address string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "salonpos-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "salonpos")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "America/Caracas")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("DEFAULT_EXCHANGE_RATE", "40.0")
	viper.SetDefault("PROMO_DISCOUNT_PERCENT", 20)
	viper.SetDefault("TIP_WARNING_PERCENT", 30)
	viper.SetDefault("CLAMP_NEGATIVE_TOTAL", true)
	viper.SetDefault("RATE_FETCH_URL", "")
	viper.SetDefault("RATE_FETCH_TIMEOUT_SECONDS", 10)
	viper.SetDefault("PRICE_SANITY_MIN_USD", 1)
	viper.SetDefault("PRICE_SANITY_MAX_USD", 500)
	viper.SetDefault("SALON_NAME", "Capelli Peluqueria")
	viper.SetDefault("SALON_ADDRESS", "")
	viper.SetDefault("SALON_PHONE", "")
	viper.SetDefault("SALON_TAX_ID", "")
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")

	defaultRate, err := decimal.NewFromString(viper.GetString("DEFAULT_EXCHANGE_RATE"))
	if err != nil || !defaultRate.IsPositive() {
		log.Printf("Warning: invalid DEFAULT_EXCHANGE_RATE %q, using 40.0", viper.GetString("DEFAULT_EXCHANGE_RATE"))
		defaultRate = decimal.NewFromInt(40)
	}

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Salon: SalonConfig{
			DefaultExchangeRate: defaultRate,
			PromoDiscountPct:    viper.GetInt("PROMO_DISCOUNT_PERCENT"),
			TipWarningPct:       viper.GetInt("TIP_WARNING_PERCENT"),
			ClampNegativeTotal:  viper.GetBool("CLAMP_NEGATIVE_TOTAL"),
			RateFetchURL:        viper.GetString("RATE_FETCH_URL"),
			RateFetchTimeout:    time.Duration(viper.GetInt("RATE_FETCH_TIMEOUT_SECONDS")) * time.Second,
			PriceSanityMinUSD:   viper.GetInt64("PRICE_SANITY_MIN_USD") * 100,
			PriceSanityMaxUSD:   viper.GetInt64("PRICE_SANITY_MAX_USD") * 100,
			SalonName:           viper.GetString("SALON_NAME"),
			SalonAddress:        viper.GetString("SALON_ADDRESS"),
			SalonPhone:          viper.GetString("SALON_PHONE"),
			SalonTaxID:          viper.GetString("SALON_TAX_ID"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
