package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Tesseract-Nexus/go-shared/secrets"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"storefront-service/internal/models"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisURL string

	// Server
	Port        string
	Environment string

	// Services
	NotificationServiceURL string

	// Catalog
	FeaturedLimit  int
	ExportMaxRows  int
	CurrencyLabel  string
	AutoMigrate    bool
	AllowedOrigins []string

	// Offer claims
	ClaimRatePerMinute int
	ClaimBurst         int
}

func Load() *Config {
	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	featuredLimit, _ := strconv.Atoi(getEnv("FEATURED_LIMIT", "9"))
	exportMaxRows, _ := strconv.Atoi(getEnv("EXPORT_MAX_ROWS", "5000"))
	autoMigrate, _ := strconv.ParseBool(getEnv("AUTO_MIGRATE", "true"))
	claimRate, _ := strconv.Atoi(getEnv("CLAIM_RATE_PER_MINUTE", "5"))
	claimBurst, _ := strconv.Atoi(getEnv("CLAIM_BURST", "3"))

	return &Config{
		// Database - password comes from GCP Secret Manager when enabled
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     dbPort,
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: secrets.GetDBPassword(),
		DBName:     getEnv("DB_NAME", "storefront_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// Server
		Port:        getEnv("PORT", "8087"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Services
		NotificationServiceURL: getEnv("NOTIFICATION_SERVICE_URL", "http://localhost:8090"),

		// Catalog
		FeaturedLimit:  featuredLimit,
		ExportMaxRows:  exportMaxRows,
		CurrencyLabel:  getEnv("CURRENCY_LABEL", "EGP"),
		AutoMigrate:    autoMigrate,
		AllowedOrigins: splitEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		// Offer claims
		ClaimRatePerMinute: claimRate,
		ClaimBurst:         claimBurst,
	}
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DSN returns the postgres connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func InitDB(cfg *Config, log *logrus.Logger) (*gorm.DB, error) {
	var logLevel logger.LogLevel
	if cfg.IsProduction() {
		logLevel = logger.Error
	} else {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Catalog tables are owned by the admin back-office
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.AutoMigrate {
		log.Info("Running auto-migrations...")
		if err := Migrate(db); err != nil {
			errStr := err.Error()
			if strings.Contains(errStr, "does not exist") && strings.Contains(errStr, "constraint") {
				log.WithError(err).Warn("Migration constraint warning (safe to ignore)")
			} else {
				return nil, fmt.Errorf("failed to run auto-migrations: %w", err)
			}
		}
		log.Info("Auto-migrations completed successfully")
	}

	return db, nil
}

// Migrate creates or updates every table the storefront reads
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.SubCategory{},
		&models.ProductList{},
		&models.Product{},
		&models.ProductVariant{},
		&models.ProductImage{},
		&models.FeaturedConfig{},
		&models.OrderItem{},
		&models.Offer{},
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitEnv(key, defaultValue string) []string {
	var values []string
	for _, v := range strings.Split(getEnv(key, defaultValue), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
