package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"storefront-service/internal/clients"
	"storefront-service/internal/config"
	"storefront-service/internal/handlers"
	"storefront-service/internal/middleware"
	"storefront-service/internal/repository"
	"storefront-service/internal/services"

	gosharedmw "github.com/Tesseract-Nexus/go-shared/middleware"
	"github.com/Tesseract-Nexus/go-shared/secrets"
	"github.com/Tesseract-Nexus/go-shared/tracing"
)

// @title Storefront Catalog API
// @version 1.0.0
// @description Public product catalog, featured products and active offer for the storefront

// @contact.name Storefront API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8087
// @BasePath /api/v1

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()
	if cfg.IsProduction() {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Initialize database
	db, err := config.InitDB(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}

	// Initialize Redis client
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.WithError(err).Warn("Failed to parse Redis URL (continuing with localhost)")
		redisOpts = &redis.Options{
			Addr: "localhost:6379",
		}
	}
	redisOpts.Password = secrets.GetRedisPassword()
	redisClient := redis.NewClient(redisOpts)

	// Caching is disabled when Redis does not answer
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Warn("Failed to connect to Redis (caching will be disabled)")
		redisClient.Close()
		redisClient = nil
	} else {
		logger.Info("✓ Redis connected successfully")
	}
	cancel()

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(db, redisClient)
	offerRepo := repository.NewOfferRepository(db)

	// Initialize services
	notificationClient := clients.NewNotificationClient(cfg.NotificationServiceURL, logger.WithField("component", "notification_client"))
	catalogService := services.NewCatalogService(catalogRepo).WithFeaturedLimit(cfg.FeaturedLimit)
	offerService := services.NewOfferService(offerRepo, notificationClient, cfg.CurrencyLabel, logger.WithField("component", "offer_service"))

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService, cfg.ExportMaxRows, logger.WithField("component", "catalog_handler"))
	offerHandler := handlers.NewOfferHandler(offerService, logger.WithField("component", "offer_handler"))

	// Initialize OpenTelemetry tracing
	var tracerProvider *tracing.TracerProvider
	if cfg.IsProduction() {
		tracerProvider, err = tracing.InitTracer(tracing.ProductionConfig("storefront-service"))
	} else {
		tracerProvider, err = tracing.InitTracer(tracing.DefaultConfig("storefront-service"))
	}
	if err != nil {
		logger.WithError(err).Warn("Failed to initialize tracing (continuing without tracing)")
	} else {
		logger.Info("✓ OpenTelemetry tracing initialized")
	}

	// Initialize Prometheus metrics
	metrics := gosharedmw.InitGlobalMetrics("tesseract", "storefront_service")

	// Initialize Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	// Add observability middleware (metrics + tracing)
	router.Use(metrics.Middleware())
	router.Use(tracing.GinMiddleware("storefront-service"))
	router.Use(gosharedmw.CompressionMiddleware())

	router.Use(middleware.CORS(cfg.AllowedOrigins...))

	// Health check endpoints
	router.GET("/health", handlers.HealthCheck)
	router.GET("/ready", handlers.ReadinessCheck(db))
	router.GET("/metrics", gosharedmw.Handler())

	// Public storefront endpoints
	claimLimiter := middleware.NewIPRateLimiter(cfg.ClaimRatePerMinute, cfg.ClaimBurst)
	handlers.RegisterStorefrontRoutes(router.Group("/api/v1/storefront"), catalogHandler, offerHandler,
		middleware.RateLimit(claimLimiter))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("Storefront service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down storefront-service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	if tracerProvider != nil {
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Error shutting down tracer provider")
		} else {
			logger.Info("✓ Tracer provider shut down")
		}
	}

	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("Storefront service stopped")
}
