package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"github.com/balasagoth/mi-supermercado/internal/admin/handler"
	"github.com/balasagoth/mi-supermercado/internal/catalog"
	"github.com/balasagoth/mi-supermercado/internal/design"
	"github.com/balasagoth/mi-supermercado/internal/order"
	"github.com/balasagoth/mi-supermercado/pkg/database"
	"github.com/balasagoth/mi-supermercado/pkg/logger"
	"github.com/balasagoth/mi-supermercado/pkg/tracing"
)

func main() {
	_ = godotenv.Load()

	serviceName := getEnv("OTEL_SERVICE_NAME", "admin-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Msg("Starting admin back-office")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Database (schema is owned by the store service, no migrations here)
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "storedb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	if err := database.WaitForDatabase(dbConfig, 10, 2*time.Second); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Database not reachable")
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	adminHandler := handler.NewAdminHandler(
		catalog.ProvideProductRepository(db),
		catalog.ProvideCategoryRepository(db),
		order.ProvideOrderRepository(db),
		design.ProvideDesignRepository(db),
	)

	app := fiber.New(fiber.Config{
		AppName:      "Admin Back-Office",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     getEnv("CORS_ALLOWED_ORIGINS", "*"),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-Id",
		AllowCredentials: false,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unhealthy"})
		}
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	adminHandler.RegisterRoutes(app)

	httpPort := getEnv("HTTP_PORT", "8081")
	go func() {
		logger.Logger.Info().Str("port", httpPort).Msg("Admin server started")
		if err := app.Listen(":" + httpPort); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start admin server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down admin server...")
	if err := app.Shutdown(); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	logger.Logger.Info().Msg("Admin back-office stopped")
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":     err.Error(),
		"path":      c.Path(),
		"requestId": c.Get("X-Request-Id"),
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
