package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/balasagoth/mi-supermercado/internal/user"
	"github.com/balasagoth/mi-supermercado/kafka"
	"github.com/balasagoth/mi-supermercado/pkg/database"
	"github.com/balasagoth/mi-supermercado/pkg/logger"
	"github.com/balasagoth/mi-supermercado/pkg/mailer"
	"github.com/balasagoth/mi-supermercado/pkg/tracing"
)

func main() {
	_ = godotenv.Load()

	serviceName := getEnv("OTEL_SERVICE_NAME", "mailer-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Msg("Starting mailer service")

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

	// Database, used only to resolve recipient addresses
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

	users := user.ProvideUserRepository(db)
	sender := mailer.NewLogSender()

	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	consumer, err := kafka.NewConsumer(brokers, "mailer", []string{kafka.TopicOrderPlaced})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypeOrderPlaced, func(ctx context.Context, event kafka.OrderPlacedEvent) error {
		msg := mailer.OrderConfirmation{
			OrderID:    event.OrderID,
			UserID:     event.UserID,
			TotalCents: event.TotalCents,
		}
		account, err := users.FindByID(event.UserID)
		if err != nil {
			logger.Warn(ctx).
				Err(err).
				Uint("user_id", event.UserID).
				Msg("Recipient lookup failed, sending without address")
		} else {
			msg.Recipient = account.Email
		}
		return sender.SendOrderConfirmation(ctx, msg)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down mailer service...")
	cancel()
	logger.Logger.Info().Msg("Mailer service stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
