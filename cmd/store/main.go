package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/balasagoth/mi-supermercado/docs"
	"github.com/balasagoth/mi-supermercado/internal/cart"
	"github.com/balasagoth/mi-supermercado/internal/catalog"
	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
	"github.com/balasagoth/mi-supermercado/internal/checkout"
	checkoutcommand "github.com/balasagoth/mi-supermercado/internal/checkout/usecase/command"
	"github.com/balasagoth/mi-supermercado/internal/design"
	designdomain "github.com/balasagoth/mi-supermercado/internal/design/domain"
	"github.com/balasagoth/mi-supermercado/internal/order"
	orderdomain "github.com/balasagoth/mi-supermercado/internal/order/domain"
	"github.com/balasagoth/mi-supermercado/internal/user"
	userdomain "github.com/balasagoth/mi-supermercado/internal/user/domain"
	"github.com/balasagoth/mi-supermercado/kafka"
	"github.com/balasagoth/mi-supermercado/pkg/database"
	"github.com/balasagoth/mi-supermercado/pkg/logger"
	"github.com/balasagoth/mi-supermercado/pkg/middleware"
	"github.com/balasagoth/mi-supermercado/pkg/ratelimit"
	"github.com/balasagoth/mi-supermercado/pkg/tracing"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	serviceName := getEnv("OTEL_SERVICE_NAME", "store-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting store service")

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

	// Database
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

	if err := db.AutoMigrate(
		&userdomain.User{},
		&catalogdomain.Category{},
		&catalogdomain.Product{},
		&orderdomain.Order{},
		&orderdomain.OrderLine{},
		&designdomain.SiteDesign{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logger.Logger.Info().Msg("Database initialized successfully")

	// Redis holds session carts, confirmation markers and rate-limit windows
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Kafka is optional; without it order events are simply not published
	var publisher checkoutcommand.OrderEventPublisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaPublisher, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unavailable, order events disabled")
		} else {
			publisher = kafkaPublisher
			defer kafkaPublisher.Close()
		}
	}

	checkoutConfig := checkout.Config{
		GatewayBaseURL: getEnv("PAYMENT_GATEWAY_URL", "http://localhost:9500"),
		GatewayAPIKey:  getEnv("PAYMENT_GATEWAY_API_KEY", ""),
		WebhookSecret:  getEnv("PAYMENT_WEBHOOK_SECRET", ""),
		SuccessURL:     getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/checkout/success"),
		CancelURL:      getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/cart"),
	}

	// Initialize handlers with Wire DI
	userHandler, err := user.InitializeHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}
	catalogHandler, err := catalog.InitializeHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}
	cartHandler, err := cart.InitializeHandler(redisClient, db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize cart handler")
	}
	orderHandler, err := order.InitializeHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}
	checkoutHandler, err := checkout.InitializeHandler(db, redisClient, publisher, checkoutConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize checkout handler")
	}
	designHandler, err := design.InitializeHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize design handler")
	}

	// Router
	router := mux.NewRouter()
	router.Use(middleware.Logging)
	router.Use(middleware.Metrics)

	rateLimiter := ratelimit.NewRateLimiter(redisClient, 100, time.Minute)
	router.Use(rateLimiter.Middleware)

	userHandler.RegisterRoutes(router)
	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	checkoutHandler.RegisterRoutes(router)
	designHandler.RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.HandleFunc("/health", healthCheck(sqlDB)).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      c.Handler(middleware.Tracing("http-request", router)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/index.html").
			Msg("HTTP server started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	logger.Logger.Info().Msg("Store service stopped")
}

func healthCheck(db interface{ PingContext(context.Context) error }) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := db.PingContext(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unhealthy"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
