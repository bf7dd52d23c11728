package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mkurbatov/gw-exchange-front/internal/facades"
	"github.com/mkurbatov/gw-exchange-front/internal/handlers"
	"github.com/mkurbatov/gw-exchange-front/internal/jwt"
	"github.com/mkurbatov/gw-exchange-front/internal/logger"
	"github.com/mkurbatov/gw-exchange-front/internal/middlewares"
	"github.com/mkurbatov/gw-exchange-front/internal/repositories"
	"github.com/mkurbatov/gw-exchange-front/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-exchange-front API
// @version 1.0.0
// @description Gateway for the exchange client screens: quote calculator, order workflow and the partner portal
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		redisHost, redisPort, redisDB, redisPassword,
		ratesURL, partnerAuthURL, partnerDashboardURL, orderURL,
		jwtSecret, jwtExp,
		quoteTTL, rateCacheTTL, sessionTTL,
		kafkaAddr, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		redisHost, redisPort, redisDB, redisPassword,
		ratesURL, partnerAuthURL, partnerDashboardURL, orderURL,
		jwtSecret, jwtExp,
		quoteTTL, rateCacheTTL, sessionTTL,
		kafkaAddr, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, Redis, backend, JWT, TTL, and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	ratesURL, partnerAuthURL, partnerDashboardURL, orderURL string,
	jwtSecretKey string, jwtExpSecond int,
	quoteTTLSecond, rateCacheTTLSecond, sessionTTLSecond int,
	kafkaAddr, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// External backend config
	ratesURL = getEnv("RATES_API_URL", "http://localhost:9001/api/rates.php")
	partnerAuthURL = getEnv("PARTNER_AUTH_API_URL", "http://localhost:9001/api/partner_auth.php")
	partnerDashboardURL = getEnv("PARTNER_DASHBOARD_API_URL", "http://localhost:9001/api/partner_dashboard.php")
	orderURL = getEnv("ORDER_API_URL", "http://localhost:9001/api/order.php")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	// TTL config
	if quoteTTLSecond, err = strconv.Atoi(getEnv("QUOTE_TTL_SECOND", "900")); err != nil {
		return
	}
	if rateCacheTTLSecond, err = strconv.Atoi(getEnv("RATE_CACHE_TTL_SECOND", "60")); err != nil {
		return
	}
	if sessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "86400")); err != nil {
		return
	}

	// Kafka config, publishing is disabled when the address is empty
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "order-events")

	return
}

// run initializes the logger, Redis, backend facades, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	ratesURL, partnerAuthURL, partnerDashboardURL, orderURL string,
	jwtSecretKey string, jwtExpSecond int,
	quoteTTLSecond, rateCacheTTLSecond, sessionTTLSecond int,
	kafkaAddr, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for order lifecycle events
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer initialized for %s topic %s", kafkaAddr, kafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	rateCache := repositories.NewRateCacheRepository(rdb, time.Duration(rateCacheTTLSecond)*time.Second)
	staticRates := repositories.NewStaticRateRepository()
	sessions := repositories.NewSessionRepository(rdb, time.Duration(sessionTTLSecond)*time.Second)
	orderStore := repositories.NewOrderStore()

	// Initialize backend facades
	ratesFacade := facades.NewRatesHTTPFacade(ratesURL)
	authFacade := facades.NewPartnerAuthHTTPFacade(partnerAuthURL)
	dashboardFacade := facades.NewPartnerDashboardHTTPFacade(partnerDashboardURL)
	ordersFacade := facades.NewOrdersHTTPFacade(orderURL)

	// Initialize services
	quoteService := services.NewQuoteService(rateCache, ratesFacade, staticRates, time.Duration(quoteTTLSecond)*time.Second)
	orderService := services.NewOrderService(ordersFacade, dashboardFacade, orderStore, kafkaWriter)
	partnerService := services.NewPartnerService(authFacade, dashboardFacade, dashboardFacade, ordersFacade, sessions, tokens)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/quote", handlers.NewQuoteHandler(quoteService))
		r.Get("/rails/{rail}", handlers.NewRailFieldsHandler())

		r.Post("/orders", handlers.NewCreateOrderHandler(quoteService, orderService))
		r.Get("/orders/{number}", handlers.NewGetOrderHandler(orderService))
		r.Post("/orders/{number}/proceed", handlers.NewProceedOrderHandler(orderService))
		r.Post("/orders/{number}/claim-paid", handlers.NewClaimPaidHandler(orderService))
		r.Post("/orders/{number}/confirm", handlers.NewConfirmOrderHandler(orderService))
		r.Post("/orders/{number}/cancel", handlers.NewCancelOrderHandler(orderService))

		r.Post("/partner/register", handlers.NewRegisterPartnerHandler(partnerService))
		r.Post("/partner/login", handlers.NewLoginPartnerHandler(partnerService))
		r.Post("/partner/track", handlers.NewTrackClickHandler(partnerService))

		// Protected routes with session-backed JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens, sessions))
			r.Get("/partner/dashboard", handlers.NewDashboardHandler(partnerService))
			r.Post("/partner/payouts", handlers.NewPayoutHandler(partnerService))
			r.Post("/partner/password", handlers.NewChangePasswordHandler(partnerService))
			r.Post("/partner/logout", handlers.NewLogoutHandler(partnerService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
