// Package app provides application-level coordination and dependency
// injection. It wires configuration, infrastructure, core services and
// HTTP handlers together and manages their lifecycles.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fishinglog/fishing-log-service/internal/adapters/primary/rest"
	"github.com/fishinglog/fishing-log-service/internal/adapters/secondary/weatherapi"
	"github.com/fishinglog/fishing-log-service/internal/config"
	"github.com/fishinglog/fishing-log-service/internal/core/ports"
	"github.com/fishinglog/fishing-log-service/internal/core/services"
	"github.com/fishinglog/fishing-log-service/internal/infrastructure/auth"
	"github.com/fishinglog/fishing-log-service/internal/infrastructure/circuitbreaker"
	"github.com/fishinglog/fishing-log-service/internal/infrastructure/database"
	"github.com/fishinglog/fishing-log-service/internal/infrastructure/ratelimit"
	"github.com/fishinglog/fishing-log-service/internal/middleware"
	"github.com/fishinglog/fishing-log-service/internal/observability"
	"github.com/fishinglog/fishing-log-service/internal/version"
)

// App manages the application lifecycle and dependencies.
type App struct {
	cfg       *config.Config
	server    *http.Server
	logger    *zap.Logger
	telemetry *observability.Telemetry
	db        *database.PostgresDB
}

// New creates a new application instance.
func New() (*App, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &App{
		cfg:    config.Load(),
		logger: logger,
	}, nil
}

// Start initializes all components and starts the HTTP server.
func (a *App) Start(ctx context.Context) error {
	if err := a.initTelemetry(ctx); err != nil {
		a.logger.Warn("failed to initialize telemetry, continuing without it", zap.Error(err))
	}

	if err := a.initDatabase(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(a.db.DB(), a.logger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	userRepo := database.NewUserRepository(a.db, a.logger)
	tripRepo := database.NewTripRepository(a.db, a.logger)
	catchRepo := database.NewCatchRepository(a.db, a.logger)

	tokenService := auth.NewJWTService(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
	authService := services.NewAuthService(userRepo, tokenService, a.logger)
	ownershipService := services.NewOwnershipService(userRepo, tokenService, a.logger)
	userService := services.NewUserService(userRepo, a.logger)
	tripService := services.NewTripService(tripRepo, a.logger)
	catchService := services.NewCatchService(catchRepo, a.logger)
	weatherService := services.NewWeatherService(a.initWeatherProvider(), a.logger)
	feedbackService := services.NewFeedbackService(a.cfg.Feedback.FilePath, a.logger)

	authHandler := rest.NewAuthHandler(authService, a.logger)
	userHandler := rest.NewUserHandler(userService, a.logger)
	tripHandler := rest.NewTripHandler(tripService, ownershipService, a.logger)
	catchHandler := rest.NewCatchHandler(catchService, ownershipService, a.logger)
	weatherHandler := rest.NewWeatherHandler(weatherService, ownershipService, a.logger)
	feedbackHandler := rest.NewFeedbackHandler(feedbackService, ownershipService, a.logger)

	rateLimitMiddleware := middleware.NewRateLimitMiddleware(
		a.initRateLimiter(ctx),
		a.cfg.RateLimit.RPS,
		a.cfg.RateLimit.Window,
		a.logger,
	)
	authMiddleware := middleware.NewAuthMiddleware(tokenService, a.logger)
	corsMiddleware := middleware.NewCORSMiddleware(a.cfg.CORS.AllowedOrigin)

	router := a.setupRouter(
		authHandler,
		userHandler,
		tripHandler,
		catchHandler,
		weatherHandler,
		feedbackHandler,
		rateLimitMiddleware,
		authMiddleware,
		corsMiddleware,
	)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	go func() {
		a.logger.Info("starting fishing log service",
			zap.String("port", a.cfg.Server.Port),
			zap.String("environment", a.cfg.Server.Environment))

		if err := a.server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				a.logger.Fatal("failed to start server", zap.Error(err))
			}
		}
	}()

	return nil
}

// Stop gracefully shuts down all application components.
func (a *App) Stop() {
	a.logger.Info("shutting down application...")

	if a.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("failed to shutdown server gracefully", zap.Error(err))
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("failed to close database connection", zap.Error(err))
		}
	}

	if a.telemetry != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := a.telemetry.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("failed to shutdown telemetry", zap.Error(err))
		}
	}

	_ = a.logger.Sync()
}

// WaitForShutdown blocks until the server receives a shutdown signal.
func (a *App) WaitForShutdown() {
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	a.logger.Info("shutdown signal received")
}

func (a *App) initTelemetry(ctx context.Context) error {
	telemetryConfig := observability.Config{
		ServiceName:    a.cfg.Observability.ServiceName,
		ServiceVersion: a.cfg.Observability.ServiceVersion,
		Environment:    a.cfg.Observability.Environment,
		OTLPEndpoint:   a.cfg.Observability.OTLPEndpoint,
		SampleRate:     a.cfg.Observability.SampleRate,
	}

	var err error
	a.telemetry, err = observability.InitTelemetry(ctx, telemetryConfig, a.logger)

	return err
}

func (a *App) initDatabase() error {
	dbConfig := database.Config{
		Host:                  a.cfg.Database.Host,
		Port:                  a.cfg.Database.Port,
		User:                  a.cfg.Database.User,
		Password:              a.cfg.Database.Password,
		Database:              a.cfg.Database.Database,
		SSLMode:               a.cfg.Database.SSLMode,
		MaxConnections:        a.cfg.Database.MaxConnections,
		MaxIdleConnections:    a.cfg.Database.MaxIdleConnections,
		ConnectionMaxLifetime: a.cfg.Database.ConnectionMaxLifetime,
	}

	var err error
	a.db, err = database.NewPostgresDB(dbConfig, a.logger)

	return err
}

// initRateLimiter returns the Redis-backed limiter when Redis is reachable,
// otherwise the in-memory fallback.
func (a *App) initRateLimiter(ctx context.Context) ports.RateLimitService {
	if !a.cfg.Redis.Enabled {
		a.logger.Info("Redis disabled, using in-memory rate limiter")
		return middleware.NewMemoryRateLimiter(a.logger)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         a.cfg.Redis.Addr,
		Password:     a.cfg.Redis.Password,
		DB:           a.cfg.Redis.DB,
		PoolSize:     a.cfg.Redis.PoolSize,
		MinIdleConns: a.cfg.Redis.MinIdleConns,
		MaxRetries:   a.cfg.Redis.MaxRetries,
		DialTimeout:  a.cfg.Redis.DialTimeout,
		ReadTimeout:  a.cfg.Redis.ReadTimeout,
		WriteTimeout: a.cfg.Redis.WriteTimeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		a.logger.Warn("Redis connection failed, falling back to in-memory rate limiter", zap.Error(err))
		return middleware.NewMemoryRateLimiter(a.logger)
	}

	a.logger.Info("Redis connected successfully")

	return ratelimit.NewRedisRateLimiter(redisClient, a.logger)
}

// initWeatherProvider creates the weatherapi client wrapped in a circuit
// breaker.
func (a *App) initWeatherProvider() ports.WeatherProvider {
	httpClient := &http.Client{
		Timeout: a.cfg.Weather.HTTPTimeout,
	}

	client := weatherapi.NewClient(a.cfg.Weather.BaseURL, a.cfg.Weather.APIKey, httpClient, a.logger)

	return &breakerWeatherProvider{
		client: client,
		cb: circuitbreaker.New(circuitbreaker.Config{
			Name:        "weatherapi",
			MaxRequests: 3,
			Interval:    10 * time.Second,
			Timeout:     30 * time.Second,
		}, a.logger),
	}
}

func (a *App) setupRouter(
	authHandler *rest.AuthHandler,
	userHandler *rest.UserHandler,
	tripHandler *rest.TripHandler,
	catchHandler *rest.CatchHandler,
	weatherHandler *rest.WeatherHandler,
	feedbackHandler *rest.FeedbackHandler,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) http.Handler {
	router := mux.NewRouter()

	router.Use(corsMiddleware.Handler)

	if a.telemetry != nil {
		obsMiddleware := middleware.NewObservabilityMiddleware(a.telemetry, a.logger)
		router.Use(obsMiddleware.TracingMiddleware)
		router.Use(obsMiddleware.MetricsMiddleware)
		router.Use(obsMiddleware.LoggingMiddleware)
	}

	// Operational endpoints
	router.HandleFunc("/health", a.healthHandler).Methods("GET")
	router.HandleFunc("/health/live", a.livenessHandler).Methods("GET")
	router.HandleFunc("/health/ready", a.readinessHandler).Methods("GET")
	router.HandleFunc("/version", a.versionHandler).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := router.NewRoute().Subrouter()
	api.Use(rateLimitMiddleware.Handler)

	// Authentication
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/authenticate", authHandler.Authenticate).Methods("POST")

	// Trips
	api.HandleFunc("/trips", tripHandler.Create).Methods("POST")
	api.HandleFunc("/trips", tripHandler.List).Methods("GET")
	api.HandleFunc("/trips/sixMonths", tripHandler.ListLastSixMonths).Methods("GET")
	api.HandleFunc("/trips/{tripId:[0-9]+}", tripHandler.Update).Methods("PUT")
	api.HandleFunc("/trips/{tripId:[0-9]+}", tripHandler.PartialUpdate).Methods("PATCH")
	api.HandleFunc("/trips/{tripId:[0-9]+}", tripHandler.Delete).Methods("DELETE")

	// Catches
	api.HandleFunc("/catches", catchHandler.Create).Methods("POST")
	api.HandleFunc("/catches", catchHandler.List).Methods("GET")
	api.HandleFunc("/catches/{catchId:[0-9]+}", catchHandler.Update).Methods("PUT")
	api.HandleFunc("/catches/{catchId:[0-9]+}", catchHandler.PartialUpdate).Methods("PATCH")
	api.HandleFunc("/catches/{catchId:[0-9]+}", catchHandler.Delete).Methods("DELETE")

	// Weather and feedback
	api.HandleFunc("/weather", weatherHandler.Get).Methods("GET")
	api.HandleFunc("/feedback", feedbackHandler.Collect).Methods("POST")

	// User administration, token required
	users := api.PathPrefix("/users").Subrouter()
	users.Use(authMiddleware.Handler)
	users.HandleFunc("", userHandler.List).Methods("GET")
	users.HandleFunc("/{id:[0-9]+}", userHandler.Get).Methods("GET")
	users.HandleFunc("/{id:[0-9]+}", userHandler.Update).Methods("PUT")
	users.HandleFunc("/{id:[0-9]+}", userHandler.PartialUpdate).Methods("PATCH")
	users.HandleFunc("/{id:[0-9]+}", userHandler.Delete).Methods("DELETE")

	return router
}

func (a *App) healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy","service":"fishing-log-service"}`))
}

func (a *App) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"alive"}`))
}

func (a *App) readinessHandler(w http.ResponseWriter, _ *http.Request) {
	ready := true

	if a.db == nil || a.db.Ping() != nil {
		ready = false
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, `{"ready":%t}`, ready)
}

func (a *App) versionHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(version.Get()); err != nil {
		a.logger.Error("failed to encode version info", zap.Error(err))
	}
}
