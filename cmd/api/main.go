// Package main is the entry point for the local guide API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/Mukesh-219/indian-local-guide-api/internal/api"
	"github.com/Mukesh-219/indian-local-guide-api/internal/auth"
	"github.com/Mukesh-219/indian-local-guide-api/internal/cache"
	"github.com/Mukesh-219/indian-local-guide-api/internal/config"
	"github.com/Mukesh-219/indian-local-guide-api/internal/content"
	"github.com/Mukesh-219/indian-local-guide-api/internal/db"
	"github.com/Mukesh-219/indian-local-guide-api/internal/food"
	"github.com/Mukesh-219/indian-local-guide-api/internal/health"
	"github.com/Mukesh-219/indian-local-guide-api/internal/middleware"
	"github.com/Mukesh-219/indian-local-guide-api/internal/seed"
	"github.com/Mukesh-219/indian-local-guide-api/internal/slang"
	"github.com/Mukesh-219/indian-local-guide-api/internal/tracing"
	"github.com/Mukesh-219/indian-local-guide-api/internal/user"
)

const serviceName = "indian-local-guide-api"

func main() {
	configPath := flag.String("config", "", "path to optional YAML config file")
	help := flag.Bool("help", false, "display help message")
	flag.Parse()

	if *help {
		fmt.Println("Indian Local Guide API Server")
		fmt.Println()
		fmt.Println("Usage: api [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	cfg, errs := config.Load(*configPath)
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, "config error:", err)
		}
		os.Exit(1)
	}

	logger := middleware.NewLogger(cfg.Env)
	slog.SetDefault(logger)
	logger.Info("configuration loaded", "config", cfg.LogSummary())

	ctx := context.Background()

	// Tracing.
	provider, err := tracing.NewProvider(tracing.Config{
		ServiceName:  serviceName,
		Enabled:      cfg.TracingEnabled,
		Environment:  cfg.Env,
		ExporterType: "otlp-" + cfg.OTLPProtocol,
		OTLPEndpoint: cfg.OTLPEndpoint,
		SamplingRate: 1.0,
		InsecureMode: !cfg.IsProduction(),
	})
	if err != nil {
		logger.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down tracing", "error", err)
		}
	}()

	// Metrics.
	metrics := middleware.NewMetrics()
	registry := prometheus.NewRegistry()
	if err := metrics.Register(registry); err != nil {
		logger.Error("failed to register metrics", "error", err)
		os.Exit(1)
	}
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	// Seed dataset: a previously saved snapshot wins over the built-in data.
	data := seed.BuiltIn()
	if cfg.SeedSnapshotPath != "" {
		snapshot, err := seed.LoadSnapshot(cfg.SeedSnapshotPath)
		switch {
		case err == nil:
			data = snapshot
			logger.Info("loaded seed snapshot", "path", cfg.SeedSnapshotPath)
		case errors.Is(err, seed.ErrNoSnapshot):
			logger.Info("no seed snapshot yet, using built-in dataset", "path", cfg.SeedSnapshotPath)
		default:
			logger.Error("failed to load seed snapshot", "path", cfg.SeedSnapshotPath, "error", err)
			os.Exit(1)
		}
	}

	// Stores. The slang domain runs on Postgres when configured; everything
	// else is in-memory.
	checkers := make(map[string]api.HealthChecker)
	var slangStore slang.Store = slang.NewMemoryStore()
	seedTermsInto := slangStore
	if cfg.DatabaseURL != "" {
		sqlDB, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer sqlDB.Close()
		checkers["database"] = health.NewDBChecker(sqlDB)

		slangStore = slang.NewPostgresStore(sqlDB)
		seedTermsInto = slangStore
		existing, err := slangStore.List(ctx)
		if err != nil {
			logger.Error("failed to inspect term store", "error", err)
			os.Exit(1)
		}
		if len(existing) > 0 {
			// Postgres already carries data; route term seeding into a
			// throwaway store so restarts never duplicate terms.
			seedTermsInto = slang.NewMemoryStore()
		}
	}

	foodStore := food.NewMemoryStore()
	if err := data.Apply(ctx, seedTermsInto, foodStore); err != nil {
		logger.Error("failed to apply seed data", "error", err)
		os.Exit(1)
	}

	library := content.NewCulturalLibrary(data.Regions, data.Festivals, data.Etiquette, data.Tips)

	// Redis-backed translation cache and rate limiting, when configured.
	var translationCache *cache.TranslationCache
	var rateLimitStore middleware.RateLimitStore = middleware.NewInMemoryRateLimitStore()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("invalid redis url", "error", err)
			os.Exit(1)
		}
		client := redis.NewClient(opts)
		defer client.Close()

		translationCache = cache.NewTranslationCache(client, cache.DefaultTTL, logger)
		rateLimitStore = middleware.NewRedisRateLimitStore(client).WithMetrics(metrics)
		checkers["redis"] = health.NewRedisChecker(client)
	}

	// Services.
	jwt := auth.NewJWTServiceWithRotation(cfg.JWTSecret, cfg.JWTSecretPrevious)
	translator := slang.NewTranslator(slangStore)
	recommender := food.NewRecommender(foodStore)
	users := user.NewService(user.NewMemoryStore(), jwt)
	contentService := content.NewService(translator, foodStore, library)

	// Writes get a tighter per-user budget on top of the global IP limit.
	writeLimit := middleware.RateLimiter(rateLimitStore, middleware.RateLimitConfig{
		RequestsPerWindow: 60,
		WindowDuration:    time.Minute,
	}, middleware.UserKeyFunc(), metrics)

	mux := api.NewMux(api.Handlers{
		Translate:  api.NewTranslateHandlers(translator, translationCache, metrics, users),
		Food:       api.NewFoodHandlers(recommender, metrics, users),
		Cultural:   api.NewCulturalHandlers(library.Content),
		Users:      api.NewUserHandlers(users),
		Content:    api.NewContentHandlers(contentService),
		Health:     api.NewHealthHandlers(checkers),
		JWT:        jwt,
		Metrics:    metricsHandler,
		WriteLimit: writeLimit,
	})

	// The config expresses the limit as requests per second; the fixed
	// window limiter counts per minute.
	rateLimit := middleware.DefaultLimit()
	if cfg.RateLimitRPS > 0 {
		rateLimit = middleware.RateLimitConfig{
			RequestsPerWindow: int(cfg.RateLimitRPS * 60),
			WindowDuration:    time.Minute,
		}
	}
	if err := rateLimit.Validate(); err != nil {
		logger.Error("invalid rate limit config", "error", err)
		os.Exit(1)
	}

	// Middleware chain, outermost first:
	// RequestID -> Tracing -> HTTPMetrics -> RateLimit -> CORS -> Logging.
	var handler http.Handler = middleware.Logging(logger)(mux)
	handler = middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowCredentials: true,
		MaxAge:           600,
	})(handler)
	handler = middleware.RateLimiter(rateLimitStore, rateLimit, middleware.IPKeyFunc(), metrics)(handler)
	handler = middleware.HTTPMetrics(metrics)(handler)
	handler = middleware.Tracing(serviceName)(handler)
	handler = middleware.RequestID(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Persist admin-added content across restarts in the in-memory
	// configuration.
	if cfg.SeedSnapshotPath != "" && cfg.DatabaseURL == "" {
		regions, festivals, etiquette, tips := library.Tables()
		collected, err := seed.Collect(shutdownCtx, slangStore, foodStore, regions, festivals, etiquette, tips)
		if err != nil {
			logger.Error("failed to collect snapshot", "error", err)
		} else if err := seed.SaveSnapshot(cfg.SeedSnapshotPath, collected); err != nil {
			logger.Error("failed to save snapshot", "path", cfg.SeedSnapshotPath, "error", err)
		} else {
			logger.Info("saved seed snapshot", "path", cfg.SeedSnapshotPath)
		}
	}

	logger.Info("server stopped")
}
