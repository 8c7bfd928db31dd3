package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/codeforlifeee/arabian-vibes/internal/adapters/cache/redisstore"
	"github.com/codeforlifeee/arabian-vibes/internal/adapters/cms/drupal"
	"github.com/codeforlifeee/arabian-vibes/internal/adapters/rates/fxratesapi"
	"github.com/codeforlifeee/arabian-vibes/internal/core/services"
	"github.com/codeforlifeee/arabian-vibes/internal/handlers"
	"github.com/codeforlifeee/arabian-vibes/internal/middleware"
	"github.com/codeforlifeee/arabian-vibes/pkg/cache"
	"github.com/codeforlifeee/arabian-vibes/pkg/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Arabian Vibes API
// @version 1.0
// @description Currency and catalog pricing backend for the Arabian Vibes travel site.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cache.CloseRedisClient(redisClient)

	// Outbound adapters
	rateCache := redisstore.NewRateCacheRepository(redisClient, cfg.RateCacheTTL, logger)
	prefs := redisstore.NewPreferenceRepository(redisClient)
	rateSource := fxratesapi.NewClient(cfg.FXAPIBaseURL, cfg.FXFetchTimeout, logger)
	catalogSource := drupal.NewClient(cfg.CMSBaseURL, cfg.CMSTimeout)

	container := services.NewServiceContainer(rateCache, prefs, rateSource, catalogSource, logger)

	// Restore the session from cache, or refresh from the rate source. Never
	// fatal: the worst case is serving prices with fallback rates.
	if err := container.Currency.Init(context.Background()); err != nil {
		logger.Warn("Currency session init degraded", slog.String("error", err.Error()))
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memorystore.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
