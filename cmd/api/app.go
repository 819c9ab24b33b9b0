package main

import (
	"context"
	"net/http"
	"time"

	"sewaaset-prediction/internal/handlers"
	"sewaaset-prediction/internal/middleware"
	"sewaaset-prediction/internal/models"
	"sewaaset-prediction/internal/repositories"
	"sewaaset-prediction/internal/services"
	"sewaaset-prediction/internal/transformers"
	"sewaaset-prediction/internal/validators"
	"sewaaset-prediction/pkg/cache"
	"sewaaset-prediction/pkg/config"
	"sewaaset-prediction/pkg/logger"
	"sewaaset-prediction/pkg/metrics"
	"sewaaset-prediction/pkg/mlclient"

	"github.com/gin-gonic/gin"
)

const memoryCachePurgeInterval = 10 * time.Minute

// App represents the application structure
type App struct {
	Config            *config.Config
	ReferenceData     models.ReferenceData
	Router            *gin.Engine
	PredictionHandler *handlers.PredictionHandler
	HealthHandler     *handlers.HealthHandler
	RateLimiter       *middleware.RateLimiter
	Server            *http.Server

	predictionCache repositories.PredictionCache
	background      context.Context
	stopBackground  context.CancelFunc
}

// NewApp wires the application from its configuration.
func NewApp(cfg *config.Config, ref models.ReferenceData) *App {
	app := &App{Config: cfg, ReferenceData: ref}
	app.background, app.stopBackground = context.WithCancel(context.Background())

	// infrastructure
	app.initializeMetrics()
	app.initializeCache()
	app.initializeRateLimiter()

	// business logic
	app.initializeDependencies()

	// web layer
	app.initializeRouter()

	return app
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the prediction cache, in memory when Redis is disabled
func (a *App) initializeCache() {
	if !a.Config.Redis.Enabled {
		logger.GlobalLogger.Println("Redis disabled, caching predictions in memory")
		memory := cache.NewCache()
		go memory.Janitor(a.background, memoryCachePurgeInterval)
		a.predictionCache = repositories.NewMemoryPredictionCache(memory)
		return
	}
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Fatalf("Failed to initialize Redis: %v", err)
	}
	a.predictionCache = repositories.NewPredictionCache(cache.NewStore(cache.RedisClient))
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(
		middleware.PerMinute(a.Config.RateLimit.RequestsPerMinute),
		a.Config.RateLimit.Burst,
	)
	go a.RateLimiter.Cleanup(a.background, rateLimiterIdle)
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	adapter, err := transformers.NewPropertyInputAdapter(a.ReferenceData)
	if err != nil {
		logger.GlobalLogger.Fatalf("Failed to build input adapter: %v", err)
	}
	validator := validators.NewPredictionRequestValidator()
	predictor := mlclient.NewClient(a.Config.MLService.BaseURL, a.Config.MLTimeout())

	predictionService := services.NewPredictionService(adapter, validator, a.predictionCache, predictor, a.Config.PredictionTTL()).
		WithModelTimeout(a.Config.MLTimeout())
	referenceService := services.NewReferenceService(adapter.ReferenceData())

	a.PredictionHandler = handlers.NewPredictionHandler(predictionService, referenceService)
	a.HealthHandler = handlers.NewHealthHandler(predictionService, a.Config.Redis.Enabled)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	gin.SetMode(a.Config.Server.Mode)
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	a.stopBackground()
	cache.CloseRedis()
}
