package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.Router.GET("/health", a.HealthHandler.Health)

	api := a.Router.Group("/api")
	{
		api.POST("/predictions/:type", a.PredictionHandler.Predict)
		api.POST("/features/:type", a.PredictionHandler.Features)
		api.GET("/zones", a.PredictionHandler.Zones)
	}
}
