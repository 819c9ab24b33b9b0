package handlers

import (
	"context"
	"net/http"
	"time"

	"sewaaset-prediction/internal/models"
	"sewaaset-prediction/internal/services"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 5 * time.Second

type HealthHandler struct {
	predictionService *services.PredictionService
	cacheEnabled      bool
}

func NewHealthHandler(predictionService *services.PredictionService, cacheEnabled bool) *HealthHandler {
	return &HealthHandler{
		predictionService: predictionService,
		cacheEnabled:      cacheEnabled,
	}
}

// Health answers 200 while predictions can be served, even without Redis,
// and 503 when the model server is down.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	report := h.predictionService.Health(ctx, h.cacheEnabled)
	status := http.StatusOK
	if report.Status == models.HealthError {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}
