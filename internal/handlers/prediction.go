package handlers

import (
	"net/http"

	"sewaaset-prediction/internal/services"

	"github.com/gin-gonic/gin"
)

type PredictionHandler struct {
	predictionService *services.PredictionService
	referenceService  *services.ReferenceService
}

func NewPredictionHandler(predictionService *services.PredictionService, referenceService *services.ReferenceService) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
		referenceService:  referenceService,
	}
}

// Predict prices a listing form.
// POST /api/predictions/:type with type tanah or bangunan.
func (h *PredictionHandler) Predict(c *gin.Context) {
	form, err := bindForm(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.predictionService.Predict(c.Request.Context(), c.Param("type"), form)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Features returns the model input for a listing form without pricing it.
// POST /api/features/:type
func (h *PredictionHandler) Features(c *gin.Context) {
	form, err := bindForm(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.predictionService.Features(c.Request.Context(), c.Param("type"), form)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Zones lists the recognized zones.
// GET /api/zones
func (h *PredictionHandler) Zones(c *gin.Context) {
	c.JSON(http.StatusOK, h.referenceService.Zones())
}
