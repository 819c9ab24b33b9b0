package repositories

import (
	"context"
	"time"

	"sewaaset-prediction/internal/models"
)

// PredictionCache stores model prices by property type and feature fingerprint.
// Get returns nil, nil on a miss.
type PredictionCache interface {
	Get(ctx context.Context, propertyType, fingerprint string) (*models.PricePrediction, error)
	Set(ctx context.Context, propertyType, fingerprint string, prediction *models.PricePrediction, expiration time.Duration) error
	Ping(ctx context.Context) error
}
