package services

import (
	"context"

	"sewaaset-prediction/internal/models"
)

// PricePredictor is the model server. *mlclient.Client implements it.
type PricePredictor interface {
	Predict(ctx context.Context, propertyType string, features models.FeatureVector) (*models.PricePrediction, error)
	Health(ctx context.Context) error
}
