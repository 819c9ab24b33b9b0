package validators

import (
	"sewaaset-prediction/internal/models"
)

type PredictionRequestValidator interface {
	ValidateRequest(propertyType string, form models.FormInput) error
}
