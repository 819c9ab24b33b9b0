package transformers

import (
	"sewaaset-prediction/internal/models"
)

// InputAdapter turns raw listing forms into model feature vectors.
type InputAdapter interface {
	Adapt(form models.FormInput, propertyType string) (models.FeatureVector, error)
	AdaptLand(form models.FormInput) (models.FeatureVector, error)
	AdaptBuilding(form models.FormInput) (models.FeatureVector, error)
	ZoneOf(form models.FormInput) string
	ReferenceData() models.ReferenceData
}
