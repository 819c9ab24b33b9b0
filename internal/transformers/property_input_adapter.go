package transformers

import (
	"fmt"

	apperrors "sewaaset-prediction/internal/errors"
	"sewaaset-prediction/internal/models"
)

// Form defaults applied when a field is not submitted.
const (
	DefaultLandArea     = 200.0
	DefaultBuildingArea = 150.0
	DefaultBedrooms     = 3
	DefaultBathrooms    = 2
	DefaultCertificate  = "SHM"
	DefaultRoadAccess   = "Baik"
	DefaultCondition    = "Baik"
)

// Constants attached to every vector.
const (
	ZoneTypeResidential = "Perumahan"
	SecurityRating      = "Sedang"
)

// PropertyInputAdapter adapts listing forms to the feature schema of the land
// and building price models. It holds no mutable state and is safe for
// concurrent use.
type PropertyInputAdapter struct {
	ref models.ReferenceData
}

// NewPropertyInputAdapter validates ref and takes a private copy of it.
func NewPropertyInputAdapter(ref models.ReferenceData) (*PropertyInputAdapter, error) {
	if err := ref.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reference data: %w", err)
	}
	return &PropertyInputAdapter{ref: ref.Clone()}, nil
}

// NewDefaultPropertyInputAdapter uses the built-in Surabaya table.
func NewDefaultPropertyInputAdapter() *PropertyInputAdapter {
	a, err := NewPropertyInputAdapter(models.DefaultReferenceData())
	if err != nil {
		panic(err)
	}
	return a
}

// Adapt routes form to the land or building schema. Any other property type
// is rejected: guessing would send a vector of the wrong shape to the model.
func (a *PropertyInputAdapter) Adapt(form models.FormInput, propertyType string) (models.FeatureVector, error) {
	switch propertyType {
	case models.PropertyTypeLand:
		return a.AdaptLand(form)
	case models.PropertyTypeBuilding:
		return a.AdaptBuilding(form)
	default:
		return models.FeatureVector{}, &apperrors.UnsupportedPropertyTypeError{PropertyType: propertyType}
	}
}

// ZoneOf returns the zone the form resolves to.
func (a *PropertyInputAdapter) ZoneOf(form models.FormInput) string {
	return a.ref.ResolveZone(getString(form, models.FieldLocation, a.ref.DefaultZone))
}

// ReferenceData returns a copy of the table the adapter was built with.
func (a *PropertyInputAdapter) ReferenceData() models.ReferenceData {
	return a.ref.Clone()
}

// oneHot appends one key per slot, 1 when the slot lists zone.
func (a *PropertyInputAdapter) oneHot(b *models.FeatureVectorBuilder, slots []models.IndicatorSlot, zone string) {
	for _, slot := range slots {
		b.Flag(slot.Key, slot.Fires(zone))
	}
}
