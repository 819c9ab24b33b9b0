package services

import (
	"sewaaset-prediction/internal/models"
)

type ReferenceService struct {
	ref models.ReferenceData
}

func NewReferenceService(ref models.ReferenceData) *ReferenceService {
	return &ReferenceService{ref: ref.Clone()}
}

// Zones lists the recognized zones in name order with their reference values.
func (s *ReferenceService) Zones() models.ZonesResponse {
	names := s.ref.ZoneNames()
	zones := make([]models.ZoneInfo, 0, len(names))
	for _, name := range names {
		zone := s.ref.Zones[name]
		zones = append(zones, models.ZoneInfo{
			Name:         name,
			ValuePerArea: zone.ValuePerArea,
			District:     zone.District,
			Address:      zone.Address,
			HighDensity:  s.ref.IsHighDensity(name),
			Default:      name == s.ref.DefaultZone,
		})
	}
	return models.ZonesResponse{
		DefaultZone:   s.ref.DefaultZone,
		Zones:         zones,
		PropertyTypes: []string{models.PropertyTypeLand, models.PropertyTypeBuilding},
	}
}
