package services_test

import (
	"testing"

	"sewaaset-prediction/internal/models"
	"sewaaset-prediction/internal/services"
)

func TestReferenceServiceZones(t *testing.T) {
	got := services.NewReferenceService(models.DefaultReferenceData()).Zones()

	if got.DefaultZone != models.ZoneSurabayaTimur {
		t.Errorf("default zone: %s", got.DefaultZone)
	}
	if len(got.PropertyTypes) != 2 {
		t.Errorf("property types: %v", got.PropertyTypes)
	}
	if len(got.Zones) != 5 {
		t.Fatalf("zones: %+v", got.Zones)
	}

	for i := 1; i < len(got.Zones); i++ {
		if got.Zones[i-1].Name >= got.Zones[i].Name {
			t.Errorf("zones are not sorted: %s before %s", got.Zones[i-1].Name, got.Zones[i].Name)
		}
	}

	for _, zone := range got.Zones {
		switch zone.Name {
		case models.ZoneSurabayaPusat:
			if !zone.HighDensity || zone.ValuePerArea != 15_000_000 || zone.Default {
				t.Errorf("pusat: %+v", zone)
			}
		case models.ZoneSurabayaTimur:
			if !zone.Default || !zone.HighDensity {
				t.Errorf("timur: %+v", zone)
			}
		case models.ZoneSurabayaUtara:
			if zone.HighDensity || zone.District != "Kenjeran" {
				t.Errorf("utara: %+v", zone)
			}
		}
	}
}
