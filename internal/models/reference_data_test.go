package models_test

import (
	"testing"

	"sewaaset-prediction/internal/models"
)

func TestDefaultReferenceData(t *testing.T) {
	ref := models.DefaultReferenceData()

	t.Run("it is valid", func(t *testing.T) {
		if err := ref.Validate(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("every zone has value, district and address", func(t *testing.T) {
		if len(ref.Zones) != 5 {
			t.Fatalf("expected five zones, got %d", len(ref.Zones))
		}
		for _, name := range ref.ZoneNames() {
			if ref.ValuePerArea(name) <= 0 || ref.District(name) == "" || ref.Address(name) == "" {
				t.Errorf("zone %s is incomplete: %+v", name, ref.Zones[name])
			}
		}
	})

	t.Run("lookups of an unknown zone return the default zone's values", func(t *testing.T) {
		def := ref.Zones[ref.DefaultZone]
		if ref.ValuePerArea("Atlantis") != def.ValuePerArea {
			t.Error("value per area did not fall back")
		}
		if ref.District("Atlantis") != def.District {
			t.Error("district did not fall back")
		}
		if ref.Address("Atlantis") != def.Address {
			t.Error("address did not fall back")
		}
		if ref.ResolveZone("Atlantis") != models.ZoneSurabayaTimur {
			t.Error("unknown zone did not resolve to Surabaya Timur")
		}
	})

	t.Run("there are five address and six district slots", func(t *testing.T) {
		if len(ref.AddressSlots) != 5 {
			t.Errorf("address slots: %d", len(ref.AddressSlots))
		}
		if len(ref.DistrictSlots) != 6 {
			t.Errorf("district slots: %d", len(ref.DistrictSlots))
		}
	})
}

func TestReferenceDataValidate(t *testing.T) {
	for name, mutate := range map[string]func(r *models.ReferenceData){
		"no zones":               func(r *models.ReferenceData) { r.Zones = nil },
		"unknown default zone":   func(r *models.ReferenceData) { r.DefaultZone = "Nowhere" },
		"missing district":       func(r *models.ReferenceData) { r.Zones[models.ZoneSurabayaBarat] = models.ZoneReference{ValuePerArea: 1, Address: "x"} },
		"missing address":        func(r *models.ReferenceData) { r.Zones[models.ZoneSurabayaBarat] = models.ZoneReference{ValuePerArea: 1, District: "x"} },
		"non-positive value":     func(r *models.ReferenceData) { r.Zones[models.ZoneSurabayaBarat] = models.ZoneReference{District: "x", Address: "y"} },
		"unknown dense zone":     func(r *models.ReferenceData) { r.HighDensityZones = []string{"Nowhere"} },
		"slot with unknown zone": func(r *models.ReferenceData) { r.AddressSlots[0].Zones = []string{"Nowhere"} },
		"duplicated slot key":    func(r *models.ReferenceData) { r.DistrictSlots[1].Key = r.DistrictSlots[0].Key },
		"empty slot key":         func(r *models.ReferenceData) { r.DistrictSlots[1].Key = "" },
		"no address slots":       func(r *models.ReferenceData) { r.AddressSlots = nil },
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			ref := models.DefaultReferenceData()
			mutate(&ref)
			if err := ref.Validate(); err == nil {
				t.Error("expected error does not occur")
			}
		})
	}
}

func TestReferenceDataClone(t *testing.T) {
	ref := models.DefaultReferenceData()
	clone := ref.Clone()

	clone.Zones[models.ZoneSurabayaPusat] = models.ZoneReference{ValuePerArea: 1, District: "a", Address: "b"}
	clone.DistrictSlots[0].Zones[0] = models.ZoneSurabayaUtara
	clone.HighDensityZones[0] = models.ZoneSurabayaUtara

	if ref.Zones[models.ZoneSurabayaPusat].ValuePerArea == 1 {
		t.Error("zones are shared")
	}
	if ref.DistrictSlots[0].Zones[0] != models.ZoneSurabayaPusat {
		t.Error("slots are shared")
	}
	if ref.HighDensityZones[0] != models.ZoneSurabayaPusat {
		t.Error("high density zones are shared")
	}
}
