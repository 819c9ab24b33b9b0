package transformers

import (
	"sewaaset-prediction/internal/models"
)

// Land model feature keys.
const (
	FeatureValuePerArea   = "njop_per_m2"
	FeatureLandArea       = "luas_tanah"
	FeatureTotalValue     = "total_njop"
	FeatureHighDensity    = "kepadatan_sangat_tinggi"
	FeatureZoneType       = "jenis_zona"
	FeatureAccessibility  = "aksesibilitas"
	FeatureSecurityRating = "tingkat_keamanan"
	FeatureDistrict       = "kecamatan"
	FeatureAddress        = "alamat"
)

// ParseLandForm coerces and defaults the land form fields.
func (a *PropertyInputAdapter) ParseLandForm(form models.FormInput) (models.LandForm, error) {
	area, err := getPositiveFloat64(form, models.FieldLandArea, DefaultLandArea)
	if err != nil {
		return models.LandForm{}, err
	}
	return models.LandForm{
		Location:    getString(form, models.FieldLocation, a.ref.DefaultZone),
		LandArea:    area,
		Certificate: getString(form, models.FieldCertificate, DefaultCertificate),
		RoadAccess:  getString(form, models.FieldRoadAccess, DefaultRoadAccess),
	}, nil
}

// AdaptLand builds the land model vector from a raw form.
func (a *PropertyInputAdapter) AdaptLand(form models.FormInput) (models.FeatureVector, error) {
	land, err := a.ParseLandForm(form)
	if err != nil {
		return models.FeatureVector{}, err
	}
	fv := a.LandFeatures(land)
	if err := requireFinite(fv, form, models.FieldLandArea); err != nil {
		return models.FeatureVector{}, err
	}
	return fv, nil
}

// LandFeatures builds the land model vector from a parsed form.
func (a *PropertyInputAdapter) LandFeatures(land models.LandForm) models.FeatureVector {
	zone := a.ref.ResolveZone(land.Location)
	valuePerArea := a.ref.ValuePerArea(zone)

	b := models.NewFeatureVectorBuilder(3 + len(a.ref.AddressSlots) + len(a.ref.DistrictSlots) + 6)
	b.Number(FeatureValuePerArea, valuePerArea).
		Number(FeatureLandArea, land.LandArea).
		Number(FeatureTotalValue, valuePerArea*land.LandArea)

	a.oneHot(b, a.ref.AddressSlots, zone)
	a.oneHot(b, a.ref.DistrictSlots, zone)

	b.Flag(FeatureHighDensity, a.ref.IsHighDensity(zone)).
		Text(FeatureZoneType, ZoneTypeResidential).
		Text(FeatureAccessibility, land.RoadAccess).
		Text(FeatureSecurityRating, SecurityRating).
		Text(FeatureDistrict, a.ref.District(zone)).
		Text(FeatureAddress, a.ref.Address(zone))

	return b.Build()
}
