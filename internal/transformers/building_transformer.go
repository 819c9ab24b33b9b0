package transformers

import (
	"sewaaset-prediction/internal/models"
)

// LandToBuildingRatio estimates the lot size of a building listing, which
// the building form does not ask for.
const LandToBuildingRatio = 1.5

// Rooms every building is assumed to have besides bedrooms and bathrooms:
// one living room and one kitchen.
const implicitRooms = 2

// Building model defaults that are not collected by the form.
const (
	DefaultElectricalCapacity = 2200
	DefaultFloorCount         = 1
	DefaultRoadWidth          = 6
	DefaultLivingRooms        = 1
	DefaultDiningRooms        = 1
)

// Building model feature keys not shared with the land model.
const (
	FeatureBuildingArea       = "luas_bangunan"
	FeatureBedrooms           = "jumlah_kamar"
	FeatureBathrooms          = "jumlah_kamar_mandi"
	FeatureCondition          = "kondisi"
	FeatureTotalRooms         = "total_ruangan"
	FeatureTotalArea          = "total_luas"
	FeatureBuildingLandRatio  = "rasio_bangunan_tanah"
	FeatureBedroomBathRatio   = "rasio_kamar_kamar_mandi"
	FeatureElectricalCapacity = "daya_listrik"
	FeatureFloorCount         = "jumlah_lantai"
	FeatureRoadWidth          = "lebar_jalan"
	FeatureLivingRooms        = "ruang_tamu"
	FeatureDiningRooms        = "ruang_makan"
)

// ParseBuildingForm coerces and defaults the building form fields.
func (a *PropertyInputAdapter) ParseBuildingForm(form models.FormInput) (models.BuildingForm, error) {
	area, err := getPositiveFloat64(form, models.FieldBuildingArea, DefaultBuildingArea)
	if err != nil {
		return models.BuildingForm{}, err
	}
	bedrooms, err := getCount(form, models.FieldBedrooms, DefaultBedrooms)
	if err != nil {
		return models.BuildingForm{}, err
	}
	bathrooms, err := getCount(form, models.FieldBathrooms, DefaultBathrooms)
	if err != nil {
		return models.BuildingForm{}, err
	}
	return models.BuildingForm{
		Location:     getString(form, models.FieldLocation, a.ref.DefaultZone),
		BuildingArea: area,
		Bedrooms:     bedrooms,
		Bathrooms:    bathrooms,
		Condition:    getString(form, models.FieldCondition, DefaultCondition),
		Certificate:  getString(form, models.FieldCertificate, DefaultCertificate),
		RoadAccess:   getString(form, models.FieldRoadAccess, DefaultRoadAccess),
	}, nil
}

// AdaptBuilding builds the building model vector from a raw form.
func (a *PropertyInputAdapter) AdaptBuilding(form models.FormInput) (models.FeatureVector, error) {
	building, err := a.ParseBuildingForm(form)
	if err != nil {
		return models.FeatureVector{}, err
	}
	fv := a.BuildingFeatures(building)
	if err := requireFinite(fv, form, models.FieldBuildingArea); err != nil {
		return models.FeatureVector{}, err
	}
	return fv, nil
}

// BuildingFeatures builds the building model vector from a parsed form.
func (a *PropertyInputAdapter) BuildingFeatures(building models.BuildingForm) models.FeatureVector {
	zone := a.ref.ResolveZone(building.Location)
	landArea := building.BuildingArea * LandToBuildingRatio
	bedrooms := float64(building.Bedrooms)
	bathrooms := float64(building.Bathrooms)

	// floor of one keeps the ratio defined for listings without a bathroom
	bathDivisor := bathrooms
	if bathDivisor < 1 {
		bathDivisor = 1
	}

	return models.NewFeatureVectorBuilder(18).
		Number(FeatureBuildingArea, building.BuildingArea).
		Number(FeatureLandArea, landArea).
		Number(FeatureBedrooms, bedrooms).
		Number(FeatureBathrooms, bathrooms).
		Text(FeatureCondition, building.Condition).
		Number(FeatureTotalValue, a.ref.ValuePerArea(zone)*landArea).
		Number(FeatureTotalRooms, bedrooms+bathrooms+implicitRooms).
		Number(FeatureTotalArea, building.BuildingArea+landArea).
		Number(FeatureBuildingLandRatio, building.BuildingArea/landArea).
		Number(FeatureBedroomBathRatio, bedrooms/bathDivisor).
		Number(FeatureElectricalCapacity, DefaultElectricalCapacity).
		Number(FeatureFloorCount, DefaultFloorCount).
		Number(FeatureRoadWidth, DefaultRoadWidth).
		Number(FeatureLivingRooms, DefaultLivingRooms).
		Number(FeatureDiningRooms, DefaultDiningRooms).
		Text(FeatureSecurityRating, SecurityRating).
		Text(FeatureZoneType, ZoneTypeResidential).
		Text(FeatureDistrict, a.ref.District(zone)).
		Build()
}
