package models

// Property type discriminators accepted by the adapter.
const (
	PropertyTypeLand     = "tanah"
	PropertyTypeBuilding = "bangunan"
)

// Form field names as submitted by the listing forms.
const (
	FieldLocation     = "lokasi"
	FieldLandArea     = "luas_tanah"
	FieldBuildingArea = "luas_bangunan"
	FieldBedrooms     = "jumlah_kamar"
	FieldBathrooms    = "jumlah_kamar_mandi"
	FieldCondition    = "kondisi"
	FieldCertificate  = "sertifikat"
	FieldRoadAccess   = "akses_jalan"
)

// FormInput is a raw form submission: field name to string or number.
type FormInput map[string]interface{}

// LandForm is a land rental form after field parsing and defaulting.
type LandForm struct {
	Location    string
	LandArea    float64
	Certificate string
	RoadAccess  string
}

// BuildingForm is a building rental form after field parsing and defaulting.
type BuildingForm struct {
	Location     string
	BuildingArea float64
	Bedrooms     int
	Bathrooms    int
	Condition    string
	Certificate  string
	RoadAccess   string
}
