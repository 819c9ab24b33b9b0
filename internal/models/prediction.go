package models

// PricePrediction is the answer of the model server for one feature vector.
type PricePrediction struct {
	Price        float64 `json:"price"`
	ModelVersion string  `json:"model_version,omitempty"`
}

// PredictionResult is returned to API clients.
type PredictionResult struct {
	PropertyType string        `json:"property_type"`
	Zone         string        `json:"zone"`
	Features     FeatureVector `json:"features"`
	Price        float64       `json:"price"`
	ModelVersion string        `json:"model_version,omitempty"`
	Cached       bool          `json:"cached"`
}

// FeatureResult is returned when only the adapted vector is requested.
type FeatureResult struct {
	PropertyType string        `json:"property_type"`
	Zone         string        `json:"zone"`
	Features     FeatureVector `json:"features"`
}

// ZoneInfo describes one recognized zone for form dropdowns.
type ZoneInfo struct {
	Name         string  `json:"name"`
	ValuePerArea float64 `json:"njop_per_m2"`
	District     string  `json:"kecamatan"`
	Address      string  `json:"alamat"`
	HighDensity  bool    `json:"kepadatan_sangat_tinggi"`
	Default      bool    `json:"default"`
}

// ZonesResponse lists the zones and the property types the API accepts.
type ZonesResponse struct {
	DefaultZone   string     `json:"default_zone"`
	Zones         []ZoneInfo `json:"zones"`
	PropertyTypes []string   `json:"property_types"`
}

// Component health states.
const (
	HealthOK       = "ok"
	HealthDegraded = "degraded"
	HealthDisabled = "disabled"
	HealthError    = "error"
)

// HealthReport is the body of the health endpoint.
type HealthReport struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}
