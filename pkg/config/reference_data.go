package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"sewaaset-prediction/internal/models"
	"sewaaset-prediction/internal/utils"
)

// LoadReferenceData reads a zone table from a YAML file. An empty path
// selects the built-in Surabaya table.
func LoadReferenceData(path string) (models.ReferenceData, error) {
	if path == "" {
		return models.DefaultReferenceData(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.ReferenceData{}, utils.WrapError(err, "failed to read reference data")
	}

	var ref models.ReferenceData
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return models.ReferenceData{}, utils.WrapError(err, "failed to unmarshal reference data")
	}
	if err := ref.Validate(); err != nil {
		return models.ReferenceData{}, utils.WrapError(err, "reference data %s", path)
	}
	return ref, nil
}
