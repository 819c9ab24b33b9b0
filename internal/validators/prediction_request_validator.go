package validators

import (
	"encoding/json"
	"fmt"

	apperrors "sewaaset-prediction/internal/errors"
	"sewaaset-prediction/internal/models"
)

// Request envelope limits.
const (
	MaxFormFields    = 64
	MaxFieldNameLen  = 64
	MaxFieldValueLen = 256
)

type predictionRequestValidator struct{}

func NewPredictionRequestValidator() PredictionRequestValidator {
	return &predictionRequestValidator{}
}

// ValidateRequest checks the request envelope only. Field values are coerced
// and range checked by the adapter; unknown fields are allowed.
func (v *predictionRequestValidator) ValidateRequest(propertyType string, form models.FormInput) error {
	if propertyType == "" {
		return &apperrors.ValidationError{Message: "property type is required"}
	}
	if len(form) > MaxFormFields {
		return &apperrors.ValidationError{Message: fmt.Sprintf("form has %d fields, at most %d are accepted", len(form), MaxFormFields)}
	}
	for name, value := range form {
		if name == "" || len(name) > MaxFieldNameLen {
			return &apperrors.ValidationError{Message: fmt.Sprintf("invalid field name %.32q", name)}
		}
		switch val := value.(type) {
		case nil, bool, json.Number,
			float64, float32, int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64:
		case string:
			if len(val) > MaxFieldValueLen {
				return &apperrors.ValidationError{Message: fmt.Sprintf("field %s is longer than %d bytes", name, MaxFieldValueLen)}
			}
		default:
			return &apperrors.ValidationError{Message: fmt.Sprintf("field %s must be a scalar value", name)}
		}
	}
	return nil
}
