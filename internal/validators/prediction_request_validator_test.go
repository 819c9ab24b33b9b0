package validators_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	apperrors "sewaaset-prediction/internal/errors"
	"sewaaset-prediction/internal/models"
	"sewaaset-prediction/internal/validators"
)

func TestValidateRequest(t *testing.T) {
	v := validators.NewPredictionRequestValidator()

	t.Run("it accepts scalar fields including unknown ones", func(t *testing.T) {
		form := models.FormInput{
			"lokasi":        "Surabaya Pusat",
			"luas_tanah":    200.0,
			"jumlah_kamar":  3,
			"sertifikat":    nil,
			"catatan_bebas": true,
		}
		if err := v.ValidateRequest("tanah", form); err != nil {
			t.Error(err)
		}
	})

	t.Run("it leaves property type checks to the adapter", func(t *testing.T) {
		if err := v.ValidateRequest("rumah", models.FormInput{}); err != nil {
			t.Error(err)
		}
	})

	tooMany := models.FormInput{}
	for i := 0; i <= validators.MaxFormFields; i++ {
		tooMany[fmt.Sprintf("f%d", i)] = "x"
	}

	for name, tc := range map[string]struct {
		propertyType string
		form         models.FormInput
	}{
		"an empty property type": {"", models.FormInput{}},
		"too many fields":        {"tanah", tooMany},
		"a long field name":      {"tanah", models.FormInput{strings.Repeat("k", 65): "x"}},
		"a long value":           {"tanah", models.FormInput{"lokasi": strings.Repeat("x", 257)}},
		"a nested object":        {"tanah", models.FormInput{"lokasi": map[string]interface{}{"a": 1}}},
		"an array":               {"tanah", models.FormInput{"luas_tanah": []interface{}{1, 2}}},
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			err := v.ValidateRequest(tc.propertyType, tc.form)
			var validationErr *apperrors.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}
