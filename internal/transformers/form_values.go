package transformers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "sewaaset-prediction/internal/errors"
	"sewaaset-prediction/internal/models"
)

const (
	targetFloat   = "float"
	targetInteger = "integer"
)

// rawValue returns the submitted value of key, or false when the field is
// absent, nil or blank.
func rawValue(form models.FormInput, key string) (interface{}, bool) {
	val, ok := form[key]
	if !ok || val == nil {
		return nil, false
	}
	if s, ok := val.(string); ok && strings.TrimSpace(s) == "" {
		return nil, false
	}
	return val, true
}

func getString(form models.FormInput, key, def string) string {
	val, ok := rawValue(form, key)
	if !ok {
		return def
	}
	switch v := val.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func getFloat64(form models.FormInput, key string, def float64) (float64, error) {
	val, ok := rawValue(form, key)
	if !ok {
		return def, nil
	}

	var f float64
	switch v := val.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, conversionError(key, val, targetFloat, "not a number", err)
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, conversionError(key, val, targetFloat, "not a number", err)
		}
		f = parsed
	default:
		return 0, conversionError(key, val, targetFloat, fmt.Sprintf("unsupported type %T", val), nil)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, conversionError(key, val, targetFloat, "not a finite number", nil)
	}
	return f, nil
}

func getInt(form models.FormInput, key string, def int) (int, error) {
	val, ok := rawValue(form, key)
	if !ok {
		return def, nil
	}

	var n int64
	switch v := val.(type) {
	case int:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return intFromFloat(form, key, val)
		}
		n = parsed
	default:
		return intFromFloat(form, key, val)
	}

	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, conversionError(key, val, targetInteger, "out of range", nil)
	}
	return int(n), nil
}

// intFromFloat accepts any number representation holding a whole value.
func intFromFloat(form models.FormInput, key string, val interface{}) (int, error) {
	f, err := getFloat64(form, key, 0)
	if err != nil {
		var convErr *apperrors.TypeConversionError
		if errors.As(err, &convErr) {
			convErr.Target = targetInteger
		}
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, conversionError(key, val, targetInteger, "not a whole number", nil)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, conversionError(key, val, targetInteger, "out of range", nil)
	}
	return int(f), nil
}

func getPositiveFloat64(form models.FormInput, key string, def float64) (float64, error) {
	f, err := getFloat64(form, key, def)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, conversionError(key, form[key], targetFloat, "must be greater than zero", nil)
	}
	return f, nil
}

func getCount(form models.FormInput, key string, def int) (int, error) {
	n, err := getInt(form, key, def)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, conversionError(key, form[key], targetInteger, "must not be negative", nil)
	}
	return n, nil
}

// requireFinite rejects a vector whose derived quantities overflowed,
// blaming the field they were derived from.
func requireFinite(fv models.FeatureVector, form models.FormInput, field string) error {
	for _, key := range fv.Keys() {
		if n, ok := fv.Number(key); ok && (math.IsNaN(n) || math.IsInf(n, 0)) {
			return conversionError(field, form[field], targetFloat, fmt.Sprintf("too large, %s is not a finite number", key), nil)
		}
	}
	return nil
}

func conversionError(field string, value interface{}, target, reason string, err error) error {
	return &apperrors.TypeConversionError{
		Field:  field,
		Value:  value,
		Target: target,
		Reason: reason,
		Err:    err,
	}
}
