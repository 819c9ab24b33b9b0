package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	apperrors "sewaaset-prediction/internal/errors"
)

func TestMapError(t *testing.T) {

	t.Run("nil maps to nil", func(t *testing.T) {
		if apperrors.MapError(nil) != nil {
			t.Error("expected nil")
		}
	})

	type when struct {
		err error
	}
	type then struct {
		status int
		code   string
	}

	for name, testcase := range map[string]struct {
		when when
		then then
	}{
		"type conversion error is a bad request": {
			when: when{err: &apperrors.TypeConversionError{Field: "luas_tanah", Value: "abc", Target: "float"}},
			then: then{status: http.StatusBadRequest, code: apperrors.ErrCodeInvalidField},
		},
		"wrapped type conversion error is still a bad request": {
			when: when{err: fmt.Errorf("adapting: %w", &apperrors.TypeConversionError{Field: "jumlah_kamar", Value: "x", Target: "integer"})},
			then: then{status: http.StatusBadRequest, code: apperrors.ErrCodeInvalidField},
		},
		"unsupported property type is a bad request": {
			when: when{err: &apperrors.UnsupportedPropertyTypeError{PropertyType: "other"}},
			then: then{status: http.StatusBadRequest, code: apperrors.ErrCodeUnsupportedPropertyType},
		},
		"validation error is a bad request": {
			when: when{err: &apperrors.ValidationError{Message: "empty"}},
			then: then{status: http.StatusBadRequest, code: apperrors.ErrCodeInvalidRequest},
		},
		"prediction error is service unavailable": {
			when: when{err: &apperrors.PredictionError{PropertyType: "tanah", StatusCode: 502, Err: stderrors.New("bad gateway")}},
			then: then{status: http.StatusServiceUnavailable, code: apperrors.ErrCodePredictionUnavailable},
		},
		"anything else is internal": {
			when: when{err: stderrors.New("boom")},
			then: then{status: http.StatusInternalServerError, code: apperrors.ErrCodeInternal},
		},
	} {
		t.Run(name, func(t *testing.T) {
			appErr := apperrors.MapError(testcase.when.err)
			if appErr.HTTPStatus != testcase.then.status {
				t.Errorf("status: expected %d, actual %d", testcase.then.status, appErr.HTTPStatus)
			}
			if appErr.Code != testcase.then.code {
				t.Errorf("code: expected %s, actual %s", testcase.then.code, appErr.Code)
			}
			if !stderrors.Is(appErr, testcase.when.err) {
				t.Error("original error is not reachable through Unwrap")
			}
		})
	}

	t.Run("an AppError passes through unchanged", func(t *testing.T) {
		original := apperrors.NewAppError("tech", "user", "CODE", http.StatusTeapot, nil)
		if apperrors.MapError(original) != original {
			t.Error("AppError was rewrapped")
		}
	})

	t.Run("the user message names the offending field", func(t *testing.T) {
		appErr := apperrors.MapError(&apperrors.TypeConversionError{Field: "luas_bangunan", Value: "x", Target: "float"})
		if !strings.Contains(appErr.UserMessage, "luas_bangunan") {
			t.Errorf("field missing from message: %s", appErr.UserMessage)
		}
	})
}

func TestTypeConversionErrorMessage(t *testing.T) {
	err := &apperrors.TypeConversionError{
		Field: "luas_tanah", Value: "abc", Target: "float", Reason: "not a number",
	}
	msg := err.Error()
	for _, part := range []string{"luas_tanah", `"abc"`, "float", "not a number"} {
		if !strings.Contains(msg, part) {
			t.Errorf("message %q does not contain %q", msg, part)
		}
	}
}

func TestUnsupportedPropertyTypeErrorCarriesValue(t *testing.T) {
	err := error(&apperrors.UnsupportedPropertyTypeError{PropertyType: "other"})
	var typeErr *apperrors.UnsupportedPropertyTypeError
	if !stderrors.As(err, &typeErr) || typeErr.PropertyType != "other" {
		t.Errorf("unexpected error: %v", err)
	}
}
