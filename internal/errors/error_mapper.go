package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	var convErr *TypeConversionError
	var typeErr *UnsupportedPropertyTypeError
	var validationErr *ValidationError
	var predErr *PredictionError

	switch {
	case stderrors.As(err, &convErr):
		return NewAppError(technicalMessage, fmt.Sprintf("%s (%s)", MsgInvalidField, convErr.Field), ErrCodeInvalidField, http.StatusBadRequest, err)
	case stderrors.As(err, &typeErr):
		return NewAppError(technicalMessage, MsgUnsupportedPropertyType, ErrCodeUnsupportedPropertyType, http.StatusBadRequest, err)
	case stderrors.As(err, &validationErr):
		return NewAppError(technicalMessage, MsgInvalidRequest, ErrCodeInvalidRequest, http.StatusBadRequest, err)
	case stderrors.As(err, &predErr):
		return NewAppError(technicalMessage, MsgPredictionUnavailable, ErrCodePredictionUnavailable, http.StatusServiceUnavailable, err)
	default:
		return NewAppError(technicalMessage, MsgInternalError, ErrCodeInternal, http.StatusInternalServerError, err)
	}
}
