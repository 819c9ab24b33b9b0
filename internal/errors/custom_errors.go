package errors

import (
	"fmt"
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Common error codes
const (
	ErrCodeInvalidField            = "INVALID_FIELD"
	ErrCodeUnsupportedPropertyType = "UNSUPPORTED_PROPERTY_TYPE"
	ErrCodeInvalidRequest          = "INVALID_REQUEST"
	ErrCodePredictionUnavailable   = "PREDICTION_UNAVAILABLE"
	ErrCodeRateLimited             = "RATE_LIMITED"
	ErrCodeInternal                = "INTERNAL_ERROR"
)

// TypeConversionError reports a form field whose raw value could not be
// coerced to the type the model schema needs.
type TypeConversionError struct {
	Field  string
	Value  interface{}
	Target string
	Reason string
	Err    error
}

func (e *TypeConversionError) Error() string {
	msg := fmt.Sprintf("field %s: cannot convert %#v to %s", e.Field, e.Value, e.Target)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

func (e *TypeConversionError) Unwrap() error {
	return e.Err
}

// UnsupportedPropertyTypeError reports a property type discriminator that is
// neither land nor building.
type UnsupportedPropertyTypeError struct {
	PropertyType string
}

func (e *UnsupportedPropertyTypeError) Error() string {
	return fmt.Sprintf("unsupported property type %q", e.PropertyType)
}

// ValidationError reports a malformed request envelope.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PredictionError reports a failure of the model server.
type PredictionError struct {
	PropertyType string
	StatusCode   int
	Err          error
}

func (e *PredictionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("prediction for %s failed with status %d: %v", e.PropertyType, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("prediction for %s failed: %v", e.PropertyType, e.Err)
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}
