package utils

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"

	"sewaaset-prediction/internal/errors"
)

// WrapError adds context to an error while preserving the original.
func WrapError(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(message, args...), err)
}

// IsRetryableError reports whether a failed model call is transient: a
// network error or a 502, 503 or 504 from the model server. Cancellation and
// deadline errors are not retried.
func IsRetryableError(err error) bool {
	if err == nil || stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var predErr *errors.PredictionError
	if stderrors.As(err, &predErr) {
		switch predErr.StatusCode {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		case 0:
		default:
			return false
		}
	}

	var netErr net.Error
	return stderrors.As(err, &netErr)
}
