package cache

import (
	"time"

	"sewaaset-prediction/pkg/metrics"
)

// RecordOperationDuration observes the time since start for a Redis operation.
func RecordOperationDuration(operation string, start time.Time) {
	metrics.RedisOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// IncrementError counts a failed Redis operation.
func IncrementError(operation string) {
	metrics.RedisErrorsTotal.WithLabelValues(operation).Inc()
}
