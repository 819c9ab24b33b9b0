package utils

import (
	"time"

	"sewaaset-prediction/pkg/metrics"
)

func RecordModelRequestDuration(propertyType string, start time.Time) {
	metrics.ModelRequestDuration.WithLabelValues(propertyType).Observe(time.Since(start).Seconds())
}

func RecordModelError(propertyType string) {
	metrics.ModelErrorsTotal.WithLabelValues(propertyType).Inc()
}

func RecordAdaptation(propertyType, outcome string) {
	metrics.AdaptationsTotal.WithLabelValues(propertyType, outcome).Inc()
}
