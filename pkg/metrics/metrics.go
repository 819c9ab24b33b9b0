package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
	AdaptationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feature_adaptations_total",
			Help: "Form to feature vector adaptations by property type and outcome",
		},
		[]string{"property_type", "outcome"},
	)
	ModelRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "model_request_duration_seconds",
			Help:    "Model server request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"property_type"},
	)
	ModelErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_errors_total",
			Help: "Total number of failed model server requests",
		},
		[]string{"property_type"},
	)
	CacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "prediction_cache_hits_total",
			Help: "Total number of prediction cache hits",
		},
	)
	CacheMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "prediction_cache_misses_total",
			Help: "Total number of prediction cache misses",
		},
	)
	RedisOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redis_operation_duration_seconds",
			Help:    "Redis operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	RedisErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_errors_total",
			Help: "Total number of failed Redis operations",
		},
		[]string{"operation"},
	)
)

var once sync.Once

// Init registers the collectors with the default registry. Later calls are no-ops.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			AdaptationsTotal,
			ModelRequestDuration,
			ModelErrorsTotal,
			CacheHitsTotal,
			CacheMissesTotal,
			RedisOperationDuration,
			RedisErrorsTotal,
		)
	})
}
