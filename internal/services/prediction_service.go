package services

import (
	"context"
	"time"

	"sewaaset-prediction/internal/models"
	"sewaaset-prediction/internal/repositories"
	"sewaaset-prediction/internal/transformers"
	"sewaaset-prediction/internal/utils"
	"sewaaset-prediction/internal/validators"
	"sewaaset-prediction/pkg/cache"
	"sewaaset-prediction/pkg/logger"

	"golang.org/x/sync/singleflight"
)

const DefaultPredictionTTL = time.Hour

// DefaultModelTimeout bounds one model call when none is configured.
const DefaultModelTimeout = 10 * time.Second

// pause before the single retry of a transient model failure
const retryDelay = 200 * time.Millisecond

type PredictionService struct {
	adapter   transformers.InputAdapter
	validator validators.PredictionRequestValidator
	cache     repositories.PredictionCache
	predictor PricePredictor
	ttl       time.Duration
	timeout   time.Duration
	inflight  singleflight.Group
}

func NewPredictionService(
	adapter transformers.InputAdapter,
	validator validators.PredictionRequestValidator,
	cache repositories.PredictionCache,
	predictor PricePredictor,
	ttl time.Duration,
) *PredictionService {
	if ttl <= 0 {
		ttl = DefaultPredictionTTL
	}
	return &PredictionService{
		adapter:   adapter,
		validator: validator,
		cache:     cache,
		predictor: predictor,
		ttl:       ttl,
		timeout:   DefaultModelTimeout,
	}
}

// WithModelTimeout sets the bound of a single model call. Shared calls are
// allowed one retry on top of it.
func (s *PredictionService) WithModelTimeout(timeout time.Duration) *PredictionService {
	if timeout > 0 {
		s.timeout = timeout
	}
	return s
}

// Features adapts form without asking the model for a price.
func (s *PredictionService) Features(ctx context.Context, propertyType string, form models.FormInput) (*models.FeatureResult, error) {
	features, err := s.adapt(propertyType, form)
	if err != nil {
		return nil, err
	}
	return &models.FeatureResult{
		PropertyType: propertyType,
		Zone:         s.adapter.ZoneOf(form),
		Features:     features,
	}, nil
}

// Predict adapts form and prices the resulting vector, serving repeated
// vectors from the prediction cache. Cache failures are logged and skipped.
func (s *PredictionService) Predict(ctx context.Context, propertyType string, form models.FormInput) (*models.PredictionResult, error) {
	features, err := s.adapt(propertyType, form)
	if err != nil {
		return nil, err
	}
	result := &models.PredictionResult{
		PropertyType: propertyType,
		Zone:         s.adapter.ZoneOf(form),
		Features:     features,
	}

	fingerprint, err := cache.FeatureFingerprint(features)
	if err != nil {
		logger.GlobalLogger.Warnf("skipping prediction cache: %v", err)
	}

	if fingerprint != "" {
		cached, err := s.cache.Get(ctx, propertyType, fingerprint)
		if err != nil {
			logger.GlobalLogger.Warnf("prediction cache read failed for %s: %v", propertyType, err)
		} else if cached != nil {
			result.Price = cached.Price
			result.ModelVersion = cached.ModelVersion
			result.Cached = true
			return result, nil
		}
	}

	prediction, err := s.predict(ctx, propertyType, fingerprint, features)
	if err != nil {
		logger.GlobalLogger.Errorf("prediction for %s failed: %v", propertyType, err)
		return nil, err
	}

	if fingerprint != "" {
		if err := s.cache.Set(ctx, propertyType, fingerprint, prediction, s.ttl); err != nil {
			logger.GlobalLogger.Warnf("prediction cache write failed for %s: %v", propertyType, err)
		}
	}

	result.Price = prediction.Price
	result.ModelVersion = prediction.ModelVersion
	return result, nil
}

// predict merges concurrent requests for the same vector into one model call.
// The shared call outlives any single caller; each caller stops waiting when
// its own ctx is done.
func (s *PredictionService) predict(ctx context.Context, propertyType, fingerprint string, features models.FeatureVector) (*models.PricePrediction, error) {
	if fingerprint == "" {
		return s.predictWithRetry(ctx, propertyType, features)
	}
	ch := s.inflight.DoChan(cache.PredictionKey(propertyType, fingerprint), func() (interface{}, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*s.timeout+retryDelay)
		defer cancel()
		return s.predictWithRetry(shared, propertyType, features)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		prediction := *res.Val.(*models.PricePrediction)
		return &prediction, nil
	}
}

// predictWithRetry retries a transient model failure once.
func (s *PredictionService) predictWithRetry(ctx context.Context, propertyType string, features models.FeatureVector) (*models.PricePrediction, error) {
	prediction, err := s.predictor.Predict(ctx, propertyType, features)
	if err == nil || !utils.IsRetryableError(err) {
		return prediction, err
	}

	logger.GlobalLogger.Warnf("retrying prediction for %s: %v", propertyType, err)
	select {
	case <-ctx.Done():
		return nil, err
	case <-time.After(retryDelay):
	}
	return s.predictor.Predict(ctx, propertyType, features)
}

func (s *PredictionService) adapt(propertyType string, form models.FormInput) (models.FeatureVector, error) {
	label := propertyTypeLabel(propertyType)
	if err := s.validator.ValidateRequest(propertyType, form); err != nil {
		utils.RecordAdaptation(label, "invalid_request")
		return models.FeatureVector{}, err
	}
	features, err := s.adapter.Adapt(form, propertyType)
	if err != nil {
		utils.RecordAdaptation(label, "rejected")
		logger.GlobalLogger.Debugf("adaptation for %q rejected: %v", propertyType, err)
		return models.FeatureVector{}, err
	}
	utils.RecordAdaptation(label, "ok")
	return features, nil
}

// Health checks the prediction cache and the model server.
func (s *PredictionService) Health(ctx context.Context, cacheEnabled bool) models.HealthReport {
	report := models.HealthReport{
		Status:     models.HealthOK,
		Components: map[string]string{},
	}

	switch {
	case !cacheEnabled:
		report.Components["redis"] = models.HealthDisabled
	case s.cache.Ping(ctx) != nil:
		report.Components["redis"] = models.HealthError
		report.Status = models.HealthDegraded
	default:
		report.Components["redis"] = models.HealthOK
	}

	if err := s.predictor.Health(ctx); err != nil {
		logger.GlobalLogger.Warnf("model server unhealthy: %v", err)
		report.Components["model_server"] = models.HealthError
		report.Status = models.HealthError
	} else {
		report.Components["model_server"] = models.HealthOK
	}
	return report
}

// keeps metric cardinality bounded for arbitrary path values
func propertyTypeLabel(propertyType string) string {
	switch propertyType {
	case models.PropertyTypeLand, models.PropertyTypeBuilding:
		return propertyType
	default:
		return "unsupported"
	}
}
