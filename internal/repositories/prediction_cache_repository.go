package repositories

import (
	"context"
	"errors"
	"time"

	"sewaaset-prediction/internal/models"
	"sewaaset-prediction/pkg/cache"
	"sewaaset-prediction/pkg/logger"
	"sewaaset-prediction/pkg/metrics"
)

type predictionCache struct {
	store cache.CacheOperations
	ping  func(ctx context.Context) error
}

// NewPredictionCache keeps predictions in Redis through store.
func NewPredictionCache(store *cache.Store) PredictionCache {
	return &predictionCache{
		store: store,
		ping:  store.Ping,
	}
}

func (c *predictionCache) Get(ctx context.Context, propertyType, fingerprint string) (*models.PricePrediction, error) {
	key := cache.PredictionKey(propertyType, fingerprint)
	var prediction models.PricePrediction
	err := c.store.Get(ctx, key, &prediction)
	if errors.Is(err, cache.ErrCacheMiss) {
		metrics.CacheMissesTotal.Inc()
		return nil, nil
	}
	if err != nil && !cache.IsRetryable(err) {
		// an undecodable entry is dropped and rewritten by the next prediction
		logger.GlobalLogger.Warnf("dropping unreadable prediction %s: %v", key, err)
		if delErr := c.store.Delete(ctx, key); delErr != nil {
			return nil, delErr
		}
		metrics.CacheMissesTotal.Inc()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	metrics.CacheHitsTotal.Inc()
	return &prediction, nil
}

func (c *predictionCache) Set(ctx context.Context, propertyType, fingerprint string, prediction *models.PricePrediction, expiration time.Duration) error {
	return c.store.Set(ctx, cache.PredictionKey(propertyType, fingerprint), prediction, expiration)
}

func (c *predictionCache) Ping(ctx context.Context) error {
	return c.ping(ctx)
}

type memoryPredictionCache struct {
	cache *cache.Cache
}

// NewMemoryPredictionCache keeps predictions in process memory.
func NewMemoryPredictionCache(c *cache.Cache) PredictionCache {
	return &memoryPredictionCache{cache: c}
}

func (c *memoryPredictionCache) Get(ctx context.Context, propertyType, fingerprint string) (*models.PricePrediction, error) {
	v, ok := c.cache.Get(cache.PredictionKey(propertyType, fingerprint))
	if !ok {
		metrics.CacheMissesTotal.Inc()
		return nil, nil
	}
	metrics.CacheHitsTotal.Inc()
	prediction := v.(models.PricePrediction)
	return &prediction, nil
}

func (c *memoryPredictionCache) Set(ctx context.Context, propertyType, fingerprint string, prediction *models.PricePrediction, expiration time.Duration) error {
	c.cache.Set(cache.PredictionKey(propertyType, fingerprint), *prediction, expiration)
	return nil
}

func (c *memoryPredictionCache) Ping(ctx context.Context) error {
	return nil
}
