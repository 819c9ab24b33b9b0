package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sewaaset-prediction/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// Store keeps JSON encoded values in Redis.
type Store struct {
	client CacheClient
}

// NewStore wraps client. Pass RedisClient after InitRedis.
func NewStore(client CacheClient) *Store {
	return &Store{client: client}
}

// Set stores value under key with the given expiration.
func (s *Store) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		IncrementError("set_marshal")
		return NewCacheError("marshal", err, false)
	}
	start := time.Now()
	err = s.client.Set(ctx, key, data, expiration).Err()
	RecordOperationDuration("set", start)
	if err != nil {
		IncrementError("set")
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return NewCacheError("set", err, true)
	}
	return nil
}

// Get decodes the value under key into dest. A missing key is ErrCacheMiss.
func (s *Store) Get(ctx context.Context, key string, dest interface{}) error {
	start := time.Now()
	val, err := s.client.Get(ctx, key).Result()
	RecordOperationDuration("get", start)
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		IncrementError("get")
		logger.GlobalLogger.Errorf("failed to get key %s: %v", key, err)
		return NewCacheError("get", err, true)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		IncrementError("get_unmarshal")
		logger.GlobalLogger.Errorf("failed to unmarshal value for key %s: %v", key, err)
		return NewCacheError("unmarshal", err, false)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.client.Del(ctx, key).Err()
	RecordOperationDuration("delete", start)
	if err != nil && !errors.Is(err, redis.Nil) {
		IncrementError("delete")
		logger.GlobalLogger.Errorf("failed to delete key %s: %v", key, err)
		return NewCacheError("delete", err, true)
	}
	return nil
}

// Ping checks the underlying connection.
func (s *Store) Ping(ctx context.Context) error {
	return Ping(ctx, s.client)
}
