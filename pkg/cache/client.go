// Package cache provides Redis and in-process caching for prediction results.
package cache

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"sewaaset-prediction/pkg/config"
	"sewaaset-prediction/pkg/logger"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

// NewRedisOptions translates the Redis section of the configuration.
func NewRedisOptions(cfg *config.Config) (*redis.Options, error) {
	var tlsConfig *tls.Config
	if cfg.Redis.TLSEnabled {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		if cfg.Redis.TLSCertFile != "" {
			pem, err := os.ReadFile(cfg.Redis.TLSCertFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read TLS certificate: %w", err)
			}
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(pem) {
				return nil, fmt.Errorf("no certificates found in %s", cfg.Redis.TLSCertFile)
			}
			tlsConfig.RootCAs = pool
		}
	}

	return &redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     10,
		MinIdleConns: 5,
		TLSConfig:    tlsConfig,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}, nil
}

// InitRedis connects RedisClient and checks the connection with a ping.
func InitRedis(cfg *config.Config) error {
	opts, err := NewRedisOptions(cfg)
	if err != nil {
		return fmt.Errorf("failed to load Redis config: %w", err)
	}
	RedisClient = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Ping(ctx, RedisClient); err != nil {
		logger.GlobalLogger.Errorf("failed to connect to Redis: %v", err)
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.GlobalLogger.Printf("Redis connected at %s", opts.Addr)
	return nil
}

// Ping checks that client answers.
func Ping(ctx context.Context, client CacheClient) error {
	start := time.Now()
	err := client.Ping(ctx).Err()
	RecordOperationDuration("ping", start)
	if err != nil {
		IncrementError("ping")
		return NewCacheError("ping", err, true)
	}
	return nil
}

// CloseRedis closes RedisClient if it was opened.
func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.GlobalLogger.Errorf("error closing Redis: %v", err)
		} else {
			logger.GlobalLogger.Println("Redis connection closed")
		}
	}
}
