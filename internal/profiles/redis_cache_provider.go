package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"oracle-dashboard/internal/config"
	"oracle-dashboard/internal/metrics"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCacheClient is the slice of the go-redis client the cache needs.
type RedisCacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type RedisCache struct {
	client RedisCacheClient
	logger *slog.Logger
}

// NewRedisCache creates a Redis-backed profile cache on the cache index,
// going through sentinel when one is configured.
func NewRedisCache(cfg *config.Config, logger *slog.Logger) (*RedisCache, error) {
	if cfg.Redis == nil {
		return nil, fmt.Errorf("redis profile cache requires a redis section in the configuration")
	}

	var client *redis.Client

	if cfg.Redis.Sentinel != nil {
		client = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       cfg.Redis.Sentinel.MasterName,
			SentinelAddrs:    cfg.Redis.Sentinel.SentinelAddresses,
			SentinelPassword: cfg.Redis.Sentinel.SentinelPassword,
			Password:         cfg.Redis.Password,
			DB:               cfg.Redis.CacheIndex,
			MinIdleConns:     2,
		})
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Address,
			Username:     cfg.Redis.Username,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.CacheIndex,
			MinIdleConns: 2,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisCache{
		client: client,
		logger: logger,
	}, nil
}

// key generates a namespaced Redis key
func (r *RedisCache) key(digest string) string {
	return fmt.Sprintf("cache:profile:%s", digest)
}

func (r *RedisCache) Get(ctx context.Context, key string) (CachedProfile, bool) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeRedis, metrics.CacheOperationTypeGet).Observe(time.Since(start).Seconds())
	}()

	data, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Error("error executing redis GET", "error", err)
		}

		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeRedis).Inc()
		return CachedProfile{}, false
	}

	var cached CachedProfile
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		r.logger.Error("error unmarshalling cached profile", "error", err)

		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeRedis).Inc()
		return CachedProfile{}, false
	}

	metrics.CacheHits.WithLabelValues(metrics.CacheTypeRedis).Inc()
	return cached, true
}

func (r *RedisCache) Set(ctx context.Context, key string, profile CachedProfile) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeRedis, metrics.CacheOperationTypeSet).Observe(time.Since(start).Seconds())
	}()

	var ttl time.Duration
	if !profile.ExpiresAt.IsZero() {
		ttl = time.Until(profile.ExpiresAt)
		if ttl <= 0 {
			return
		}
	}

	data, err := json.Marshal(profile)
	if err != nil {
		r.logger.Error("error marshalling cached profile", "error", err)
		return
	}

	if err := r.client.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		r.logger.Error("error executing redis SET", "error", err)
		return
	}
}

// Delete removes an entry from the cache
func (r *RedisCache) Delete(ctx context.Context, key string) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeRedis, metrics.CacheOperationTypeDelete).Observe(time.Since(start).Seconds())
	}()

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Error("error executing redis DEL", "error", err)
		return
	}
}

// Size returns the current number of elements in the cache
func (r *RedisCache) Size(ctx context.Context) int {
	keys, err := r.client.Keys(ctx, r.key("*")).Result()
	if err != nil {
		r.logger.Error("error executing redis KEYS", "error", err)
		return 0
	}

	return len(keys)
}

// Ping verifies the connection to the cache backend.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying Redis client
func (r *RedisCache) Close() error {
	return r.client.Close()
}
