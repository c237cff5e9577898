package profiles

import (
	"context"
	"log/slog"
	"oracle-dashboard/internal/config"
	"oracle-dashboard/internal/metrics"
	"sync"
	"time"
)

type MemCache struct {
	cache  map[string]CachedProfile
	mutex  sync.RWMutex
	logger *slog.Logger
}

// NewMemCache returns an in-memory cache with lazy expiry.
func NewMemCache(_ *config.Config, logger *slog.Logger) (*MemCache, error) {
	return &MemCache{
		cache:  make(map[string]CachedProfile),
		logger: logger,
	}, nil
}

// Get returns the cached profile for a token digest. Expired entries are
// removed and reported as a miss.
func (m *MemCache) Get(_ context.Context, key string) (CachedProfile, bool) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeMemory, metrics.CacheOperationTypeGet).Observe(time.Since(start).Seconds())
	}()

	m.mutex.RLock()
	cached, exists := m.cache[key]
	m.mutex.RUnlock()

	if !exists {
		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeMemory).Inc()
		return CachedProfile{}, false
	}

	if cached.Expired(time.Now()) {
		m.mutex.Lock()
		delete(m.cache, key)
		m.mutex.Unlock()

		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeMemory).Inc()
		return CachedProfile{}, false
	}

	metrics.CacheHits.WithLabelValues(metrics.CacheTypeMemory).Inc()
	return cached, true
}

// Set sets (or inserts) the profile for a token digest
func (m *MemCache) Set(_ context.Context, key string, profile CachedProfile) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeMemory, metrics.CacheOperationTypeSet).Observe(time.Since(start).Seconds())
	}()

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.cache[key] = profile
}

// Delete removes an entry from the cache
func (m *MemCache) Delete(_ context.Context, key string) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeMemory, metrics.CacheOperationTypeDelete).Observe(time.Since(start).Seconds())
	}()

	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.cache, key)
}

// Size returns the current number of elements in the cache
func (m *MemCache) Size(_ context.Context) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.cache)
}
