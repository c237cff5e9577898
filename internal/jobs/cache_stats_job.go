package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"oracle-dashboard/internal/metrics"
	"oracle-dashboard/internal/profiles"
	"time"
)

// CacheStatsJob samples the profile cache size into the cache items gauge so
// the dashboard knows how many entries are live.
type CacheStatsJob struct {
	cache     profiles.CacheProvider
	cacheName string
	interval  time.Duration
	logger    *slog.Logger
}

func NewCacheStatsJob(cache profiles.CacheProvider, cacheName string, interval time.Duration, logger *slog.Logger) *CacheStatsJob {
	return &CacheStatsJob{
		cache:     cache,
		cacheName: cacheName,
		interval:  interval,
		logger:    logger,
	}
}

func (j *CacheStatsJob) Name() string {
	return "cache_stats"
}

func (j *CacheStatsJob) Interval() time.Duration {
	return j.interval
}

func (j *CacheStatsJob) Run(ctx context.Context) error {
	if j.interval <= 0 {
		return fmt.Errorf("non-positive ticker interval: %s", j.interval)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Debug("Starting cache stats sampling", "interval", j.interval)

	j.record(ctx)

	for {
		select {
		case <-ctx.Done():
			j.logger.Debug("Cache stats sampling canceled")
			return ctx.Err()
		case <-ticker.C:
			j.record(ctx)
		}
	}
}

func (j *CacheStatsJob) record(ctx context.Context) {
	metrics.CacheItems.WithLabelValues(j.cacheName).Set(float64(j.cache.Size(ctx)))
}
