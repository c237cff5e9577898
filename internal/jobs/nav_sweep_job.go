package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"oracle-dashboard/internal/guard"
	"time"
)

// NavSweepJob drops navigation grants that were issued but never redeemed.
// The guard forgets grants it consumes, this job covers the ones nobody came
// back for.
type NavSweepJob struct {
	registry *guard.NavRegistry
	interval time.Duration
	logger   *slog.Logger
}

func NewNavSweepJob(registry *guard.NavRegistry, interval time.Duration, logger *slog.Logger) *NavSweepJob {
	return &NavSweepJob{
		registry: registry,
		interval: interval,
		logger:   logger,
	}
}

func (j *NavSweepJob) Name() string {
	return "nav_grant_sweep"
}

func (j *NavSweepJob) Interval() time.Duration {
	return j.interval
}

func (j *NavSweepJob) Run(ctx context.Context) error {
	if j.interval <= 0 {
		return fmt.Errorf("non-positive ticker interval: %s", j.interval)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Debug("Starting navigation grant sweeping", "interval", j.interval)

	for {
		select {
		case <-ctx.Done():
			j.logger.Debug("Navigation grant sweeping canceled")
			return ctx.Err()
		case <-ticker.C:
			if removed := j.registry.Sweep(time.Now()); removed > 0 {
				j.logger.Debug("Swept expired navigation grants", "count", removed)
			}
		}
	}
}
