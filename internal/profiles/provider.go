package profiles

import (
	"context"
	"log/slog"
	"oracle-dashboard/internal/config"
	"oracle-dashboard/internal/models"
	"time"
)

//go:generate mockgen -source=provider.go -destination=../mocks/profiles_cache.go -package=mocks

// CachedProfile is a cache entry for a user profile fetched from the backend.
type CachedProfile struct {
	User      *models.User `json:"user"`
	FetchedAt time.Time    `json:"fetched_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Expired reports whether the entry is past its freshness window.
func (p CachedProfile) Expired(now time.Time) bool {
	return !p.ExpiresAt.IsZero() && !now.Before(p.ExpiresAt)
}

// CacheProvider stores profiles keyed by a digest of the access token that
// fetched them, so raw tokens never appear in cache keys.
type CacheProvider interface {
	Get(ctx context.Context, key string) (CachedProfile, bool)
	Set(ctx context.Context, key string, profile CachedProfile)
	Delete(ctx context.Context, key string)
	Size(ctx context.Context) int
}

// NewCacheProvider returns a new CacheProvider
func NewCacheProvider(config *config.Config, logger *slog.Logger) (CacheProvider, error) {
	switch config.Cache.Type {
	case "redis":
		return NewRedisCache(config, logger)
	case "memory":
		fallthrough
	default:
		return NewMemCache(config, logger)
	}
}
