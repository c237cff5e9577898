package profiles

import (
	"context"
	"log/slog"
	"oracle-dashboard/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemCacheRoundTrip(t *testing.T) {
	ctx := context.Background()

	cache, err := NewMemCache(nil, slog.Default())
	require.NoError(t, err)

	profile := CachedProfile{
		User:      &models.User{ID: "u-1", Email: "sage@example.com"},
		FetchedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Minute),
	}

	cache.Set(ctx, "abc", profile)

	got, found := cache.Get(ctx, "abc")
	assert.True(t, found)
	assert.Equal(t, "u-1", got.User.ID)
	assert.Equal(t, 1, cache.Size(ctx))
}

func TestMemCacheMiss(t *testing.T) {
	ctx := context.Background()

	cache, err := NewMemCache(nil, slog.Default())
	require.NoError(t, err)

	got, found := cache.Get(ctx, "never-set")
	assert.False(t, found)
	assert.Equal(t, CachedProfile{}, got)
}

func TestMemCacheExpiry(t *testing.T) {
	ctx := context.Background()

	cache, err := NewMemCache(nil, slog.Default())
	require.NoError(t, err)

	cache.Set(ctx, "stale", CachedProfile{
		User:      &models.User{ID: "u-1"},
		FetchedAt: time.Now().Add(-2 * time.Minute),
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	_, found := cache.Get(ctx, "stale")
	assert.False(t, found)
	assert.Equal(t, 0, cache.Size(ctx), "expired entries are evicted on read")
}

func TestMemCacheNoExpiry(t *testing.T) {
	ctx := context.Background()

	cache, err := NewMemCache(nil, slog.Default())
	require.NoError(t, err)

	// Zero ExpiresAt means the entry never goes stale.
	cache.Set(ctx, "pinned", CachedProfile{
		User:      &models.User{ID: "u-1"},
		FetchedAt: time.Now().Add(-24 * time.Hour),
	})

	_, found := cache.Get(ctx, "pinned")
	assert.True(t, found)
}

func TestMemCacheDelete(t *testing.T) {
	ctx := context.Background()

	cache, err := NewMemCache(nil, slog.Default())
	require.NoError(t, err)

	cache.Set(ctx, "abc", CachedProfile{User: &models.User{ID: "u-1"}})
	cache.Delete(ctx, "abc")

	_, found := cache.Get(ctx, "abc")
	assert.False(t, found)
	assert.Equal(t, 0, cache.Size(ctx))
}
