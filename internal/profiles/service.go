package profiles

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"oracle-dashboard/internal/backend"
	"oracle-dashboard/internal/config"
	"oracle-dashboard/internal/models"
	"time"
)

//go:generate mockgen -source=service.go -destination=../mocks/profiles.go -package=mocks -mock_names=Provider=MockProfileProvider

// Provider resolves the profile behind an access token.
type Provider interface {
	Me(ctx context.Context, accessToken string) (*models.User, error)
	Invalidate(ctx context.Context, accessToken string)
}

// UserFetcher is the slice of the backend client the service needs.
type UserFetcher interface {
	Me(ctx context.Context, accessToken string) (*models.User, error)
}

// Service answers profile lookups from the cache and falls back to the
// backend, writing fresh answers back with the configured TTL.
type Service struct {
	fetcher UserFetcher
	cache   CacheProvider
	ttl     time.Duration
	logger  *slog.Logger
}

func NewService(fetcher UserFetcher, cache CacheProvider, cfg *config.Config, logger *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   cache,
		ttl:     cfg.Cache.TTL,
		logger:  logger,
	}
}

func (s *Service) Me(ctx context.Context, accessToken string) (*models.User, error) {
	if accessToken == "" {
		return nil, backend.ErrUnauthenticated
	}

	digest := tokenDigest(accessToken)

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, digest); ok && cached.User != nil {
			return cached.User, nil
		}
	}

	user, err := s.fetcher.Me(ctx, accessToken)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthenticated) && s.cache != nil {
			s.cache.Delete(ctx, digest)
		}

		return nil, err
	}

	if s.cache != nil {
		now := time.Now()
		s.cache.Set(ctx, digest, CachedProfile{
			User:      user,
			FetchedAt: now,
			ExpiresAt: now.Add(s.ttl),
		})
	}

	return user, nil
}

// Invalidate drops the cached profile for a token, if any.
func (s *Service) Invalidate(ctx context.Context, accessToken string) {
	if accessToken == "" || s.cache == nil {
		return
	}

	s.cache.Delete(ctx, tokenDigest(accessToken))
}

// tokenDigest keys cache entries without storing the token itself.
func tokenDigest(accessToken string) string {
	sum := sha256.Sum256([]byte(accessToken))
	return hex.EncodeToString(sum[:])
}
