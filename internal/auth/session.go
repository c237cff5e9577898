package auth

import (
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"net/http"
	"oracle-dashboard/internal/config"
	"oracle-dashboard/internal/middlewares"
	"oracle-dashboard/internal/models"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/redis/go-redis/v9"
)

// SessionManager is the single source of truth for "is there a logged-in
// user". It persists a StoredAuthData record per session and fails safe:
// anything unreadable in the store reads as logged out.
type SessionManager struct {
	*scs.SessionManager

	logger      *slog.Logger
	redisClient *redis.Client
}

func NewSessionManager(logger *slog.Logger, cfg *config.Config) (*SessionManager, error) {
	gob.Register(&models.StoredAuthData{})
	sessionManager := scs.New()

	var redisClient *redis.Client

	switch cfg.Sessions.Store {
	case "memory":
		sessionManager.Store = memstore.New()
	case "redis":
		var client *redis.Client

		if cfg.Redis.Sentinel != nil {
			logger.Info("connecting to redis via sentinel",
				"master", cfg.Redis.Sentinel.MasterName,
				"sentinels", cfg.Redis.Sentinel.SentinelAddresses)

			client = redis.NewFailoverClient(&redis.FailoverOptions{
				MasterName:       cfg.Redis.Sentinel.MasterName,
				SentinelAddrs:    cfg.Redis.Sentinel.SentinelAddresses,
				SentinelPassword: cfg.Redis.Sentinel.SentinelPassword,
				Password:         cfg.Redis.Password,
				DB:               cfg.Redis.SessionIndex,
				MinIdleConns:     2,
			})
		} else {
			client = redis.NewClient(&redis.Options{
				Addr:         cfg.Redis.Address,
				Password:     cfg.Redis.Password,
				DB:           cfg.Redis.SessionIndex,
				MinIdleConns: 2,
			})
		}

		ctx := context.Background()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis connection failed: %w", err)
		}

		sessionManager.Store = goredisstore.New(client)
		redisClient = client
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Sessions.Store)
	}

	sessionManager.Lifetime = cfg.Sessions.FixedTimeout

	sessionManager.Cookie.Name = cfg.Sessions.Name
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Sessions.Secure
	sessionManager.Cookie.Path = "/"

	return &SessionManager{SessionManager: sessionManager, logger: logger, redisClient: redisClient}, nil
}

// RedisClient exposes the underlying redis client for pool instrumentation.
// It is nil when sessions are stored in memory.
func (s *SessionManager) RedisClient() *redis.Client {
	return s.redisClient
}

func (s *SessionManager) LoadAndSave(next http.Handler) http.Handler {
	return s.SessionManager.LoadAndSave(next)
}

// SetAuthData persists the (user, session) pair. Partial records are refused:
// a token without a profile, or a profile without a token, never reaches the
// store.
func (s *SessionManager) SetAuthData(ctx *middlewares.AppContext, user *models.User, session *models.Session) error {
	if user == nil || session == nil || session.AccessToken == "" {
		return fmt.Errorf("auth data must include both a user and a session token")
	}

	if session.IssuedAt.IsZero() {
		session.IssuedAt = time.Now()
	}

	s.Put(ctx, string(SessionKeyAuthData), &models.StoredAuthData{User: user, Session: session})

	return nil
}

// GetAuthData returns the persisted record, or (nil, false) when there is
// none. A record of the wrong type or missing either half is treated the same
// as no record and is removed from the store.
func (s *SessionManager) GetAuthData(ctx *middlewares.AppContext) (*models.StoredAuthData, bool) {
	data := s.Get(ctx, string(SessionKeyAuthData))
	if data == nil {
		return nil, false
	}

	stored, ok := data.(*models.StoredAuthData)
	if !ok || !stored.Complete() {
		s.logger.Warn("discarding malformed auth data from session store")
		s.Remove(ctx, string(SessionKeyAuthData))
		return nil, false
	}

	return stored, true
}

// IsAuthenticated reports whether a complete auth record exists. It is a
// presence check only, token expiry is not consulted.
func (s *SessionManager) IsAuthenticated(ctx *middlewares.AppContext) bool {
	_, ok := s.GetAuthData(ctx)
	return ok
}

// GetAuthToken returns the access token of the current session. A token close
// to expiry is logged but still returned, nothing here refreshes it.
func (s *SessionManager) GetAuthToken(ctx *middlewares.AppContext) (string, bool) {
	data, ok := s.GetAuthData(ctx)
	if !ok {
		return "", false
	}

	if remaining, known := data.Session.TimeRemaining(time.Now()); known && remaining <= expiryWarningWindow {
		s.logger.Warn("session token close to expiry",
			"remaining", remaining.Round(time.Second),
			"user", data.User.ID)
	}

	return data.Session.AccessToken, true
}

func (s *SessionManager) GetCurrentUser(ctx *middlewares.AppContext) (*models.User, bool) {
	data, ok := s.GetAuthData(ctx)
	if !ok {
		return nil, false
	}

	return data.User, true
}

// CreateSession validates and persists a fresh login. Sessions whose token is
// already expired are rejected.
func (s *SessionManager) CreateSession(ctx *middlewares.AppContext, user *models.User, session *models.Session) error {
	if session != nil && session.IssuedAt.IsZero() {
		session.IssuedAt = time.Now()
	}

	if session != nil {
		if expiresAt := session.ExpiresAt(); !expiresAt.IsZero() && !time.Now().Before(expiresAt) {
			return fmt.Errorf("token already expired")
		}
	}

	return s.SetAuthData(ctx, user, session)
}

// SignOut destroys the whole session record unconditionally. IsAuthenticated
// reports false from the next call on.
func (s *SessionManager) SignOut(ctx *middlewares.AppContext) error {
	return s.Destroy(ctx.Request.Context())
}

// ClearAuth removes only the auth record, leaving the rest of the session
// (oauth handshake state, post-login redirect) in place.
func (s *SessionManager) ClearAuth(ctx *middlewares.AppContext) {
	s.Remove(ctx, string(SessionKeyAuthData))
}

func (s *SessionManager) SetRedirectAfterLogin(ctx *middlewares.AppContext, redirectAfterLogin string) {
	s.Put(ctx, string(SessionKeyRedirectAfterLogin), redirectAfterLogin)
}

func (s *SessionManager) GetRedirectAfterLogin(ctx *middlewares.AppContext) string {
	return s.GetString(ctx, string(SessionKeyRedirectAfterLogin))
}

func (s *SessionManager) SetOauthState(ctx *middlewares.AppContext, state string) {
	s.Put(ctx, string(SessionKeyOauthState), state)
}

func (s *SessionManager) GetOauthState(ctx *middlewares.AppContext) string {
	return s.GetString(ctx, string(SessionKeyOauthState))
}

func (s *SessionManager) ClearOauthState(ctx *middlewares.AppContext) {
	s.Remove(ctx, string(SessionKeyOauthState))
}

func (s *SessionManager) SetOauthNonce(ctx *middlewares.AppContext, nonce string) {
	s.Put(ctx, string(SessionKeyOauthNonce), nonce)
}

func (s *SessionManager) GetOauthNonce(ctx *middlewares.AppContext) string {
	return s.GetString(ctx, string(SessionKeyOauthNonce))
}

func (s *SessionManager) ClearOauthNonce(ctx *middlewares.AppContext) {
	s.Remove(ctx, string(SessionKeyOauthNonce))
}

func (s *SessionManager) SetOauthCodeVerifier(ctx *middlewares.AppContext, verifier string) {
	s.Put(ctx, string(SessionKeyOauthCodeVerifier), verifier)
}

func (s *SessionManager) GetOauthCodeVerifier(ctx *middlewares.AppContext) string {
	return s.GetString(ctx, string(SessionKeyOauthCodeVerifier))
}

func (s *SessionManager) ClearOauthCodeVerifier(ctx *middlewares.AppContext) {
	s.Remove(ctx, string(SessionKeyOauthCodeVerifier))
}
