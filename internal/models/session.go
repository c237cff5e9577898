package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the token half of a persisted login. ExpiresIn keeps whatever the
// backend sent: values at or above epochCutoff are absolute unix seconds,
// smaller positive values count from IssuedAt.
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type,omitempty"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
}

const epochCutoff = 1_000_000_000

// ExpiresAt resolves the session expiry. When ExpiresIn is unusable the access
// token's exp claim is the fallback. A zero return means the expiry is unknown.
func (s *Session) ExpiresAt() time.Time {
	switch {
	case s.ExpiresIn >= epochCutoff:
		return time.Unix(s.ExpiresIn, 0)
	case s.ExpiresIn > 0 && !s.IssuedAt.IsZero():
		return s.IssuedAt.Add(time.Duration(s.ExpiresIn) * time.Second)
	}

	return tokenExpiry(s.AccessToken)
}

// TimeRemaining returns how long the session has left at the given instant.
// The second return is false when no expiry is known.
func (s *Session) TimeRemaining(now time.Time) (time.Duration, bool) {
	expiresAt := s.ExpiresAt()
	if expiresAt.IsZero() {
		return 0, false
	}

	return expiresAt.Sub(now), true
}

// tokenExpiry pulls the exp claim out of a JWT without verifying the
// signature. Anything that does not parse as a JWT yields a zero time.
func tokenExpiry(token string) time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}

	if claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}

// StoredAuthData is the single unit a login persists: the profile and its
// session together. A record missing either half is not a valid login.
type StoredAuthData struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
}

// Complete reports whether both halves of the record are present.
func (d *StoredAuthData) Complete() bool {
	return d != nil && d.User != nil && d.Session != nil && d.Session.AccessToken != ""
}
