package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedTestToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u-1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	return signed
}

func TestSessionExpiresAt(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	absolute := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		session  Session
		expected time.Time
	}{
		{
			name: "absolute unix seconds",
			session: Session{
				AccessToken: "opaque",
				ExpiresIn:   absolute.Unix(),
				IssuedAt:    issued,
			},
			expected: time.Unix(absolute.Unix(), 0),
		},
		{
			name: "relative to issue time",
			session: Session{
				AccessToken: "opaque",
				ExpiresIn:   3600,
				IssuedAt:    issued,
			},
			expected: issued.Add(time.Hour),
		},
		{
			name: "relative without issue time is unknown",
			session: Session{
				AccessToken: "opaque",
				ExpiresIn:   3600,
			},
			expected: time.Time{},
		},
		{
			name: "opaque token without expiry is unknown",
			session: Session{
				AccessToken: "opaque",
			},
			expected: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.session.ExpiresAt().Equal(tt.expected),
				"got %v, want %v", tt.session.ExpiresAt(), tt.expected)
		})
	}
}

func TestSessionExpiresAtFromTokenClaim(t *testing.T) {
	expiry := time.Now().Add(30 * time.Minute).Truncate(time.Second)

	session := Session{AccessToken: signedTestToken(t, expiry)}

	assert.True(t, session.ExpiresAt().Equal(expiry),
		"got %v, want %v", session.ExpiresAt(), expiry)
}

func TestSessionTimeRemaining(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	session := Session{
		AccessToken: "opaque",
		ExpiresIn:   600,
		IssuedAt:    now.Add(-time.Minute),
	}

	remaining, known := session.TimeRemaining(now)
	assert.True(t, known)
	assert.Equal(t, 9*time.Minute, remaining)
}

func TestSessionTimeRemainingUnknown(t *testing.T) {
	session := Session{AccessToken: "opaque"}

	_, known := session.TimeRemaining(time.Now())
	assert.False(t, known)
}

func TestStoredAuthDataComplete(t *testing.T) {
	user := &User{ID: "u-1"}
	session := &Session{AccessToken: "token"}

	tests := []struct {
		name     string
		data     *StoredAuthData
		complete bool
	}{
		{
			name:     "both halves present",
			data:     &StoredAuthData{User: user, Session: session},
			complete: true,
		},
		{
			name:     "missing user",
			data:     &StoredAuthData{Session: session},
			complete: false,
		},
		{
			name:     "missing session",
			data:     &StoredAuthData{User: user},
			complete: false,
		},
		{
			name:     "session without token",
			data:     &StoredAuthData{User: user, Session: &Session{}},
			complete: false,
		},
		{
			name:     "nil record",
			data:     nil,
			complete: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.complete, tt.data.Complete())
		})
	}
}
