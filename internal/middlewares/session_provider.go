package middlewares

import (
	"net/http"
	"oracle-dashboard/internal/models"
)

//go:generate mockgen -source=session_provider.go -destination=../mocks/session.go -package=mocks

type SessionProvider interface {
	LoadAndSave(next http.Handler) http.Handler

	SetAuthData(ctx *AppContext, user *models.User, session *models.Session) error
	GetAuthData(ctx *AppContext) (*models.StoredAuthData, bool)
	GetCurrentUser(ctx *AppContext) (*models.User, bool)
	GetAuthToken(ctx *AppContext) (string, bool)
	IsAuthenticated(ctx *AppContext) bool
	CreateSession(ctx *AppContext, user *models.User, session *models.Session) error
	SignOut(ctx *AppContext) error
	ClearAuth(ctx *AppContext)

	SetRedirectAfterLogin(ctx *AppContext, redirectAfterLogin string)
	GetRedirectAfterLogin(ctx *AppContext) string

	SetOauthState(ctx *AppContext, state string)
	GetOauthState(ctx *AppContext) string
	ClearOauthState(ctx *AppContext)
	SetOauthNonce(ctx *AppContext, nonce string)
	GetOauthNonce(ctx *AppContext) string
	ClearOauthNonce(ctx *AppContext)
	SetOauthCodeVerifier(ctx *AppContext, verifier string)
	GetOauthCodeVerifier(ctx *AppContext) string
	ClearOauthCodeVerifier(ctx *AppContext)
}
