package handlers

import (
	"net/http"
	"oracle-dashboard/internal/middlewares"
	"oracle-dashboard/internal/models"
	"strings"
)

// RedactEmail is used to redact emails (mostly for logs)
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}

	localRunes := []rune(parts[0])
	domain := parts[1]

	if len(localRunes) <= 2 {
		return strings.Repeat("*", len(localRunes)) + "@" + domain
	}

	first := string(localRunes[0])
	last := string(localRunes[len(localRunes)-1])
	middle := strings.Repeat("*", len(localRunes)-2)

	return first + middle + last + "@" + domain
}

// setTokenCookie marks token presence for the route guard. The cookie never
// carries the token itself, identity always comes from the session record.
func setTokenCookie(ctx *middlewares.AppContext, session *models.Session) {
	cookie := &http.Cookie{
		Name:     ctx.Config.Sessions.TokenCookie,
		Value:    "1",
		Path:     "/",
		HttpOnly: true,
		Secure:   ctx.Config.Sessions.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	if expiresAt := session.ExpiresAt(); !expiresAt.IsZero() {
		cookie.Expires = expiresAt
	}

	http.SetCookie(ctx.Response, cookie)
}

func clearTokenCookie(ctx *middlewares.AppContext) {
	http.SetCookie(ctx.Response, &http.Cookie{
		Name:     ctx.Config.Sessions.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctx.Config.Sessions.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
