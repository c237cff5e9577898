package middlewares

import (
	"net/http"
)

// OptionalAuth resolves the session user into the request principal when one
// exists and lets the request through either way.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if user, ok := appCtx.SessionManager.GetCurrentUser(appCtx); ok {
			appCtx.SetPrincipal(user)
		}

		next.ServeHTTP(w, r)
	})
}

// RequireCookieAuth rejects requests whose session did not resolve to a user.
// The 401 payload is the only authentication error surfaced to callers.
func RequireCookieAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if appCtx.GetPrincipal() == nil {
			appCtx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
			return
		}

		next.ServeHTTP(w, r)
	})
}
