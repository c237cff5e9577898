package guard

import (
	"log/slog"
	"net/http"
	"oracle-dashboard/internal/metrics"
	"oracle-dashboard/internal/models"
	"strings"
	"time"
)

// Paths outside the guard's matcher. API calls answer with status codes, not
// redirects, and assets are public by construction.
var skipPrefixes = []string{"/api/", "/assets/", "/debug/"}

func guardedPath(path string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}

	return path != "/favicon.ico"
}

// Middleware enforces classifier decisions on page navigations. Token
// presence comes from the auth cookie alone, the session store is never
// consulted here, so a stale cookie passes the guard and the page's API
// calls degrade to logged-out behavior.
func Middleware(classifier *Classifier, registry *NavRegistry, tokenCookie string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if !guardedPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			tokenPresent := hasCookie(r, tokenCookie)

			switch classifier.Decide(path, tokenPresent) {
			case DecisionRedirectLogin:
				// A live navigation grant admits exactly one
				// unauthenticated visit, then it is gone.
				if state, ok := consumeGrant(r, registry); ok && state.AllowUnauthenticatedAccess {
					metrics.GuardDecisionsTotal.WithLabelValues(metrics.GuardOutcomeBypass).Inc()
					clearGrantCookie(w)
					logger.Debug("navigation grant admitted unauthenticated visit", "path", path)
					next.ServeHTTP(w, r)
					return
				}

				metrics.GuardDecisionsTotal.WithLabelValues(metrics.GuardOutcomeRedirectLogin).Inc()
				logger.Debug("redirecting unauthenticated visit to login", "path", path)
				http.Redirect(w, r, classifier.LoginRedirectURL(path), http.StatusFound)

			case DecisionRedirectLanding:
				metrics.GuardDecisionsTotal.WithLabelValues(metrics.GuardOutcomeRedirectLanding).Inc()
				logger.Debug("redirecting authenticated visit off auth page", "path", path)
				http.Redirect(w, r, classifier.LandingURL(), http.StatusFound)

			default:
				metrics.GuardDecisionsTotal.WithLabelValues(metrics.GuardOutcomeAllow).Inc()
				next.ServeHTTP(w, r)
			}
		})
	}
}

// hasCookie checks existence only. Whether the token inside is valid is the
// backend's problem, not the guard's.
func hasCookie(r *http.Request, name string) bool {
	_, err := r.Cookie(name)
	return err == nil
}

func consumeGrant(r *http.Request, registry *NavRegistry) (models.NavigationState, bool) {
	cookie, err := r.Cookie(GrantCookieName)
	if err != nil {
		return models.NavigationState{}, false
	}

	return registry.Consume(cookie.Value)
}

// SetGrantCookie attaches a grant id to the response for the next navigation.
func SetGrantCookie(w http.ResponseWriter, id string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     GrantCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearGrantCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     GrantCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
