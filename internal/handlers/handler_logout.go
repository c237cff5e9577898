package handlers

import (
	"net/http"
	"oracle-dashboard/internal/metrics"
	"oracle-dashboard/internal/middlewares"
)

// POSTLogoutHandler ends the local session. Backend revocation is best
// effort, the caller always ends up signed out here no matter what the
// backend or the session store say.
func POSTLogoutHandler(ctx *middlewares.AppContext) {
	user, _ := ctx.SessionManager.GetCurrentUser(ctx)

	if token, ok := ctx.SessionManager.GetAuthToken(ctx); ok {
		if err := ctx.Backend.SignOut(ctx.Request.Context(), token); err != nil {
			ctx.Logger.Warn("Backend sign out failed", "error", err)
		}

		ctx.Profiles.Invalidate(ctx.Request.Context(), token)
	}

	if err := ctx.SessionManager.SignOut(ctx); err != nil {
		ctx.Logger.Error("Failed to destroy session", "error", err)
	}

	clearTokenCookie(ctx)

	metrics.AuthEventsTotal.WithLabelValues(metrics.AuthEventSignOut, metrics.AuthResultSuccess).Inc()

	if user != nil {
		ctx.Logger.Info("User signed out", "username", user.Username)
	}

	ctx.SetJSONStatus(http.StatusOK, "OK")
}
