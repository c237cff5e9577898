package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"oracle-dashboard/internal/backend"
	"oracle-dashboard/internal/metrics"
	"oracle-dashboard/internal/middlewares"
)

// POSTLoginHandler exchanges credentials for a backend session and persists
// it server side. The browser only ever sees the session cookie and the
// token presence marker, the access token itself never leaves the server.
func POSTLoginHandler(ctx *middlewares.AppContext) {
	if ctx.SessionManager.IsAuthenticated(ctx) {
		if user, ok := ctx.SessionManager.GetCurrentUser(ctx); ok && user != nil {
			ctx.Logger.Debug("User already authenticated")
			ctx.WriteJSON(http.StatusOK, AuthStatusResponse{Authenticated: true, User: user})
			return
		}
	}

	var credentials LoginRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&credentials); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid request body")
		return
	}

	if credentials.Email == "" || credentials.Password == "" {
		ctx.SetJSONError(http.StatusBadRequest, "email and password are required")
		return
	}

	payload, err := ctx.Backend.SignIn(ctx.Request.Context(), backend.SignInRequest{
		Email:    credentials.Email,
		Password: credentials.Password,
	})
	if err != nil {
		if errors.Is(err, backend.ErrUnauthenticated) {
			metrics.AuthEventsTotal.WithLabelValues(metrics.AuthEventSignIn, metrics.AuthResultRejected).Inc()
			ctx.Logger.Info("Sign in rejected", "email", RedactEmail(credentials.Email))
			ctx.SetJSONError(http.StatusUnauthorized, "invalid credentials")
			return
		}

		metrics.AuthEventsTotal.WithLabelValues(metrics.AuthEventSignIn, metrics.AuthResultError).Inc()
		ctx.Logger.Error("Failed to sign in against backend", "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "sign in failed")
		return
	}

	if err := ctx.SessionManager.CreateSession(ctx, payload.User, payload.Session); err != nil {
		metrics.AuthEventsTotal.WithLabelValues(metrics.AuthEventSignIn, metrics.AuthResultError).Inc()
		ctx.Logger.Error("Failed to persist session", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	setTokenCookie(ctx, payload.Session)

	metrics.AuthEventsTotal.WithLabelValues(metrics.AuthEventSignIn, metrics.AuthResultSuccess).Inc()
	metrics.SessionsCreated.Inc()

	ctx.Logger.Info("User signed in",
		"user_id", payload.User.ID,
		"email", RedactEmail(payload.User.Email),
	)

	ctx.WriteJSON(http.StatusOK, AuthStatusResponse{Authenticated: true, User: payload.User})
}
