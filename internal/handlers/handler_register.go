package handlers

import (
	"encoding/json"
	"net/http"
	"oracle-dashboard/internal/backend"
	"oracle-dashboard/internal/metrics"
	"oracle-dashboard/internal/middlewares"
)

// POSTRegisterHandler creates an account and signs the new user straight in.
// The backend hands back the same payload a login would, so the session flow
// is identical from here on.
func POSTRegisterHandler(ctx *middlewares.AppContext) {
	var registration RegisterRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&registration); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid request body")
		return
	}

	if registration.Email == "" || registration.Password == "" {
		ctx.SetJSONError(http.StatusBadRequest, "email and password are required")
		return
	}

	payload, err := ctx.Backend.Register(ctx.Request.Context(), backend.RegisterRequest{
		Email:       registration.Email,
		Password:    registration.Password,
		DisplayName: registration.DisplayName,
	})
	if err != nil {
		if backend.HasStatus(err, http.StatusConflict) {
			metrics.AuthEventsTotal.WithLabelValues(metrics.AuthEventRegister, metrics.AuthResultRejected).Inc()
			ctx.Logger.Info("Registration rejected for existing email", "email", RedactEmail(registration.Email))
			ctx.SetJSONError(http.StatusConflict, "email already registered")
			return
		}

		metrics.AuthEventsTotal.WithLabelValues(metrics.AuthEventRegister, metrics.AuthResultError).Inc()
		ctx.Logger.Error("Failed to register user", "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "registration failed")
		return
	}

	if err := ctx.SessionManager.CreateSession(ctx, payload.User, payload.Session); err != nil {
		metrics.AuthEventsTotal.WithLabelValues(metrics.AuthEventRegister, metrics.AuthResultError).Inc()
		ctx.Logger.Error("Failed to persist session", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	setTokenCookie(ctx, payload.Session)

	metrics.AuthEventsTotal.WithLabelValues(metrics.AuthEventRegister, metrics.AuthResultSuccess).Inc()
	metrics.SessionsCreated.Inc()

	ctx.Logger.Info("User registered",
		"user_id", payload.User.ID,
		"email", RedactEmail(payload.User.Email),
	)

	ctx.WriteJSON(http.StatusCreated, AuthStatusResponse{Authenticated: true, User: payload.User})
}
