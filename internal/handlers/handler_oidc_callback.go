package handlers

import (
	"net/http"
	"net/url"
	"time"

	"oracle-dashboard/internal/metrics"
	"oracle-dashboard/internal/middlewares"
	"oracle-dashboard/internal/models"
)

func GETCallbackHandler(ctx *middlewares.AppContext) {
	if errorParam := ctx.Request.URL.Query().Get("error"); errorParam != "" {
		errorDesc := ctx.Request.URL.Query().Get("error_description")

		ctx.Logger.Warn("OIDC callback error", "error", errorParam, "description", errorDesc)
		ctx.Redirect("/callback?error="+url.QueryEscape(errorParam), http.StatusFound)
		return
	}

	_, token, user, err := ctx.OIDCProvider.HandleCallback(ctx)
	if err != nil {
		metrics.AuthEventsTotal.WithLabelValues(metrics.AuthEventSSO, metrics.AuthResultError).Inc()
		ctx.Logger.Error("Failed to handle OIDC callback", "error", err)
		ctx.Redirect("/callback?error=auth_failed", http.StatusFound)
		return
	}

	session := &models.Session{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		IssuedAt:    time.Now(),
	}
	if !token.Expiry.IsZero() {
		session.ExpiresIn = token.Expiry.Unix()
	}

	if err := ctx.SessionManager.CreateSession(ctx, user, session); err != nil {
		metrics.AuthEventsTotal.WithLabelValues(metrics.AuthEventSSO, metrics.AuthResultError).Inc()
		ctx.Logger.Error("Failed to persist session", "error", err)
		ctx.Redirect("/callback?error=session_failed", http.StatusFound)
		return
	}

	setTokenCookie(ctx, session)

	metrics.AuthEventsTotal.WithLabelValues(metrics.AuthEventSSO, metrics.AuthResultSuccess).Inc()
	metrics.SessionsCreated.Inc()

	ctx.Logger.Info("User successfully authenticated",
		"user_id", user.Sub,
		"username", user.Username,
		"email", RedactEmail(user.Email),
	)

	redirectTo := ctx.SessionManager.GetRedirectAfterLogin(ctx)
	if redirectTo == "" {
		redirectTo = ctx.Config.Routes.Landing
	}

	ctx.Redirect(redirectTo, http.StatusFound)
}
