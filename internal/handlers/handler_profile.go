package handlers

import (
	"errors"
	"net/http"
	"oracle-dashboard/internal/backend"
	"oracle-dashboard/internal/middlewares"
	"oracle-dashboard/internal/utils"
)

// GETMeHandler resolves the current profile from the backend. The token comes
// from the session when one exists, otherwise from a bearer header so API
// clients without a browser session still work. A missing token means an
// anonymous caller, not a failure.
func GETMeHandler(ctx *middlewares.AppContext) {
	fromSession := true

	token, ok := ctx.SessionManager.GetAuthToken(ctx)
	if !ok {
		header, err := utils.ExtractAuthorizationHeader(ctx.Request)
		if err != nil {
			ctx.SetJSONError(http.StatusUnauthorized, "not authenticated")
			return
		}

		fromSession = false
		token = header
	}

	user, err := ctx.Profiles.Me(ctx.Request.Context(), token)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthenticated) {
			if fromSession {
				ctx.SessionManager.ClearAuth(ctx)
				clearTokenCookie(ctx)
			}

			ctx.SetJSONError(http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx.Logger.Error("Failed to fetch profile", "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "profile lookup failed")
		return
	}

	ctx.WriteJSON(http.StatusOK, user)
}
