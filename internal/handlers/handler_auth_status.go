package handlers

import (
	"net/http"
	"oracle-dashboard/internal/middlewares"
)

// GETAuthStatusHandler reports whether the session holds a login. A missing
// or incomplete record answers 401 with authenticated false, never an error.
func GETAuthStatusHandler(ctx *middlewares.AppContext) {
	response := AuthStatusResponse{Authenticated: false}

	if !ctx.SessionManager.IsAuthenticated(ctx) {
		ctx.WriteJSON(http.StatusUnauthorized, response)
		return
	}

	user, ok := ctx.SessionManager.GetCurrentUser(ctx)
	if !ok || user == nil {
		ctx.WriteJSON(http.StatusUnauthorized, response)
		return
	}

	response.Authenticated = true
	response.User = user

	ctx.WriteJSON(http.StatusOK, response)
}
