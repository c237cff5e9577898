package handlers

import (
	"net/http"
	"oracle-dashboard/internal/guard"
	"oracle-dashboard/internal/middlewares"
	"oracle-dashboard/internal/models"
)

// POSTNavAllowOnceHandler hands out a single use pass through the route
// guard. The SPA requests one right before steering a guest into a protected
// page, the guard consumes it on the next matching navigation.
func POSTNavAllowOnceHandler(ctx *middlewares.AppContext) {
	id := ctx.Navigation.Grant(models.NavigationState{AllowUnauthenticatedAccess: true})

	guard.SetGrantCookie(ctx.Response, id, ctx.Navigation.TTL(), ctx.Config.Sessions.Secure)

	ctx.Logger.Debug("Issued navigation grant")

	ctx.SetJSONStatus(http.StatusOK, "OK")
}
