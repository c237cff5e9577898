package handlers

import (
	"encoding/json"
	"net/http"
	"oracle-dashboard/internal/backend"
	"oracle-dashboard/internal/middlewares"
)

// POSTForgotPasswordHandler kicks off a password reset. The answer is 202 no
// matter what happens behind it, so the endpoint cannot be used to probe
// which emails have accounts.
func POSTForgotPasswordHandler(ctx *middlewares.AppContext) {
	var request ForgotPasswordRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&request); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid request body")
		return
	}

	if request.Email == "" {
		ctx.SetJSONError(http.StatusBadRequest, "email is required")
		return
	}

	if err := ctx.Backend.ForgotPassword(ctx.Request.Context(), request.Email); err != nil {
		ctx.Logger.Error("Failed to request password reset", "error", err)
	}

	ctx.SetJSONStatus(http.StatusAccepted, "OK")
}

// POSTResetPasswordHandler redeems a reset token for a new password.
func POSTResetPasswordHandler(ctx *middlewares.AppContext) {
	var request ResetPasswordRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&request); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid request body")
		return
	}

	if request.Token == "" || request.Password == "" {
		ctx.SetJSONError(http.StatusBadRequest, "token and password are required")
		return
	}

	if err := ctx.Backend.ResetPassword(ctx.Request.Context(), backend.ResetPasswordRequest{
		Token:    request.Token,
		Password: request.Password,
	}); err != nil {
		if backend.HasStatus(err, http.StatusBadRequest) {
			ctx.SetJSONError(http.StatusBadRequest, "invalid or expired reset token")
			return
		}

		ctx.Logger.Error("Failed to reset password", "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "password reset failed")
		return
	}

	ctx.SetJSONStatus(http.StatusOK, "OK")
}
