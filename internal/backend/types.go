package backend

import (
	"oracle-dashboard/internal/models"
)

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// AuthPayload is what the backend returns for a successful login or
// registration: the profile and its session in one answer.
type AuthPayload struct {
	User    *models.User    `json:"user"`
	Session *models.Session `json:"session"`
}
