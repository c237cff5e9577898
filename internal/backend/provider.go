package backend

import (
	"context"
	"oracle-dashboard/internal/models"
)

//go:generate mockgen -source=provider.go -destination=../mocks/backend.go -package=mocks -mock_names=Provider=MockBackendProvider

type Provider interface {
	Me(ctx context.Context, accessToken string) (*models.User, error)
	SignIn(ctx context.Context, credentials SignInRequest) (*AuthPayload, error)
	Register(ctx context.Context, registration RegisterRequest) (*AuthPayload, error)
	SignOut(ctx context.Context, accessToken string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, reset ResetPasswordRequest) error
}
