package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"oracle-dashboard/internal/backend"
	"oracle-dashboard/internal/models"
	"oracle-dashboard/internal/testutil"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

func TestRegisterHandler_ShouldCreateAccountAndSignIn(t *testing.T) {
	tc := testutil.NewTestContext(t).WithJSONBody(t, "POST", "/api/auth/register", RegisterRequest{
		Email:       "steve@example.com",
		Password:    "hunter2",
		DisplayName: "Steve",
	})
	defer tc.Finish()

	testUser := &models.User{ID: "user-1", Username: "steve", DisplayName: "Steve", Email: "steve@example.com"}
	testSession := &models.Session{AccessToken: "token-123", ExpiresIn: 3600, IssuedAt: time.Now()}

	tc.MockBackend.EXPECT().Register(gomock.Any(), backend.RegisterRequest{
		Email:       "steve@example.com",
		Password:    "hunter2",
		DisplayName: "Steve",
	}).Return(&backend.AuthPayload{User: testUser, Session: testSession}, nil)
	tc.MockSession.EXPECT().CreateSession(tc.AppContext, testUser, testSession).Return(nil)

	tc.CallHandler(POSTRegisterHandler)

	tc.AssertStatus(t, http.StatusCreated)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONBool(t, "authenticated", true)
	tc.AssertLogContains(t, slog.LevelInfo, "User registered")

	if tc.ResponseCookie("auth_token") == nil {
		t.Error("Expected auth_token cookie after registration")
	}
}

func TestRegisterHandler_ShouldRejectDuplicateEmail(t *testing.T) {
	tc := testutil.NewTestContext(t).WithJSONBody(t, "POST", "/api/auth/register", RegisterRequest{
		Email:    "taken@example.com",
		Password: "hunter2",
	})
	defer tc.Finish()

	tc.MockBackend.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, &backend.StatusError{Operation: "register", Code: http.StatusConflict})

	tc.CallHandler(POSTRegisterHandler)

	tc.AssertStatus(t, http.StatusConflict)
	tc.AssertJSONField(t, "error", "email already registered")
	tc.AssertLogContains(t, slog.LevelInfo, "Registration rejected for existing email")
}

func TestRegisterHandler_ShouldRequireCredentials(t *testing.T) {
	tc := testutil.NewTestContext(t).WithJSONBody(t, "POST", "/api/auth/register", RegisterRequest{
		Email: "steve@example.com",
	})
	defer tc.Finish()

	tc.CallHandler(POSTRegisterHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "error", "email and password are required")
}

func TestRegisterHandler_ShouldReturnBadGatewayWhenBackendFails(t *testing.T) {
	tc := testutil.NewTestContext(t).WithJSONBody(t, "POST", "/api/auth/register", RegisterRequest{
		Email:    "steve@example.com",
		Password: "hunter2",
	})
	defer tc.Finish()

	tc.MockBackend.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	tc.CallHandler(POSTRegisterHandler)

	tc.AssertStatus(t, http.StatusBadGateway)
	tc.AssertJSONField(t, "error", "registration failed")
	tc.AssertLogContains(t, slog.LevelError, "Failed to register user")
}
