package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"oracle-dashboard/internal/backend"
	"oracle-dashboard/internal/models"
	"oracle-dashboard/internal/testutil"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

func TestLoginHandler_ShouldSignInAndPersistSession(t *testing.T) {
	tc := testutil.NewTestContext(t).WithJSONBody(t, "POST", "/api/auth/login", LoginRequest{
		Email:    "steve@example.com",
		Password: "hunter2",
	})
	defer tc.Finish()

	testUser := &models.User{ID: "user-1", Username: "steve", Email: "steve@example.com"}
	testSession := &models.Session{AccessToken: "token-123", ExpiresIn: 3600, IssuedAt: time.Now()}

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)
	tc.MockBackend.EXPECT().SignIn(gomock.Any(), backend.SignInRequest{
		Email:    "steve@example.com",
		Password: "hunter2",
	}).Return(&backend.AuthPayload{User: testUser, Session: testSession}, nil)
	tc.MockSession.EXPECT().CreateSession(tc.AppContext, testUser, testSession).Return(nil)

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONBool(t, "authenticated", true)
	tc.AssertLogContains(t, slog.LevelInfo, "User signed in")

	cookie := tc.ResponseCookie("auth_token")
	if cookie == nil {
		t.Fatal("Expected auth_token cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Error("Expected auth_token cookie to be HttpOnly")
	}
	if cookie.Expires.IsZero() {
		t.Error("Expected auth_token cookie to carry the session expiry")
	}
}

func TestLoginHandler_ShouldRejectInvalidCredentials(t *testing.T) {
	tc := testutil.NewTestContext(t).WithJSONBody(t, "POST", "/api/auth/login", LoginRequest{
		Email:    "steve@example.com",
		Password: "wrong",
	})
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)
	tc.MockBackend.EXPECT().SignIn(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("backend sign_in returned status 401: %w", backend.ErrUnauthenticated))

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONField(t, "error", "invalid credentials")
	tc.AssertLogContains(t, slog.LevelInfo, "Sign in rejected")

	if tc.ResponseCookie("auth_token") != nil {
		t.Error("Expected no auth_token cookie on a rejected login")
	}
}

func TestLoginHandler_ShouldRejectMalformedBody(t *testing.T) {
	tc := testutil.NewTestContext(t).WithRawBody("POST", "/api/auth/login", "{not json")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "error", "invalid request body")
}

func TestLoginHandler_ShouldRequireEmailAndPassword(t *testing.T) {
	tc := testutil.NewTestContext(t).WithJSONBody(t, "POST", "/api/auth/login", LoginRequest{
		Email: "steve@example.com",
	})
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "error", "email and password are required")
}

func TestLoginHandler_ShouldReturnBadGatewayWhenBackendFails(t *testing.T) {
	tc := testutil.NewTestContext(t).WithJSONBody(t, "POST", "/api/auth/login", LoginRequest{
		Email:    "steve@example.com",
		Password: "hunter2",
	})
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)
	tc.MockBackend.EXPECT().SignIn(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusBadGateway)
	tc.AssertJSONField(t, "error", "sign in failed")
	tc.AssertLogContains(t, slog.LevelError, "Failed to sign in against backend")
}

func TestLoginHandler_Should500WhenSessionWriteFails(t *testing.T) {
	tc := testutil.NewTestContext(t).WithJSONBody(t, "POST", "/api/auth/login", LoginRequest{
		Email:    "steve@example.com",
		Password: "hunter2",
	})
	defer tc.Finish()

	testUser := &models.User{ID: "user-1", Username: "steve"}
	testSession := &models.Session{AccessToken: "token-123", ExpiresIn: 3600, IssuedAt: time.Now()}

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)
	tc.MockBackend.EXPECT().SignIn(gomock.Any(), gomock.Any()).
		Return(&backend.AuthPayload{User: testUser, Session: testSession}, nil)
	tc.MockSession.EXPECT().CreateSession(tc.AppContext, testUser, testSession).
		Return(errors.New("store unavailable"))

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertJSONField(t, "error", "Internal Server Error")
	tc.AssertLogContains(t, slog.LevelError, "Failed to persist session")
}

func TestLoginHandler_ShouldShortCircuitWhenAlreadyAuthenticated(t *testing.T) {
	tc := testutil.NewTestContext(t).WithJSONBody(t, "POST", "/api/auth/login", LoginRequest{
		Email:    "steve@example.com",
		Password: "hunter2",
	})
	defer tc.Finish()

	testUser := &models.User{ID: "user-1", Username: "steve"}

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetCurrentUser(tc.AppContext).Return(testUser, true)

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", true)
	tc.AssertLogContains(t, slog.LevelDebug, "User already authenticated")
}
