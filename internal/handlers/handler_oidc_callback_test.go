package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"oracle-dashboard/internal/middlewares"
	"oracle-dashboard/internal/models"
	"oracle-dashboard/internal/testutil"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
)

func TestGetCallbackHandler_ShouldCreateSessionAndRedirect(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/oidc/callback")
	defer tc.Finish()

	testUser := &models.User{
		Sub:      "sub_claim",
		Iss:      "iss_claim",
		Username: "steve",
		Email:    "steve@example.com",
		Groups:   []string{"admin", "dev"},
	}
	idToken := &oidc.IDToken{}
	expiry := time.Now().Add(time.Hour)
	oauthToken := &oauth2.Token{
		AccessToken: "access-token-123",
		TokenType:   "Bearer",
		Expiry:      expiry,
	}

	var captured *models.Session

	tc.MockOIDC.EXPECT().HandleCallback(tc.AppContext).Return(idToken, oauthToken, testUser, nil).Times(1)
	tc.MockSession.EXPECT().CreateSession(tc.AppContext, testUser, gomock.Any()).DoAndReturn(
		func(_ *middlewares.AppContext, _ *models.User, session *models.Session) error {
			captured = session
			return nil
		}).Times(1)
	tc.MockSession.EXPECT().GetRedirectAfterLogin(tc.AppContext).Return("").Times(1)

	tc.CallHandler(GETCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/try-now")
	tc.AssertLogContains(t, slog.LevelInfo, "User successfully authenticated")

	if captured == nil {
		t.Fatal("Expected a session to be persisted")
	}
	if captured.AccessToken != "access-token-123" {
		t.Errorf("Expected the session to carry the access token, got %q", captured.AccessToken)
	}
	if captured.ExpiresIn != expiry.Unix() {
		t.Errorf("Expected the session expiry to match the token, got %d", captured.ExpiresIn)
	}

	if tc.ResponseCookie("auth_token") == nil {
		t.Error("Expected auth_token cookie after SSO login")
	}
}

func TestGetCallbackHandler_ShouldHonorSavedRedirect(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/oidc/callback")
	defer tc.Finish()

	testUser := &models.User{Sub: "sub_claim", Username: "steve"}
	oauthToken := &oauth2.Token{AccessToken: "access-token-123", Expiry: time.Now().Add(time.Hour)}

	tc.MockOIDC.EXPECT().HandleCallback(tc.AppContext).Return(&oidc.IDToken{}, oauthToken, testUser, nil).Times(1)
	tc.MockSession.EXPECT().CreateSession(tc.AppContext, testUser, gomock.Any()).Return(nil).Times(1)
	tc.MockSession.EXPECT().GetRedirectAfterLogin(tc.AppContext).Return("/readings").Times(1)

	tc.CallHandler(GETCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/readings")
}

func TestGetCallbackHandler_ShouldRedirectWithProviderError(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/oidc/callback")
	tc.WithQueryParam("error", "access_denied")
	tc.WithQueryParam("error_description", "user cancelled")
	defer tc.Finish()

	tc.CallHandler(GETCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/callback?error=access_denied")
	tc.AssertLogContains(t, slog.LevelWarn, "OIDC callback error")
}

func TestGetCallbackHandler_ShouldRedirectOnCallbackFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/oidc/callback")
	defer tc.Finish()

	tc.MockOIDC.EXPECT().HandleCallback(tc.AppContext).
		Return(nil, nil, nil, errors.New("state mismatch")).Times(1)

	tc.CallHandler(GETCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/callback?error=auth_failed")
	tc.AssertLogContains(t, slog.LevelError, "Failed to handle OIDC callback")
}

func TestGetCallbackHandler_ShouldRedirectWhenSessionWriteFails(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/oidc/callback")
	defer tc.Finish()

	testUser := &models.User{Sub: "sub_claim", Username: "steve"}
	oauthToken := &oauth2.Token{AccessToken: "access-token-123", Expiry: time.Now().Add(time.Hour)}

	tc.MockOIDC.EXPECT().HandleCallback(tc.AppContext).Return(&oidc.IDToken{}, oauthToken, testUser, nil).Times(1)
	tc.MockSession.EXPECT().CreateSession(tc.AppContext, testUser, gomock.Any()).
		Return(errors.New("store unavailable")).Times(1)

	tc.CallHandler(GETCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/callback?error=session_failed")
	tc.AssertLogContains(t, slog.LevelError, "Failed to persist session")
}
