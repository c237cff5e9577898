package handlers

import (
	"net/http"
	"oracle-dashboard/internal/models"
	"oracle-dashboard/internal/testutil"
	"testing"
)

func TestAuthStatusHandler_ShouldReturnUnauthorizedForAnonymousUser(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)

	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONBool(t, "authenticated", false)
}

func TestAuthStatusHandler_ShouldReturnUserWhenAuthenticated(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	testUser := &models.User{
		ID:       "user-1",
		Username: "steve",
		Email:    "steve@example.com",
	}

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetCurrentUser(tc.AppContext).Return(testUser, true)

	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONBool(t, "authenticated", true)
	tc.AssertJSONObject(t, "user", map[string]interface{}{
		"id":    "user-1",
		"name":  "steve",
		"email": "steve@example.com",
	})
}

func TestAuthStatusHandler_ShouldReturnUnauthorizedWhenUserRecordMissing(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)
	tc.MockSession.EXPECT().GetCurrentUser(tc.AppContext).Return(nil, false)

	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONBool(t, "authenticated", false)
}
