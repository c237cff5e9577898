package handlers

import (
	"oracle-dashboard/internal/testutil"
	"testing"
)

func TestHandlerHealth(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/v1/health")
	defer tc.Finish()

	tc.CallHandler(HandlerHealth)

	tc.AssertStatus(t, 200)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "status", "OK")
}
