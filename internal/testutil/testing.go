package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"oracle-dashboard/internal/config"
	"oracle-dashboard/internal/guard"
	"oracle-dashboard/internal/middlewares"
	"oracle-dashboard/internal/mocks"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

// TestContext holds everything needed for testing handlers
type TestContext struct {
	AppContext     *middlewares.AppContext
	Request        *http.Request
	Response       *httptest.ResponseRecorder
	MockController *gomock.Controller
	MockSession    *mocks.MockSessionProvider
	MockOIDC       *mocks.MockOIDCProvider
	MockBackend    *mocks.MockBackendProvider
	MockProfiles   *mocks.MockProfileProvider
	LogHandler     *LogRecorder
}

// TestConfig returns a config populated with the same defaults validation
// would apply, so handlers see realistic route and cookie names.
func TestConfig() *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Port: 8080},
		Log:      config.DefaultLogConfig,
		Sessions: config.DefaultSessionConfig,
		Routes:   config.DefaultRoutesConfig,
		Backend:  config.DefaultBackendConfig,
		Cache:    config.DefaultCacheConfig,
	}
}

func NewTestContext(t *testing.T) *TestContext {
	cfg := TestConfig()

	logHandler := NewLogRecorder()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)

	mockSession := mocks.NewMockSessionProvider(ctrl)
	mockOIDC := mocks.NewMockOIDCProvider(ctrl)
	mockBackend := mocks.NewMockBackendProvider(ctrl)
	mockProfiles := mocks.NewMockProfileProvider(ctrl)

	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:        context.Background(),
		Config:         cfg,
		Logger:         logger,
		SessionManager: mockSession,
		OIDCProvider:   mockOIDC,
		Backend:        mockBackend,
		Profiles:       mockProfiles,
		Navigation:     guard.NewNavRegistry(guard.DefaultGrantTTL),
		Request:        nil,
		Response:       rr,
	}

	return &TestContext{
		AppContext:     appCtx,
		Request:        nil,
		Response:       rr,
		MockController: ctrl,
		MockSession:    mockSession,
		MockOIDC:       mockOIDC,
		MockBackend:    mockBackend,
		MockProfiles:   mockProfiles,
		LogHandler:     logHandler,
	}
}

// NewTestContextWithURL creates a complete test setup with sensible defaults
func NewTestContextWithURL(t *testing.T, method, url string) *TestContext {
	tc := NewTestContext(t)

	req := httptest.NewRequest(method, url, nil)

	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()

	return tc
}

// Finish should be called at the end of tests to clean up mocks
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// AssertRedirect checks a redirect status and its Location header
func (tc *TestContext) AssertRedirect(t *testing.T, expectedStatus int, expectedLocation string) {
	tc.AssertStatus(t, expectedStatus)
	if loc := tc.Response.Header().Get("Location"); loc != expectedLocation {
		t.Errorf("Expected redirect to %s, got %s", expectedLocation, loc)
	}
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// AssertJSONField checks a specific field in a JSON response
func (tc *TestContext) AssertJSONField(t *testing.T, field string, expected any) {
	response := tc.GetJSONResponse(t)
	if actual, ok := response[field]; !ok || actual != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, response[field])
	}
}

func (tc *TestContext) AssertJSONBool(t *testing.T, field string, expected bool) {
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualBool, ok := actual.(bool)
	if !ok {
		t.Errorf("Expected %s to be a boolean, got %T", field, actual)
		return
	}

	if actualBool != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, actualBool)
	}
}

// AssertJSONString checks a specific string field in a JSON response
func (tc *TestContext) AssertJSONString(t *testing.T, field string, expected string) {
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualString, ok := actual.(string)
	if !ok {
		t.Errorf("Expected %s to be a string, got %T", field, actual)
		return
	}

	if actualString != expected {
		t.Errorf("Expected %s to be %q, got %q", field, expected, actualString)
	}
}

// AssertJSONObject validates an object field with expected key-value pairs
func (tc *TestContext) AssertJSONObject(t *testing.T, field string, expectedFields map[string]interface{}) {
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualObj, ok := actual.(map[string]interface{})
	if !ok {
		t.Errorf("Expected %s to be an object, got %T", field, actual)
		return
	}

	for key, expectedValue := range expectedFields {
		if actualValue, keyExists := actualObj[key]; !keyExists {
			t.Errorf("Expected field %s.%s to exist", field, key)
		} else if actualValue != expectedValue {
			t.Errorf("Expected %s.%s to be %v, got %v", field, key, expectedValue, actualValue)
		}
	}
}

// ResponseCookie returns the named cookie set on the response, if any.
func (tc *TestContext) ResponseCookie(name string) *http.Cookie {
	for _, cookie := range tc.Response.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// WithConfig allows you to override the default config for specific tests
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	return tc
}

// WithLogger allows you to override the default logger for specific tests
func (tc *TestContext) WithLogger(logger *slog.Logger) *TestContext {
	tc.AppContext.Logger = logger
	return tc
}

// WithJSONBody replaces the request with one carrying the value as JSON
func (tc *TestContext) WithJSONBody(t *testing.T, method, url string, body any) *TestContext {
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Could not marshal request body: %v", err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()

	return tc
}

// WithRawBody replaces the request with one carrying an arbitrary body
func (tc *TestContext) WithRawBody(method, url, body string) *TestContext {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()

	return tc
}

// WithNavTTL swaps the navigation registry for one with a custom ttl
func (tc *TestContext) WithNavTTL(ttl time.Duration) *TestContext {
	tc.AppContext.Navigation = guard.NewNavRegistry(ttl)
	return tc
}

// Helper to add query parameters to the request
func (tc *TestContext) WithQueryParam(key, value string) *TestContext {
	q := tc.Request.URL.Query()
	q.Add(key, value)
	tc.Request.URL.RawQuery = q.Encode()
	return tc
}

// Helper to add headers
func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}

// Helper to attach a cookie to the request
func (tc *TestContext) WithCookie(name, value string) *TestContext {
	tc.Request.AddCookie(&http.Cookie{Name: name, Value: value})
	return tc
}

// ExpectSessionIsAuthenticated sets up an expectation for session.IsAuthenticated()
func (tc *TestContext) ExpectSessionIsAuthenticated(result bool) *gomock.Call {
	return tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(result)
}

// ExpectSessionGetCurrentUser sets up an expectation for session.GetCurrentUser()
func (tc *TestContext) ExpectSessionGetCurrentUser(user interface{}, ok bool) *gomock.Call {
	return tc.MockSession.EXPECT().GetCurrentUser(tc.AppContext).Return(user, ok)
}

// ExpectSessionGetAuthToken sets up an expectation for session.GetAuthToken()
func (tc *TestContext) ExpectSessionGetAuthToken(token string, ok bool) *gomock.Call {
	return tc.MockSession.EXPECT().GetAuthToken(tc.AppContext).Return(token, ok)
}
