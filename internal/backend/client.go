package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"oracle-dashboard/internal/config"
	"oracle-dashboard/internal/metrics"
	"oracle-dashboard/internal/models"
	"oracle-dashboard/internal/version"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Client talks to the product backend. One request per call: no retries, no
// timeouts beyond the configured client timeout, failures degrade to "no
// user" at the caller.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	baseURL, err := url.Parse(cfg.Backend.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing backend url: %w", err)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.Backend.Timeout},
		userAgent:  "oracle-dashboard/" + version.GetVersion(),
		logger:     logger,
	}, nil
}

// Me fetches the profile belonging to an access token. 401 and 403 map to
// ErrUnauthenticated, everything else non-2xx to a StatusError.
func (c *Client) Me(ctx context.Context, accessToken string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, "me", http.MethodGet, "/api/auth/me", accessToken, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) SignIn(ctx context.Context, credentials SignInRequest) (*AuthPayload, error) {
	var payload AuthPayload
	if err := c.do(ctx, "sign_in", http.MethodPost, "/api/auth/login", "", credentials, &payload); err != nil {
		return nil, err
	}

	if err := validatePayload(&payload); err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	return &payload, nil
}

func (c *Client) Register(ctx context.Context, registration RegisterRequest) (*AuthPayload, error) {
	var payload AuthPayload
	if err := c.do(ctx, "register", http.MethodPost, "/api/auth/register", "", registration, &payload); err != nil {
		return nil, err
	}

	if err := validatePayload(&payload); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	return &payload, nil
}

// SignOut revokes the token server side. Best effort, the local session is
// gone either way.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, "sign_out", http.MethodPost, "/api/auth/logout", accessToken, nil, nil)
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, "forgot_password", http.MethodPost, "/api/auth/forgot-password", "", forgotPasswordRequest{Email: email}, nil)
}

func (c *Client) ResetPassword(ctx context.Context, reset ResetPasswordRequest) error {
	return c.do(ctx, "reset_password", http.MethodPost, "/api/auth/reset-password", "", reset, nil)
}

// validatePayload refuses half answers. A token without a profile or a
// profile without a token never reaches the session store.
func validatePayload(payload *AuthPayload) error {
	if payload.User == nil || payload.Session == nil || payload.Session.AccessToken == "" {
		return fmt.Errorf("backend answer is missing the user or the session")
	}

	return nil
}

func (c *Client) do(ctx context.Context, operation, method, path, accessToken string, body, out any) error {
	start := time.Now()

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding backend %s request: %w", operation, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), payload)
	if err != nil {
		return fmt.Errorf("building backend %s request: %w", operation, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if accessToken != "" {
		bearer := &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}
		bearer.SetAuthHeader(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.BackendRequestErrors.WithLabelValues(operation).Inc()
		return fmt.Errorf("backend %s request failed: %w", operation, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("error closing backend response body", "error", err)
		}
	}()

	metrics.BackendRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	metrics.BackendRequestsTotal.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthenticated
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return &StatusError{Operation: operation, Code: resp.StatusCode}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.BackendRequestErrors.WithLabelValues(operation).Inc()
		return fmt.Errorf("decoding backend %s response: %w", operation, err)
	}

	return nil
}
