package utils

import (
	"errors"
	"net/http/httptest"
	"testing"
)

func TestExtractAuthorizationHeader(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		expected    string
		expectedErr error
	}{
		{
			name:        "valid bearer token",
			header:      "Bearer abc123",
			expected:    "abc123",
			expectedErr: nil,
		},
		{
			name:        "lowercase scheme is accepted",
			header:      "bearer abc123",
			expected:    "abc123",
			expectedErr: nil,
		},
		{
			name:        "missing header",
			header:      "",
			expected:    "",
			expectedErr: ErrMissingAuthzHeader,
		},
		{
			name:        "scheme without token",
			header:      "Bearer",
			expected:    "",
			expectedErr: ErrInvalidAuthzHeader,
		},
		{
			name:        "unsupported scheme",
			header:      "Basic dXNlcjpwYXNz",
			expected:    "",
			expectedErr: ErrUnsupportedAuthzScheme,
		},
		{
			name:        "empty token after scheme",
			header:      "Bearer ",
			expected:    "",
			expectedErr: ErrMissingAuthzToken,
		},
		{
			name:        "token containing spaces keeps remainder",
			header:      "Bearer abc 123",
			expected:    "abc 123",
			expectedErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := ExtractAuthorizationHeader(req)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("ExtractAuthorizationHeader(%q) error = %v, expected %v",
						tt.header, err, tt.expectedErr)
				}
				return
			}

			if err != nil {
				t.Errorf("ExtractAuthorizationHeader(%q) unexpected error: %v", tt.header, err)
			}
			if token != tt.expected {
				t.Errorf("ExtractAuthorizationHeader(%q) = %q, expected %q",
					tt.header, token, tt.expected)
			}
		})
	}
}
