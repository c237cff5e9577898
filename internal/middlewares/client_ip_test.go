package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIPMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		headers        map[string]string
		expectedRemote string
	}{
		{
			name:           "direct connection with port",
			remoteAddr:     "203.0.113.1:54321",
			expectedRemote: "203.0.113.1:54321",
		},
		{
			name:           "direct connection without port",
			remoteAddr:     "203.0.113.1",
			expectedRemote: "203.0.113.1:0",
		},
		{
			name:       "true-client-ip wins over the rest",
			remoteAddr: "10.0.0.1:12345",
			headers: map[string]string{
				"True-Client-IP":  "198.51.100.1",
				"X-Real-IP":       "198.51.100.2",
				"X-Forwarded-For": "198.51.100.3",
			},
			expectedRemote: "198.51.100.1:12345",
		},
		{
			name:       "x-real-ip header",
			remoteAddr: "10.0.0.1:12345",
			headers: map[string]string{
				"X-Real-IP": "198.51.100.2",
			},
			expectedRemote: "198.51.100.2:12345",
		},
		{
			name:       "x-forwarded-for takes first hop",
			remoteAddr: "10.0.0.1:12345",
			headers: map[string]string{
				"X-Forwarded-For": "198.51.100.3, 10.0.0.2, 10.0.0.3",
			},
			expectedRemote: "198.51.100.3:12345",
		},
		{
			name:       "invalid header value falls back to remote addr",
			remoteAddr: "10.0.0.1:12345",
			headers: map[string]string{
				"X-Real-IP": "not-an-ip",
			},
			expectedRemote: "10.0.0.1:12345",
		},
		{
			name:       "ipv6 client",
			remoteAddr: "10.0.0.1:12345",
			headers: map[string]string{
				"X-Real-IP": "2001:db8::1",
			},
			expectedRemote: "[2001:db8::1]:12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenRemote string
			handler := ClientIPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenRemote = r.RemoteAddr
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			if seenRemote != tt.expectedRemote {
				t.Errorf("RemoteAddr = %q, want %q", seenRemote, tt.expectedRemote)
			}
		})
	}
}
