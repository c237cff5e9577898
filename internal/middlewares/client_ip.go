package middlewares

import (
	"net"
	"net/http"
	"strings"
)

// Proxy headers consulted for the real client address, most trustworthy
// first. X-Forwarded-For may carry a hop list, only its first entry counts.
var clientIPHeaders = []string{"True-Client-IP", "X-Real-IP", "X-Forwarded-For"}

// ClientIPMiddleware rewrites RemoteAddr to "IP:port" using the proxy
// headers, so downstream logging and rate decisions see one consistent form.
func ClientIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if clientIP := resolveClientIP(r); clientIP != "" {
			if _, port, err := net.SplitHostPort(r.RemoteAddr); err == nil && port != "" {
				r.RemoteAddr = net.JoinHostPort(clientIP, port)
			} else {
				r.RemoteAddr = net.JoinHostPort(clientIP, "0")
			}
		}

		next.ServeHTTP(w, r)
	})
}

func resolveClientIP(r *http.Request) string {
	for _, header := range clientIPHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}

		if header == "X-Forwarded-For" {
			value, _, _ = strings.Cut(value, ",")
		}

		if parsed := net.ParseIP(strings.TrimSpace(value)); parsed != nil {
			return parsed.String()
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if parsed := net.ParseIP(host); parsed != nil {
		return parsed.String()
	}

	return ""
}
