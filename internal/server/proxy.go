package server

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"oracle-dashboard/internal/middlewares"
)

// newBackendProxy forwards unhandled /api requests to the Oracle backend.
// Browser cookies never leave this process. The session bearer token is
// attached instead, so the backend sees the same credential a direct API
// client would send.
func newBackendProxy(ctx *middlewares.AppContext) (http.Handler, error) {
	target, err := url.Parse(ctx.Config.Backend.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url %q: %w", ctx.Config.Backend.URL, err)
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			pr.Out.Header.Del("Cookie")

			if appCtx := middlewares.GetAppContext(pr.In); appCtx != nil {
				if token, ok := appCtx.SessionManager.GetAuthToken(appCtx); ok {
					pr.Out.Header.Set("Authorization", "Bearer "+token)
				}
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			ctx.Logger.Error("Backend proxy request failed", "path", r.URL.Path, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"error":"backend unavailable"}`))
		},
	}

	return proxy, nil
}
