package server

import (
	"net/http"
	"oracle-dashboard/internal/guard"
	"oracle-dashboard/internal/handlers"
	"oracle-dashboard/internal/middlewares"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext) (*chi.Mux, error) {
	classifier, err := guard.NewClassifier(ctx.Config.Routes)
	if err != nil {
		return nil, err
	}

	proxy, err := newBackendProxy(ctx)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(ctx.SessionManager.LoadAndSave)

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(middleware.Compress(5))

	r.Use(guard.Middleware(classifier, ctx.Navigation, ctx.Config.Sessions.TokenCookie, ctx.Logger))

	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir("web/dist/assets"))))
	r.Handle("/favicon.ico", http.FileServer(http.Dir("web/dist")))

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, "web/dist/index.html")
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.OptionalAuth)

		r.Route("/auth", func(r chi.Router) {
			r.Get("/status", ctx.HandlerFunc(handlers.GETAuthStatusHandler))
			r.Post("/login", ctx.HandlerFunc(handlers.POSTLoginHandler))
			r.Post("/register", ctx.HandlerFunc(handlers.POSTRegisterHandler))
			r.Post("/logout", ctx.HandlerFunc(handlers.POSTLogoutHandler))
			r.Post("/forgot-password", ctx.HandlerFunc(handlers.POSTForgotPasswordHandler))
			r.Post("/reset-password", ctx.HandlerFunc(handlers.POSTResetPasswordHandler))
			r.Get("/me", ctx.HandlerFunc(handlers.GETMeHandler))

			if ctx.Config.OIDC != nil {
				r.Get("/oidc/login", ctx.HandlerFunc(handlers.GETLoginHandler))
				r.Get("/oidc/callback", ctx.HandlerFunc(handlers.GETCallbackHandler))
			}
		})

		r.Route("/nav", func(r chi.Router) {
			r.Post("/allow-once", ctx.HandlerFunc(handlers.POSTNavAllowOnceHandler))
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})

		// Everything else under /api is relayed to the backend. Static
		// siblings above take precedence over the wildcard.
		r.Handle("/*", proxy)
	})

	return r, nil
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
