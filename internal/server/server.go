package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"oracle-dashboard/internal/auth"
	"oracle-dashboard/internal/backend"
	"oracle-dashboard/internal/config"
	"oracle-dashboard/internal/guard"
	"oracle-dashboard/internal/jobs"
	"oracle-dashboard/internal/metrics"
	"oracle-dashboard/internal/middlewares"
	"oracle-dashboard/internal/profiles"
	"oracle-dashboard/internal/version"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promversion "github.com/prometheus/common/version"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
)

type Server struct {
	cfg            *config.Config
	logger         *slog.Logger
	appCtx         *middlewares.AppContext
	httpServer     *http.Server
	debugServer    *http.Server
	profileService *profiles.Service
	cache          profiles.CacheProvider
	jobManager     *jobs.JobManager
	ctx            context.Context
	cancel         context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	sessionManager, err := auth.NewSessionManager(logger, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	var oidcProvider middlewares.OIDCProvider
	if cfg.OIDC != nil {
		provider, err := auth.NewRealOIDCProvider(ctx, *cfg.OIDC)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to initialize oidc provider: %w", err)
		}
		oidcProvider = provider
	}

	backendClient, err := backend.NewClient(cfg, logger)
	if err != nil {
		cancel()
		return nil, err
	}

	cache, err := profiles.NewCacheProvider(cfg, logger)
	if err != nil {
		logger.Error("error setting up cache provider", "error", err)
		cache = nil
	}

	profileService := profiles.NewService(backendClient, cache, cfg, logger)

	navigation := guard.NewNavRegistry(guard.DefaultGrantTTL)

	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		registerBuildInfoCollector(logger)

		if client := sessionManager.RedisClient(); client != nil {
			collector := redisprometheus.NewCollector(metrics.Namespace, "sessions", client)
			if err := prometheus.Register(collector); err != nil {
				logger.Debug("failed to register redis session collector: already registered", "error", err)
			}
		}
	}

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, sessionManager, oidcProvider, backendClient, profileService, navigation)

	jobManager := jobs.NewJobManager(logger)
	jobManager.Register(jobs.NewNavSweepJob(navigation, time.Minute, logger))

	if cache != nil {
		cacheName := metrics.CacheTypeMemory
		if cfg.Cache.Type == "redis" {
			cacheName = metrics.CacheTypeRedis
		}
		jobManager.Register(jobs.NewCacheStatsJob(cache, cacheName, 30*time.Second, logger))
	}

	router, err := setupRouter(appCtx)
	if err != nil {
		cancel()
		return nil, err
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugRouter := setupDebugRouter()
		debugServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler: debugRouter,
		}
	}

	return &Server{
		cfg:            cfg,
		logger:         logger,
		appCtx:         appCtx,
		httpServer:     server,
		debugServer:    debugServer,
		profileService: profileService,
		cache:          cache,
		jobManager:     jobManager,
		ctx:            ctx,
		cancel:         cancel,
	}, nil
}

func (s *Server) Start() error {
	s.jobManager.Start(s.ctx)

	go func() {
		s.logger.Info("Server Started", "port", s.cfg.Server.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Metrics server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.ctx.Done():
		s.logger.Info("Context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	s.jobManager.Shutdown(shutdownCtx)

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	s.logger.Info("Server Exited")
	return nil
}

func registerBuildInfoCollector(logger *slog.Logger) {
	promversion.Version = version.Version
	promversion.Revision = version.GitCommit
	promversion.BuildDate = version.BuildTime

	if err := prometheus.Register(promversion.NewCollector(metrics.Namespace)); err != nil {
		logger.Debug("failed to register build info collector: already registered", "error", err)
	}
}
