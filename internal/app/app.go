// Package app wires configuration, storage, services and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/topiclog/internal/adapter/provider/google"
	"github.com/heartmarshall/topiclog/internal/adapter/provider/wikipedia"
	"github.com/heartmarshall/topiclog/internal/adapter/storage"
	"github.com/heartmarshall/topiclog/internal/auth"
	"github.com/heartmarshall/topiclog/internal/config"
	"github.com/heartmarshall/topiclog/internal/metrics"
	authsvc "github.com/heartmarshall/topiclog/internal/service/auth"
	"github.com/heartmarshall/topiclog/internal/service/resolver"
	"github.com/heartmarshall/topiclog/internal/service/topic"
	"github.com/heartmarshall/topiclog/internal/service/user"
	"github.com/heartmarshall/topiclog/internal/transport/middleware"
	"github.com/heartmarshall/topiclog/internal/transport/rest"
)

const rateLimitCleanup = time.Minute

// Run loads configuration, opens the configured storage backend and serves
// HTTP until ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting topiclog",
		slog.String("version", BuildVersion()),
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	backend, err := storage.Open(ctx, cfg.Storage, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Error("close storage", slog.String("error", err.Error()))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	handler, stop := newHandler(cfg, backend, reg, m, logger)
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// Migrate opens the configured backend, which applies pending migrations,
// and closes it again.
func Migrate(ctx context.Context, configPath string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	backend, err := storage.Open(ctx, cfg.Storage, cfg.Database, logger)
	if err != nil {
		return err
	}
	if err := backend.Close(); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}

	logger.Info("migrations applied", slog.String("storage_driver", cfg.Storage.Driver))
	return nil
}

// newHandler builds services and the router over backend. The returned stop
// function releases background workers.
func newHandler(
	cfg *config.Config,
	backend storage.Backend,
	reg *prometheus.Registry,
	m *metrics.Metrics,
	logger *slog.Logger,
) (http.Handler, func()) {
	wiki := wikipedia.NewClient(cfg.Resolver, logger)
	res := resolver.NewResolver(logger, wiki, cfg.Resolver.StageTimeout, m)

	topics := topic.NewService(logger, backend, res, m)
	users := user.NewService(logger, backend, cfg.Auth)

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	verifiers := map[string]authsvc.OAuthVerifier{}
	if cfg.Auth.IsProviderAllowed(google.Provider) {
		verifiers[google.Provider] = google.NewVerifier(cfg.Auth, logger)
	}
	authService := authsvc.NewService(logger, users, verifiers, jwtMgr, cfg.Auth)

	rl := middleware.NewRateLimiter(rateLimitCleanup)

	handler := rest.NewRouter(rest.RouterDeps{
		Health:      rest.NewHealthHandler(backend, cfg.Storage.Driver, BuildVersion()),
		Auth:        rest.NewAuthHandler(authService, users, logger),
		Topics:      rest.NewTopicHandler(topics, logger),
		Tokens:      jwtMgr,
		RateLimiter: rl,
		Gatherer:    reg,
		Server:      cfg.Server,
		CORS:        cfg.CORS,
		Logger:      logger,
	})

	return handler, rl.Stop
}
