package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/factfinder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/factfinder-backend/internal/adapter/postgres/requestlog"
	"github.com/heartmarshall/factfinder-backend/internal/adapter/redis"
	"github.com/heartmarshall/factfinder-backend/internal/auth"
	"github.com/heartmarshall/factfinder-backend/internal/config"
	"github.com/heartmarshall/factfinder-backend/internal/service/fact"
	"github.com/heartmarshall/factfinder-backend/internal/transport/middleware"
	"github.com/heartmarshall/factfinder-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the optional Redis quota store, builds the fact service
// and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("oracle", cfg.Oracle.Provider),
		slog.String("model", cfg.Oracle.Model()),
	)

	pool, err := postgres.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	oracle, err := NewOracle(cfg.Oracle, logger)
	if err != nil {
		return err
	}

	deps := Deps{
		Facts:    fact.NewService(logger, requestlog.New(pool), oracle, cfg.Oracle.Timeout),
		Tokens:   auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		DB:       pool,
		Version:  BuildVersion(),
		Logger:   logger,
		Settings: cfg,
	}

	if cfg.Redis.Enabled() {
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, submit quota disabled", slog.String("error", err.Error()))
		} else {
			defer client.Close()
			deps.Quota = redis.NewQuotaLimiter(client, cfg.Redis.DailySubmitQuota, logger)
			deps.Cache = rest.PingFunc(func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			})
		}
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()
	deps.Limiter = limiter

	return serve(ctx, cfg.Server, NewRouter(deps), logger)
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout.
func serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
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
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
