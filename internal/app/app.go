package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/adapter/postgres"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/adapter/postgres/translationlog"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/auth"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/config"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/service/translation"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/translator"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/transport/middleware"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects the
// optional translation log store, loads both translation directions and
// serves HTTP until ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	var pool *pgxpool.Pool
	if cfg.Database.Enabled() {
		pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		if !cfg.Database.SkipMigrations {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				return err
			}
		}
	} else {
		logger.Warn("database not configured, translation log disabled")
	}

	translators, err := LoadTranslators(ctx, cfg.Translator, logger)
	if err != nil {
		return fmt.Errorf("load translators: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewHandler(cfg, logger, pool, translators, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
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

// NewHandler assembles services, handlers and middleware. pool may be nil,
// in which case translations are not logged. Admin routes are mounted only
// when an admin JWT secret is configured.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	translators []*translator.Translator,
	limiter *middleware.RateLimiter,
) http.Handler {
	engines := make([]translation.Engine, len(translators))
	for i, t := range translators {
		engines[i] = t
	}

	opts := translation.Options{
		MaxTextLength:   cfg.Translator.MaxTextLength,
		ReportDir:       cfg.Translator.ReportDir,
		LogTimeout:      cfg.Translator.LogTimeout,
		BreakerFailures: cfg.Translator.LogBreakerFailures,
		BreakerTimeout:  cfg.Translator.LogBreakerTimeout,
	}

	var svc *translation.Service
	if pool != nil {
		svc = translation.NewService(logger, translationlog.New(pool), opts, engines...)
	} else {
		svc = translation.NewService(logger, nil, opts, engines...)
	}

	deps := rest.RouterDeps{
		Logger:    logger,
		CORS:      cfg.CORS,
		MaxBody:   cfg.Server.MaxBodyBytes,
		PerMinute: cfg.RateLimit.TranslatePerMinute,
		Translate: rest.NewTranslateHandler(svc, logger),
		Limiter:   limiter,
	}
	if pool != nil {
		deps.Health = rest.NewHealthHandler(pool, svc, BuildVersion())
	} else {
		deps.Health = rest.NewHealthHandler(nil, svc, BuildVersion())
	}

	if cfg.Auth.Enabled() {
		deps.Admin = rest.NewAdminHandler(svc, logger)
		deps.Validator = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AdminTokenTTL)
	} else {
		logger.Warn("auth.jwt_secret not set, admin endpoints disabled")
	}

	return rest.NewRouter(deps)
}
