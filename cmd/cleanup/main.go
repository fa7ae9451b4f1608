// Command cleanup deletes translation log rows older than the configured
// retention period. It is intended to be invoked by an external cron job,
// not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/adapter/postgres"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/adapter/postgres/translationlog"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/app"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.Database.Enabled() {
		logger.Error("database.dsn is not set, nothing to clean up")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := translationlog.New(pool)

	threshold := time.Now().AddDate(0, 0, -cfg.Database.LogRetentionDays)

	deleted, err := repo.DeleteOlderThan(ctx, threshold)
	if err != nil {
		logger.Error("translation log cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("translation log cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
