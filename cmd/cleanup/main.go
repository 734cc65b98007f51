// Command cleanup deletes audit records older than audit.retention_days. It
// is intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/learning-journal/internal/adapter/postgres"
	"github.com/heartmarshall/learning-journal/internal/adapter/postgres/audit"
	"github.com/heartmarshall/learning-journal/internal/app"
	"github.com/heartmarshall/learning-journal/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	cutoff := time.Now().AddDate(0, 0, -cfg.Audit.RetentionDays)

	deleted, err := audit.New(pool).DeleteOlderThan(ctx, cutoff)
	if err != nil {
		logger.Error("audit cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		os.Exit(1)
	}

	logger.Info("audit cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
	)
}
