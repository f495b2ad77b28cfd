// Command reconcile reports users whose stored xp differs from the sum of
// their activity log. It never repairs anything; the report is meant for an
// operator or a cron alert.
//
// Exit codes: 0 = ledger consistent, 1 = drift found or error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/learnquest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/learnquest-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/learnquest-backend/internal/app"
	"github.com/heartmarshall/learnquest-backend/internal/config"
)

func main() {
	limit := flag.Uint64("limit", 1000, "maximum number of drifting users to report")
	configPath := flag.String("config", "", "YAML config file (default: CONFIG_PATH or ./config.yaml)")
	flag.Parse()

	_ = godotenv.Load()

	load := config.Load
	if *configPath != "" {
		load = func() (*config.Config, error) { return config.LoadFile(*configPath) }
	}
	cfg, err := load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	drifts, err := activity.New(pool).FindXPDrift(ctx, *limit)
	if err != nil {
		logger.Error("find xp drift failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, d := range drifts {
		logger.Warn("xp drift",
			slog.String("user_id", d.UserID.String()),
			slog.Int("stored_xp", d.StoredXP),
			slog.Int("ledger_xp", d.LedgerXP),
			slog.Int("difference", d.Difference()),
			slog.Int("activities", d.Activities),
		)
	}

	if len(drifts) > 0 {
		logger.Error("reconciliation found drift", slog.Int("users", len(drifts)))
		os.Exit(1)
	}

	logger.Info("reconciliation completed, ledger consistent")
}
