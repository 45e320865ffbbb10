package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fpltransfer/internal/app"
	"fpltransfer/internal/config"
	"fpltransfer/internal/platform/logging"
)

// One-shot data refresh for cron or manual runs. Pulls the latest player,
// form, and fixture data and rewrites the local player table.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer logger.Sync()
	logging.SetDefault(logger)

	services, err := app.NewServices(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}
	defer services.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := services.Ingestion.Run(ctx)
	if err != nil {
		logger.Error("ingestion failed", "error", err)
		os.Exit(1)
	}

	logger.Info("ingestion finished",
		"players", result.PlayerCount,
		"gameweeks", result.Gameweeks,
		"failed_gameweeks", result.FailedGameweeks,
	)
}
