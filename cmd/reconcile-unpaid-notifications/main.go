package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/arabyads/influencer-service/internal/app/setup"
	"github.com/arabyads/influencer-service/internal/infrastructure/logger"
)

// One-shot runner for the unpaid notification job, for operators who cannot
// wait for the 09:00 cron. Exits nonzero when the run fails so it can sit in
// external schedulers and alerting.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	logger.Setup(deps.Config.LogConfig)

	usecases := setup.InitializeUseCases(deps)

	inserted, skipped, err := usecases.Reconciler.SaveUnpaidNotifications()
	if err != nil {
		slog.Error("unpaid notification run failed", "error", err.Error())
		os.Exit(1)
	}
	slog.Info("unpaid notification run finished", "inserted", inserted, "skipped", skipped)
}
