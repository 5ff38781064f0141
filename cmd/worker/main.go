package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/myteamshq/sports-hub/internal/app"
	"github.com/myteamshq/sports-hub/internal/config"
	"github.com/myteamshq/sports-hub/internal/observability"
	"github.com/myteamshq/sports-hub/internal/platform/logging"
	"github.com/myteamshq/sports-hub/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	cfg.ServiceName = "sports-hub-worker"

	logger, logShutdown, err := observability.InitBetterStackLogger(cfg, logging.NewJSON(cfg.LogLevel))
	if err != nil {
		logging.Default().Error("build logger", "error", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)

	uptraceShutdown, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	runtime, err := app.NewRuntime(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	schedules := []struct {
		scope    string
		interval time.Duration
	}{
		{usecase.SyncScopeFixtures, cfg.SyncFixturesInterval},
		{usecase.SyncScopeStandings, cfg.SyncStandingsInterval},
		{usecase.SyncScopeEvents, cfg.SyncEventsInterval},
	}

	logger.Info("sync worker starting",
		"fixtures_interval", cfg.SyncFixturesInterval,
		"standings_interval", cfg.SyncStandingsInterval,
		"events_interval", cfg.SyncEventsInterval,
		"hours_forward", cfg.SyncHoursForward,
	)

	for _, schedule := range schedules {
		wg.Add(1)
		go func(scope string, interval time.Duration) {
			defer wg.Done()
			runSyncLoop(ctx, runtime.SyncOrchestrator, logger, scope, interval, cfg.SyncHoursForward)
		}(schedule.scope, schedule.interval)
	}

	wg.Wait()
	runtime.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := uptraceShutdown(shutdownCtx); err != nil {
		logger.Error("uptrace shutdown failed", "error", err)
	}
	if err := logShutdown(shutdownCtx); err != nil {
		logger.Error("log shutdown failed", "error", err)
	}

	logger.Info("sync worker stopped")
}

// runSyncLoop runs one scope immediately and then on every tick until ctx ends.
func runSyncLoop(ctx context.Context, orchestrator *usecase.SyncOrchestratorService, logger *logging.Logger, scope string, interval time.Duration, hoursForward int) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runOnce(ctx, orchestrator, logger, scope, hoursForward)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce(ctx, orchestrator, logger, scope, hoursForward)
		}
	}
}

func runOnce(ctx context.Context, orchestrator *usecase.SyncOrchestratorService, logger *logging.Logger, scope string, hoursForward int) {
	result, err := orchestrator.Run(ctx, usecase.SyncRunInput{
		Scope:        scope,
		HoursForward: hoursForward,
	})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.ErrorContext(ctx, "sync run failed", "scope", scope, "error", err)
		return
	}

	logger.InfoContext(ctx, "sync run finished",
		"scope", result.Scope,
		"target_count", result.TargetCount,
		"record_count", result.RecordCount,
		"failed_count", result.FailedCount,
		"worker_count", result.WorkerCount,
		"duration_ms", result.DurationMs,
	)
}
