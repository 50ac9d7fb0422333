package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/okeb-ng/backoffice/internal/app"
	"github.com/okeb-ng/backoffice/internal/bakery"
	"github.com/okeb-ng/backoffice/internal/dashboard"
	"github.com/okeb-ng/backoffice/internal/debts"
	"github.com/okeb-ng/backoffice/internal/platform/cache"
	"github.com/okeb-ng/backoffice/internal/platform/db"
	"github.com/okeb-ng/backoffice/internal/shared"
	"github.com/okeb-ng/backoffice/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect database", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	auditLogger := shared.NewAuditLogger(pool)
	versionedCache := cache.NewVersioned(redisClient, cfg.DashboardCacheTTL)

	debtRepo := debts.NewRepository(pool)
	debtService := debts.NewService(debtRepo, versionedCache, auditLogger, logger)

	bakeryRepo := bakery.NewRepository(pool)
	bakeryService := bakery.NewService(pool, bakeryRepo, debtRepo, versionedCache, auditLogger, logger, cfg.LowStockThreshold)

	dashboardRepo := dashboard.NewRepository(pool)
	dashboardService := dashboard.NewService(dashboardRepo, versionedCache)

	warmupJob := jobs.NewDashboardWarmupJob(dashboardService, logger)
	lowStockJob := jobs.NewBakeryLowStockJob(bakeryService, logger)
	agingJob := jobs.NewDebtsAgingJob(debtService, logger)

	agingTask, err := jobs.NewDebtsAgingTask(jobs.DebtsAgingPayload{OlderThanDays: 30})
	if err != nil {
		logger.Error("build aging task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskDashboardWarmup, Handler: warmupJob.Handle},
			{Type: jobs.TaskBakeryLowStock, Handler: lowStockJob.Handle},
			{Type: jobs.TaskDebtsAging, Handler: agingJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: "*/10 * * * *", Task: jobs.NewDashboardWarmupTask(), Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: "0 * * * *", Task: jobs.NewBakeryLowStockTask(), Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: "0 6 * * *", Task: agingTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
