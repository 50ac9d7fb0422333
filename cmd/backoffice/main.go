package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/okeb-ng/backoffice/internal/app"
	"github.com/okeb-ng/backoffice/internal/auth"
	"github.com/okeb-ng/backoffice/internal/bakery"
	"github.com/okeb-ng/backoffice/internal/dashboard"
	"github.com/okeb-ng/backoffice/internal/debts"
	"github.com/okeb-ng/backoffice/internal/farm"
	"github.com/okeb-ng/backoffice/internal/fuel"
	"github.com/okeb-ng/backoffice/internal/platform/cache"
	"github.com/okeb-ng/backoffice/internal/platform/db"
	"github.com/okeb-ng/backoffice/internal/pos"
	"github.com/okeb-ng/backoffice/internal/rbac"
	"github.com/okeb-ng/backoffice/internal/shared"
	"github.com/okeb-ng/backoffice/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
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

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

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

	sessionManager := shared.NewSessionManager(redisClient, "okeb_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)
	auditLogger := shared.NewAuditLogger(dbpool)
	versionedCache := cache.NewVersioned(redisClient, cfg.DashboardCacheTTL)

	rbacService := rbac.NewService(dbpool)
	rbacMiddleware := rbac.Middleware{Resolver: rbacService, Logger: logger}

	authRepo := auth.NewRepository(dbpool)
	authService := auth.NewService(authRepo)
	authHandler := auth.NewHandler(logger, authService, sessionManager, csrfManager, rbacService)

	debtRepo := debts.NewRepository(dbpool)
	debtService := debts.NewService(debtRepo, versionedCache, auditLogger, logger)
	debtHandler := debts.NewHandler(logger, debtService)

	fuelRepo := fuel.NewRepository(dbpool)
	fuelService := fuel.NewService(dbpool, fuelRepo, debtRepo, versionedCache, auditLogger, logger)
	fuelHandler := fuel.NewHandler(logger, fuelService)

	bakeryRepo := bakery.NewRepository(dbpool)
	bakeryService := bakery.NewService(dbpool, bakeryRepo, debtRepo, versionedCache, auditLogger, logger, cfg.LowStockThreshold)
	bakeryHandler := bakery.NewHandler(logger, bakeryService)

	posRepo := pos.NewRepository(dbpool)
	posService := pos.NewService(posRepo, versionedCache, auditLogger, logger)
	posHandler := pos.NewHandler(logger, posService)

	farmRepo := farm.NewRepository(dbpool)
	farmService := farm.NewService(dbpool, farmRepo, debtRepo, versionedCache, auditLogger, logger)
	farmHandler := farm.NewHandler(logger, farmService)

	dashboardRepo := dashboard.NewRepository(dbpool)
	dashboardService := dashboard.NewService(dashboardRepo, versionedCache)
	dashboardHandler := dashboard.NewHandler(logger, dashboardService)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init job client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := jobClient.Close(); err != nil {
			logger.Warn("job client close", slog.Any("error", err))
		}
	}()
	jobHandler := jobs.NewHandler(inspector, jobClient, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		SessionManager:   sessionManager,
		CSRFManager:      csrfManager,
		RBACMiddleware:   rbacMiddleware,
		AuthHandler:      authHandler,
		DashboardHandler: dashboardHandler,
		FuelHandler:      fuelHandler,
		BakeryHandler:    bakeryHandler,
		POSHandler:       posHandler,
		FarmHandler:      farmHandler,
		DebtsHandler:     debtHandler,
		JobHandler:       jobHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
