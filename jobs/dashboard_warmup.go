package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/okeb-ng/backoffice/internal/dashboard"
)

// DashboardWarmupJob precomputes today's overview so the first request
// of the day is served from cache.
type DashboardWarmupJob struct {
	Dashboard *dashboard.Service
	Logger    *slog.Logger
}

func NewDashboardWarmupJob(svc *dashboard.Service, logger *slog.Logger) *DashboardWarmupJob {
	return &DashboardWarmupJob{Dashboard: svc, Logger: logger}
}

// Handle processes dashboard warmup tasks.
func (j *DashboardWarmupJob) Handle(ctx context.Context, _ *asynq.Task) error {
	if j == nil || j.Dashboard == nil {
		return errors.New("dashboard warmup: handler not configured")
	}
	started := time.Now()
	if err := j.Dashboard.Warm(ctx); err != nil {
		j.logger().Error("dashboard warmup failed", slog.Any("error", err))
		return err
	}
	j.logger().Info("dashboard warmed", slog.Duration("took", time.Since(started)))
	return nil
}

func (j *DashboardWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
