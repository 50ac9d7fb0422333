package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/okeb-ng/backoffice/internal/debts"
	"github.com/okeb-ng/backoffice/internal/ledger"
)

const defaultAgingCutoffDays = 30

// DebtsAgingJob sweeps the open ledger and flags debts that have been
// outstanding longer than the cutoff.
type DebtsAgingJob struct {
	Debts  *debts.Service
	Logger *slog.Logger
	clock  func() time.Time
}

func NewDebtsAgingJob(svc *debts.Service, logger *slog.Logger) *DebtsAgingJob {
	return &DebtsAgingJob{Debts: svc, Logger: logger, clock: time.Now}
}

// Handle processes aging sweep tasks.
func (j *DebtsAgingJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Debts == nil {
		return errors.New("debts aging: handler not configured")
	}
	var payload DebtsAgingPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
	}
	if payload.OlderThanDays <= 0 {
		payload.OlderThanDays = defaultAgingCutoffDays
	}

	open, err := j.Debts.ListUnpaid(ctx, "")
	if err != nil {
		j.logger().Error("aging sweep failed", slog.Any("error", err))
		return err
	}

	cutoff := j.clock().AddDate(0, 0, -payload.OlderThanDays)
	aged := 0
	for _, d := range open {
		filed, err := ledger.ParseDay(d.Date)
		if err != nil {
			j.logger().Warn("debt with unparseable date",
				slog.Int64("id", d.ID), slog.String("date", d.Date))
			continue
		}
		if filed.Before(cutoff) {
			aged++
			j.logger().Warn("aged debt",
				slog.Int64("id", d.ID),
				slog.String("customer", d.CustomerName),
				slog.Float64("amount", d.Amount),
				slog.String("filed", d.Date))
		}
	}
	j.logger().Info("aging sweep done",
		slog.Int("open", len(open)), slog.Int("aged", aged),
		slog.Int("cutoff_days", payload.OlderThanDays))
	return nil
}

func (j *DebtsAgingJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
