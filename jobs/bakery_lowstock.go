package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/okeb-ng/backoffice/internal/bakery"
)

// BakeryLowStockJob sweeps the projected stock and logs every bread
// type sitting below the threshold, so the morning bake can be sized
// before the shop opens.
type BakeryLowStockJob struct {
	Bakery *bakery.Service
	Logger *slog.Logger
}

func NewBakeryLowStockJob(svc *bakery.Service, logger *slog.Logger) *BakeryLowStockJob {
	return &BakeryLowStockJob{Bakery: svc, Logger: logger}
}

// Handle processes low-stock sweep tasks.
func (j *BakeryLowStockJob) Handle(ctx context.Context, _ *asynq.Task) error {
	if j == nil || j.Bakery == nil {
		return errors.New("bakery lowstock: handler not configured")
	}
	low, err := j.Bakery.LowStock(ctx)
	if err != nil {
		j.logger().Error("low-stock sweep failed", slog.Any("error", err))
		return err
	}
	if len(low) == 0 {
		j.logger().Info("low-stock sweep clean")
		return nil
	}
	for _, level := range low {
		j.logger().Warn("low stock",
			slog.String("product", level.Name),
			slog.Float64("quantity", level.Quantity))
	}
	return nil
}

func (j *BakeryLowStockJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
