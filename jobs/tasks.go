// Package jobs holds the background task definitions and the Asynq
// worker that runs them: cache warmup for the dashboard, the bakery
// low-stock sweep and the aging sweep over open debts.
package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"

	// TaskDashboardWarmup precomputes today's dashboard overview.
	TaskDashboardWarmup = "dashboard:warmup"
	// TaskBakeryLowStock flags bread types projected below the
	// threshold.
	TaskBakeryLowStock = "bakery:lowstock"
	// TaskDebtsAging flags unpaid debts older than a cutoff.
	TaskDebtsAging = "debts:aging"
)

// NewDashboardWarmupTask constructs a warmup task.
func NewDashboardWarmupTask() *asynq.Task {
	return asynq.NewTask(TaskDashboardWarmup, nil)
}

// NewBakeryLowStockTask constructs a low-stock sweep task.
func NewBakeryLowStockTask() *asynq.Task {
	return asynq.NewTask(TaskBakeryLowStock, nil)
}

// DebtsAgingPayload parameterises the aging sweep.
type DebtsAgingPayload struct {
	OlderThanDays int `json:"older_than_days"`
}

// NewDebtsAgingTask constructs an aging sweep task.
func NewDebtsAgingTask(payload DebtsAgingPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDebtsAging, data), nil
}
