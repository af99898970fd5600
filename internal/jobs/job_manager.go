// Package jobs contains the scheduled background work of the application,
// built on robfig/cron. Jobs only read through query handlers or drive
// command handlers; they never touch the database directly.
package jobs

import (
	"fmt"
	"log/slog"

	"shipping/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockJob *LowStockJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	lowStockHandler queries.ListLowStockQueryHandler,
	lowStockSchedule string,
	lowStockThreshold int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockJob: NewLowStockJob(lowStockHandler, lowStockSchedule, lowStockThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockJob.Stop()
}
