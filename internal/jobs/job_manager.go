package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"littlelemon/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	cartPurgeJob *CartPurgeJob
}

// NewJobManager creates a job manager over the cart purge job.
func NewJobManager(
	purgeHandler commands.PurgeStaleCartsCommandHandler,
	cartTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		cartPurgeJob: NewCartPurgeJob(purgeHandler, cartTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.cartPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start cart purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cartPurgeJob.Stop()
}
