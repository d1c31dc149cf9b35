// Package jobs provides the scheduled background work: an hourly purge of
// cart rows abandoned longer than the configured TTL, run with
// github.com/robfig/cron/v3 through a JobManager.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"littlelemon/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartPurgeJob deletes cart rows older than the TTL. Abandoned carts hold
// captured prices that drift from the catalog, so they are not kept around
// indefinitely.
type CartPurgeJob struct {
	handler commands.PurgeStaleCartsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCartPurgeJob creates an hourly purge job for carts older than ttl.
func NewCartPurgeJob(
	handler commands.PurgeStaleCartsCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *CartPurgeJob {
	return &CartPurgeJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(),
		logger:  logger.With("component", "cart_purge_job"),
	}
}

// Start schedules the purge to run at the top of every hour.
func (j *CartPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeStaleCartsCommand(j.ttl)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Cart purge job misconfigured", "error", cmdErr)
			return
		}

		removed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Cart purge job failed", "error", handleErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Purged stale cart rows", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart purge job started (running hourly)")
	return nil
}

// Stop stops the cart purge job.
func (j *CartPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart purge job stopped")
}
