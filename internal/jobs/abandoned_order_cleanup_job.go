package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AbandonedOrderCleanupJob sweeps pending orders that never picked up a line.
// Runs every minute; empty orders hold no reservations, so the sweep only
// touches order rows.
type AbandonedOrderCleanupJob struct {
	handler commands.DiscardAbandonedOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAbandonedOrderCleanupJob creates the cleanup job.
// Uses DiscardAbandonedOrdersCommandHandler to drop empty pending orders.
func NewAbandonedOrderCleanupJob(
	handler commands.DiscardAbandonedOrdersCommandHandler,
	logger *slog.Logger,
) *AbandonedOrderCleanupJob {
	return &AbandonedOrderCleanupJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "abandoned_order_cleanup_job"),
	}
}

// Start begins the cleanup job to run every minute.
func (j *AbandonedOrderCleanupJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDiscardAbandonedOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Abandoned order cleanup failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Abandoned order cleanup job started (running every minute)")
	return nil
}

// Stop stops the cleanup job.
func (j *AbandonedOrderCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Abandoned order cleanup job stopped")
}
