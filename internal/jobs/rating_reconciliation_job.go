package jobs

import (
	"context"
	"log/slog"

	"finder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RatingReconciliationJob manages the scheduled recomputation of worker
// ratings. Runs nightly to repair any drift between stored ratings and the
// reviews actually on record.
type RatingReconciliationJob struct {
	handler commands.ReconcileRatingsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRatingReconciliationJob creates a new job for rating reconciliation.
// Uses ReconcileRatingsCommandHandler to recompute every worker's rating nightly.
func NewRatingReconciliationJob(handler commands.ReconcileRatingsCommandHandler, logger *slog.Logger) *RatingReconciliationJob {
	return &RatingReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "rating_reconciliation_job"),
	}
}

// Start begins the rating reconciliation job to run nightly at 03:00.
func (j *RatingReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 0 3 * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileRatingsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Rating reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rating reconciliation job started (running nightly at 03:00)")
	return nil
}

// Stop stops the rating reconciliation job.
func (j *RatingReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rating reconciliation job stopped")
}
