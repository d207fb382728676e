package commands

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/core/domain/services"
)

// ReconcileRatingsCommandHandler recomputes every worker's aggregate rating
// from scratch. Each worker is reconciled in its own transaction so one
// failing profile never blocks the rest of the pass.
type ReconcileRatingsCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewReconcileRatingsCommandHandler creates a handler for the reconciliation pass.
func NewReconcileRatingsCommandHandler(uowFactory UoWFactory, logger *slog.Logger) ReconcileRatingsCommandHandler {
	return ReconcileRatingsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "reconcile_ratings"),
	}
}

// Handle processes the reconciliation command. Workers whose stored rating
// already matches the recomputed mean are skipped; workers with no rated
// jobs keep their stored rating.
func (h ReconcileRatingsCommandHandler) Handle(ctx context.Context, cmd ReconcileRatingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	workerIDs, err := h.listWorkerIDs(ctx)
	if err != nil {
		return err
	}

	reconciled := 0
	for _, workerID := range workerIDs {
		changed, reconcileErr := h.reconcileOne(ctx, workerID)
		if reconcileErr != nil {
			h.logger.WarnContext(ctx, "Failed to reconcile worker rating",
				"worker_id", workerID.String(), "error", reconcileErr)
			continue
		}
		if changed {
			reconciled++
		}
	}

	h.logger.InfoContext(ctx, "Rating reconciliation pass finished",
		"workers", len(workerIDs), "adjusted", reconciled)
	return nil
}

// listWorkerIDs snapshots the worker IDs in a short read transaction.
func (h ReconcileRatingsCommandHandler) listWorkerIDs(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	workers, err := uow.WorkerRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(workers))
	for _, w := range workers {
		ids = append(ids, w.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}

// reconcileOne recomputes a single worker's rating in its own transaction.
// Returns true when the stored rating had drifted and was corrected.
func (h ReconcileRatingsCommandHandler) reconcileOne(ctx context.Context, workerID kernel.UUID) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	workerRepo := uow.WorkerRepository()
	w, err := workerRepo.Get(ctx, workerID)
	if err != nil {
		return false, err
	}

	rated, err := uow.JobRepository().GetAllRatedByWorker(ctx, workerID)
	if err != nil {
		return false, err
	}

	stored := w.Rating()
	mean, err := services.NewRatingAggregator().Recalculate(w, rated)
	if errors.Is(err, services.ErrNoRatedJobs) {
		return false, uow.Commit(ctx)
	}
	if err != nil {
		return false, err
	}

	if math.Abs(mean-stored) < 1e-9 {
		return false, uow.Commit(ctx)
	}

	if err = workerRepo.Update(ctx, w); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	h.logger.InfoContext(ctx, "Worker rating drift corrected",
		"worker_id", workerID.String(), "stored", stored, "recomputed", mean)
	return true, nil
}
