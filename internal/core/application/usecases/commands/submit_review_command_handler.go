package commands

import (
	"context"
	"errors"
	"log/slog"

	"finder/internal/core/domain/services"
	"finder/internal/pkg/errs"
)

// SubmitReviewCommandHandler handles review submission on completed jobs.
//
// The review attaches to the job first, then the assigned worker's aggregate
// rating is recomputed over ALL of their rated jobs. The recompute is a full
// pass rather than an incremental update, so a previously missed review is
// healed here. If the rated set comes back empty right after a successful
// attach — an inconsistency — the anomaly is logged, the stored rating stays
// untouched, and the submission still succeeds.
type SubmitReviewCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
// Requires a UoWFactory for coordinating job and worker repositories.
func NewSubmitReviewCommandHandler(uowFactory UoWFactory, logger *slog.Logger) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "submit_review"),
	}
}

// Handle processes the review submission command.
// Verifies the requester posted the job, attaches the single allowed review,
// recomputes the worker's aggregate rating and persists both atomically.
func (h SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	j, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if !j.ClientID().IsEqual(cmd.ClientID()) {
		return errs.NewAccessDeniedError("review submission")
	}

	if err = j.SubmitReview(cmd.Rating(), cmd.Review()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, j); err != nil {
		return err
	}

	workerRepo := uow.WorkerRepository()
	w, err := workerRepo.Get(ctx, *j.Worker())
	if err != nil {
		return err
	}

	rated, err := jobRepo.GetAllRatedByWorker(ctx, w.ID())
	if err != nil {
		return err
	}

	// The job just rated may not be visible in the read set yet depending on
	// isolation; make sure it participates in the recompute exactly once.
	seen := false
	for _, r := range rated {
		if r.IsEqual(j) {
			seen = true
			break
		}
	}
	if !seen {
		rated = append(rated, j)
	}

	_, err = services.NewRatingAggregator().Recalculate(w, rated)
	switch {
	case errors.Is(err, services.ErrNoRatedJobs):
		h.logger.Error("no rated jobs found right after review attach",
			"job_id", j.ID().String(), "worker_id", w.ID().String())
	case err != nil:
		return err
	default:
		if err = workerRepo.Update(ctx, w); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
