package commands

import (
	"context"
	"fmt"

	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/kernel"
	"finder/internal/core/domain/model/worker"
	"finder/internal/pkg/errs"
)

// UpdateJobStatusCommandHandler handles job lifecycle transitions after
// acceptance: completing the work or cancelling the posting.
//
// Authorization: only the posting client or the assigned worker may request
// a transition; anyone else gets an access-denied error. Completing a job
// additionally bumps the assigned worker's completed-jobs counter and leaves
// a job-update notification in their feed, all in the same transaction.
type UpdateJobStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateJobStatusCommandHandler creates a handler for status transitions.
// Requires a UoWFactory for coordinating job and worker repositories.
func NewUpdateJobStatusCommandHandler(uowFactory UoWFactory) UpdateJobStatusCommandHandler {
	return UpdateJobStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Validates authorization, runs the state machine transition, applies the
// completion side effects and persists everything atomically.
func (h UpdateJobStatusCommandHandler) Handle(ctx context.Context, cmd UpdateJobStatusCommand) error {
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

	if err = h.authorize(j, cmd.RequesterID()); err != nil {
		return err
	}

	if err = j.TransitionStatusTo(cmd.Target()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, j); err != nil {
		return err
	}

	if cmd.Target() == job.Completed {
		if err = h.applyCompletion(ctx, uow, j); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h UpdateJobStatusCommandHandler) authorize(j *job.Job, requesterID kernel.UUID) error {
	if j.ClientID().IsEqual(requesterID) {
		return nil
	}
	if j.Worker() != nil && j.Worker().IsEqual(requesterID) {
		return nil
	}

	return errs.NewAccessDeniedError("job status transition")
}

func (h UpdateJobStatusCommandHandler) applyCompletion(ctx context.Context, uow UoW, j *job.Job) error {
	workerRepo := uow.WorkerRepository()
	w, err := workerRepo.Get(ctx, *j.Worker())
	if err != nil {
		return err
	}

	w.IncrementCompletedJobs()

	jobID := j.ID()
	notification, err := worker.NewNotification(
		kernel.NewUUID(),
		worker.NotificationJobUpdate,
		fmt.Sprintf("Job completed: %s", j.Title()),
		&jobID,
	)
	if err != nil {
		return err
	}

	if err = w.AddNotification(notification); err != nil {
		return err
	}

	return workerRepo.Update(ctx, w)
}
