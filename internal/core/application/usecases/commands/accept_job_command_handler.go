package commands

import (
	"context"
)

// AcceptJobCommandHandler orchestrates a worker accepting a pending job.
// Verifies the accepting worker exists, runs the aggregate's accept rules
// (pending only, first accept wins) and persists the assignment atomically.
//
// Example:
//
//	handler := NewAcceptJobCommandHandler(uowFactory)
//	cmd, _ := NewAcceptJobCommand(jobID, workerID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errs.ErrValueIsInvalid: the job is no longer pending
//	    return err
//	}
type AcceptJobCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptJobCommandHandler creates a handler for job acceptance operations.
// Requires a UoWFactory for coordinating job and worker repositories.
func NewAcceptJobCommandHandler(uowFactory UoWFactory) AcceptJobCommandHandler {
	return AcceptJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
// Loads the worker to confirm existence, transitions the job to in-progress
// with the worker assigned, and persists the change in a single transaction.
func (h AcceptJobCommandHandler) Handle(ctx context.Context, cmd AcceptJobCommand) error {
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

	if _, err := uow.WorkerRepository().Get(ctx, cmd.WorkerID()); err != nil {
		return err
	}

	jobRepo := uow.JobRepository()
	j, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = j.Accept(cmd.WorkerID()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, j); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
