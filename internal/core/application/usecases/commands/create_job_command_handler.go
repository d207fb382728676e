package commands

import (
	"context"

	"finder/internal/core/domain/model/job"
)

// CreateJobCommandHandler handles the business logic for posting a job.
// Creates new jobs in "pending" status, visible to matching workers and open
// for acceptance. Notification fan-out is a separate command so a slow or
// failing dispatch can never fail the posting itself.
//
// Example:
//
//	handler := NewCreateJobCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("job creation failed: %w", err)
//	}
//	// Job is now posted; trigger NotifyWorkersCommand next
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCreateJobCommandHandler creates a handler for job posting operations.
// Requires a JobUoWFactory for transactional persistence.
func NewCreateJobCommandHandler(uowFactory JobUoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job posting command.
// Creates the job in "pending" status and persists it.
// Uses a transaction to ensure the job is properly persisted or rolled back on error.
func (h *CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
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
	j, err := job.NewJob(
		cmd.JobID(),
		cmd.ClientID(),
		cmd.Title(),
		cmd.Description(),
		cmd.Category(),
		cmd.Location(),
		cmd.Address(),
		cmd.Budget(),
		cmd.Deadline(),
		cmd.TimeStart(),
		cmd.TimeEnd(),
	)
	if err != nil {
		return err
	}

	if err = jobRepo.Add(ctx, j); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
