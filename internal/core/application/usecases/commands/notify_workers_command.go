package commands

import (
	"errors"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/guard"
)

var ErrNotifyWorkersCommandIsNotConstructed = errors.New(
	"NotifyWorkersCommand must be created via NewNotifyWorkersCommand constructor",
)

// NotifyWorkersCommand represents a request to fan out notifications about a
// posted job to every worker whose skills match its category.
//
// Example:
//
//	cmd, err := NewNotifyWorkersCommand(jobID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewNotifyWorkersCommandHandler(uowFactory, pushSender, logger)
//	_ = handler.Handle(ctx, cmd) // best-effort, never fails the posting path
type NotifyWorkersCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewNotifyWorkersCommand creates a command to dispatch notifications for a job.
func NewNotifyWorkersCommand(jobID kernel.UUID) (NotifyWorkersCommand, error) {
	notifyCommand := NotifyWorkersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := notifyCommand.setJobID(jobID); err != nil {
		return NotifyWorkersCommand{}, err
	}

	return notifyCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrNotifyWorkersCommandIsNotConstructed if validation fails.
func (c NotifyWorkersCommand) Validate() error {
	return c.guard.Validate(ErrNotifyWorkersCommandIsNotConstructed)
}

// JobID returns the identifier of the job being announced.
func (c NotifyWorkersCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *NotifyWorkersCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}
