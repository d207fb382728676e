package commands

import (
	"errors"

	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/guard"
)

var ErrUpdateJobStatusCommandIsNotConstructed = errors.New(
	"UpdateJobStatusCommand must be created via NewUpdateJobStatusCommand constructor",
)

// UpdateJobStatusCommand represents a request to move a job through its
// lifecycle: complete the work or cancel the posting. The requester must be
// a party to the job, which the handler enforces.
type UpdateJobStatusCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	requesterID kernel.UUID
	target      job.Status

	guard guard.ConstructorGuard
}

// NewUpdateJobStatusCommand creates a command to transition a job's status.
func NewUpdateJobStatusCommand(
	jobID kernel.UUID,
	requesterID kernel.UUID,
	target job.Status,
) (UpdateJobStatusCommand, error) {
	statusCommand := UpdateJobStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setJobID(jobID),
		statusCommand.setRequesterID(requesterID),
		statusCommand.setTarget(target),
	); err != nil {
		return UpdateJobStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateJobStatusCommandIsNotConstructed if validation fails.
func (c UpdateJobStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobStatusCommandIsNotConstructed)
}

// JobID returns the identifier of the job being transitioned.
func (c UpdateJobStatusCommand) JobID() kernel.UUID {
	return c.jobID
}

// RequesterID returns the identity asking for the transition.
func (c UpdateJobStatusCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// Target returns the requested status.
func (c UpdateJobStatusCommand) Target() job.Status {
	return c.target
}

func (c *UpdateJobStatusCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *UpdateJobStatusCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}

func (c *UpdateJobStatusCommand) setTarget(target job.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
