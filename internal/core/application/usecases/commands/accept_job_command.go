package commands

import (
	"errors"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/guard"
)

var ErrAcceptJobCommandIsNotConstructed = errors.New(
	"AcceptJobCommand must be created via NewAcceptJobCommand constructor",
)

// AcceptJobCommand represents a worker's request to take a pending job.
// Only the first accept succeeds; later ones fail on the status machine.
type AcceptJobCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptJobCommand creates a command for a worker to accept a job.
func NewAcceptJobCommand(jobID kernel.UUID, workerID kernel.UUID) (AcceptJobCommand, error) {
	acceptCommand := AcceptJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setJobID(jobID),
		acceptCommand.setWorkerID(workerID),
	); err != nil {
		return AcceptJobCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptJobCommandIsNotConstructed if validation fails.
func (c AcceptJobCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job being accepted.
func (c AcceptJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// WorkerID returns the identifier of the accepting worker.
func (c AcceptJobCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *AcceptJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *AcceptJobCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
