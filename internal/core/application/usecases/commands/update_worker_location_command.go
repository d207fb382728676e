package commands

import (
	"errors"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/guard"
)

var ErrUpdateWorkerLocationCommandIsNotConstructed = errors.New(
	"UpdateWorkerLocationCommand must be created via NewUpdateWorkerLocationCommand constructor",
)

// UpdateWorkerLocationCommand represents a request to register or move a
// worker's location. The location must be a constructible point, which rules
// out the (0,0) unset convention at the boundary.
type UpdateWorkerLocationCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateWorkerLocationCommand creates a command to update a worker's location.
func NewUpdateWorkerLocationCommand(
	workerID kernel.UUID,
	location kernel.GeoPoint,
) (UpdateWorkerLocationCommand, error) {
	locationCommand := UpdateWorkerLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setWorkerID(workerID),
		locationCommand.setLocation(location),
	); err != nil {
		return UpdateWorkerLocationCommand{}, err
	}

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateWorkerLocationCommandIsNotConstructed if validation fails.
func (c UpdateWorkerLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkerLocationCommandIsNotConstructed)
}

// WorkerID returns the identifier of the worker being updated.
func (c UpdateWorkerLocationCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Location returns the new location.
func (c UpdateWorkerLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *UpdateWorkerLocationCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *UpdateWorkerLocationCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
