package commands

import (
	"errors"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/guard"
)

var ErrUpdateWorkerSkillsCommandIsNotConstructed = errors.New(
	"UpdateWorkerSkillsCommand must be created via NewUpdateWorkerSkillsCommand constructor",
)

// UpdateWorkerSkillsCommand represents a request to replace a worker's raw
// skill list. The category set is re-derived from the new skills exactly
// once, on the aggregate.
type UpdateWorkerSkillsCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID
	skills   []string

	guard guard.ConstructorGuard
}

// NewUpdateWorkerSkillsCommand creates a command to replace a worker's skills.
// An empty list is allowed; it clears the category set.
func NewUpdateWorkerSkillsCommand(workerID kernel.UUID, skills []string) (UpdateWorkerSkillsCommand, error) {
	skillsCommand := UpdateWorkerSkillsCommand{
		skills: append([]string(nil), skills...),
		guard:  guard.NewConstructorGuard(),
	}

	if err := skillsCommand.setWorkerID(workerID); err != nil {
		return UpdateWorkerSkillsCommand{}, err
	}

	return skillsCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateWorkerSkillsCommandIsNotConstructed if validation fails.
func (c UpdateWorkerSkillsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkerSkillsCommandIsNotConstructed)
}

// WorkerID returns the identifier of the worker being updated.
func (c UpdateWorkerSkillsCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Skills returns the new raw skill list.
func (c UpdateWorkerSkillsCommand) Skills() []string {
	return append([]string(nil), c.skills...)
}

func (c *UpdateWorkerSkillsCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
