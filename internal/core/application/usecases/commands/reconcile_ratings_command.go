package commands

import (
	"errors"

	"finder/internal/pkg/guard"
)

var ErrReconcileRatingsCommandIsNotConstructed = errors.New(
	"ReconcileRatingsCommand must be created via NewReconcileRatingsCommand constructor",
)

// ReconcileRatingsCommand triggers a full recomputation of every worker's
// rating from their reviewed jobs. Ratings are normally maintained at review
// submission time; the reconciliation pass repairs any drift caused by
// partial failures.
//
// Example:
//
//	cmd := NewReconcileRatingsCommand()
//	handler := NewReconcileRatingsCommandHandler(uowFactory, logger)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Rating reconciliation failed: %v", err)
//	}
type ReconcileRatingsCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileRatingsCommand creates a new command to trigger rating reconciliation.
// This is a parameterless command that initiates the full recompute pass.
func NewReconcileRatingsCommand() ReconcileRatingsCommand {
	return ReconcileRatingsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcileRatingsCommandIsNotConstructed if validation fails.
func (c *ReconcileRatingsCommand) Validate() error {
	return c.guard.Validate(
		ErrReconcileRatingsCommandIsNotConstructed,
	)
}
