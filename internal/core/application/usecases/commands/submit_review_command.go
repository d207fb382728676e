package commands

import (
	"errors"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/errs"
	"finder/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand represents a client's request to rate a completed job.
// A job accepts exactly one review; the worker's aggregate rating is
// recomputed from all their rated jobs afterwards.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	clientID kernel.UUID
	rating   float64
	review   string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a command to review a completed job.
// The rating must lie in [1, 5]; review text may be empty.
func NewSubmitReviewCommand(
	jobID kernel.UUID,
	clientID kernel.UUID,
	rating float64,
	review string,
) (SubmitReviewCommand, error) {
	reviewCommand := SubmitReviewCommand{
		review: review,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setJobID(jobID),
		reviewCommand.setClientID(clientID),
		reviewCommand.setRating(rating),
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitReviewCommandIsNotConstructed if validation fails.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// JobID returns the identifier of the job being reviewed.
func (c SubmitReviewCommand) JobID() kernel.UUID {
	return c.jobID
}

// ClientID returns the identity of the reviewer.
func (c SubmitReviewCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Rating returns the submitted rating.
func (c SubmitReviewCommand) Rating() float64 {
	return c.rating
}

// Review returns the submitted review text.
func (c SubmitReviewCommand) Review() string {
	return c.review
}

func (c *SubmitReviewCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *SubmitReviewCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *SubmitReviewCommand) setRating(rating float64) error {
	if rating < 1 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	c.rating = rating
	return nil
}
