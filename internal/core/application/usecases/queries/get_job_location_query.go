package queries

import (
	"errors"
	"time"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/guard"
)

var ErrGetJobLocationQueryIsNotConstructed = errors.New(
	"GetJobLocationQuery must be created via NewGetJobLocationQuery constructor",
)

// GetJobLocationQuery asks for a job's exact location on behalf of a
// requester. Whether the coordinates come back is decided by the disclosure
// gate: the posting client always sees them, the assigned worker only from
// three hours before the scheduled start.
type GetJobLocationQuery struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobLocationQuery creates a location disclosure query.
func NewGetJobLocationQuery(jobID kernel.UUID, requesterID kernel.UUID) (GetJobLocationQuery, error) {
	locationQuery := GetJobLocationQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationQuery.setJobID(jobID),
		locationQuery.setRequesterID(requesterID),
	); err != nil {
		return GetJobLocationQuery{}, err
	}

	return locationQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetJobLocationQueryIsNotConstructed if validation fails.
func (q GetJobLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetJobLocationQueryIsNotConstructed)
}

// JobID returns the identifier of the queried job.
func (q GetJobLocationQuery) JobID() kernel.UUID {
	return q.jobID
}

// RequesterID returns the identity asking for the location.
func (q GetJobLocationQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

func (q *GetJobLocationQuery) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	q.jobID = jobID
	return nil
}

func (q *GetJobLocationQuery) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	q.requesterID = requesterID
	return nil
}

// JobLocationResponse is the disclosure decision. Location and Address are
// populated only when Revealed is true; a hidden result carries the reveal
// time so the worker knows when to ask again.
type JobLocationResponse struct {
	Revealed   bool
	Location   *kernel.GeoPoint
	Address    string
	RevealTime time.Time
}
