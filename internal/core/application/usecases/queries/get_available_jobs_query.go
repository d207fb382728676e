package queries

import (
	"errors"
	"time"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/guard"
)

var ErrGetAvailableJobsQueryIsNotConstructed = errors.New(
	"GetAvailableJobsQuery must be created via NewGetAvailableJobsQuery constructor",
)

// GetAvailableJobsQuery retrieves every open job whose category loosely
// matches a worker's skills, regardless of distance. This is the broad job
// board view; the proximity listing is GetNearbyJobsQuery.
type GetAvailableJobsQuery struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableJobsQuery creates a query for the open job board.
func NewGetAvailableJobsQuery(workerID kernel.UUID) (GetAvailableJobsQuery, error) {
	availableQuery := GetAvailableJobsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := availableQuery.setWorkerID(workerID); err != nil {
		return GetAvailableJobsQuery{}, err
	}

	return availableQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableJobsQueryIsNotConstructed if validation fails.
func (q GetAvailableJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableJobsQueryIsNotConstructed)
}

// WorkerID returns the browsing worker's identifier.
func (q GetAvailableJobsQuery) WorkerID() kernel.UUID {
	return q.workerID
}

func (q *GetAvailableJobsQuery) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	q.workerID = workerID
	return nil
}

// AvailableJobResponse is one row of the open job board. Like the proximity
// listing it hides exact coordinates behind the approximate address.
type AvailableJobResponse struct {
	ID                 kernel.UUID
	Title              string
	Description        string
	Category           kernel.Category
	ApproximateAddress string
	Budget             float64
	Deadline           time.Time
	TimeStart          string
	TimeEnd            string
	CreatedAt          time.Time
}
