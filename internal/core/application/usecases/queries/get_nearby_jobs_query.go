package queries

import (
	"errors"
	"time"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/guard"
)

var ErrGetNearbyJobsQueryIsNotConstructed = errors.New(
	"GetNearbyJobsQuery must be created via NewGetNearbyJobsQuery constructor",
)

// GetNearbyJobsQuery retrieves the pending, unassigned jobs around a
// worker's registered location that match the worker's categories.
//
// Example:
//
//	query, err := NewGetNearbyJobsQuery(workerID, 25)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetNearbyJobsQueryHandler(db)
//	jobs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get nearby jobs: %w", err)
//	}
//	for _, j := range jobs {
//	    fmt.Printf("%s — %.1f km away\n", j.Title, j.DistanceKm)
//	}
type GetNearbyJobsQuery struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID
	radiusKm float64

	guard guard.ConstructorGuard
}

// NewGetNearbyJobsQuery creates a query for the proximity job listing.
// A radius of 0 means "use the worker's own service radius".
func NewGetNearbyJobsQuery(workerID kernel.UUID, radiusKm float64) (GetNearbyJobsQuery, error) {
	nearbyQuery := GetNearbyJobsQuery{
		radiusKm: radiusKm,
		guard:    guard.NewConstructorGuard(),
	}

	if err := nearbyQuery.setWorkerID(workerID); err != nil {
		return GetNearbyJobsQuery{}, err
	}

	return nearbyQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNearbyJobsQueryIsNotConstructed if validation fails.
func (q GetNearbyJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyJobsQueryIsNotConstructed)
}

// WorkerID returns the browsing worker's identifier.
func (q GetNearbyJobsQuery) WorkerID() kernel.UUID {
	return q.workerID
}

// RadiusKm returns the requested search radius. Zero means the worker's
// service radius applies.
func (q GetNearbyJobsQuery) RadiusKm() float64 {
	return q.radiusKm
}

func (q *GetNearbyJobsQuery) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	q.workerID = workerID
	return nil
}

// NearbyJobResponse is one row of the proximity listing. It deliberately
// carries the approximate address and the distance but never the exact
// coordinates; those stay behind the disclosure gate.
type NearbyJobResponse struct {
	ID                 kernel.UUID
	Title              string
	Description        string
	Category           kernel.Category
	ApproximateAddress string
	Budget             float64
	Deadline           time.Time
	TimeStart          string
	TimeEnd            string
	DistanceKm         float64
	CreatedAt          time.Time
}
