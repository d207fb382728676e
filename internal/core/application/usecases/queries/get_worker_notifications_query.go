package queries

import (
	"errors"
	"time"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/core/domain/model/worker"
	"finder/internal/pkg/guard"
)

var ErrGetWorkerNotificationsQueryIsNotConstructed = errors.New(
	"GetWorkerNotificationsQuery must be created via NewGetWorkerNotificationsQuery constructor",
)

// GetWorkerNotificationsQuery retrieves a worker's notification feed,
// newest first.
type GetWorkerNotificationsQuery struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkerNotificationsQuery creates a query for a worker's feed.
func NewGetWorkerNotificationsQuery(workerID kernel.UUID) (GetWorkerNotificationsQuery, error) {
	feedQuery := GetWorkerNotificationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := feedQuery.setWorkerID(workerID); err != nil {
		return GetWorkerNotificationsQuery{}, err
	}

	return feedQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWorkerNotificationsQueryIsNotConstructed if validation fails.
func (q GetWorkerNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerNotificationsQueryIsNotConstructed)
}

// WorkerID returns the owning worker's identifier.
func (q GetWorkerNotificationsQuery) WorkerID() kernel.UUID {
	return q.workerID
}

func (q *GetWorkerNotificationsQuery) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	q.workerID = workerID
	return nil
}

// WorkerNotificationResponse is one feed entry.
type WorkerNotificationResponse struct {
	ID        kernel.UUID
	Type      worker.NotificationType
	Message   string
	JobID     *kernel.UUID
	IsRead    bool
	CreatedAt time.Time
}
