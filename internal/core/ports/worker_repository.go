package ports

import (
	"context"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/core/domain/model/worker"
)

// WorkerRepository defines the persistence contract for worker aggregates.
// Provides methods for storing, retrieving, and querying worker profiles
// with their complete state including owned notifications.
type WorkerRepository interface {
	// Add persists a new worker aggregate to storage.
	// The worker must be valid and not already exist in the repository.
	Add(ctx context.Context, worker *worker.Worker) error

	// Update persists changes to an existing worker aggregate, including
	// added or mutated notifications.
	Update(ctx context.Context, worker *worker.Worker) error

	// Get retrieves a worker aggregate by its unique identifier.
	// Returns the complete profile with its owned notifications.
	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)

	// GetAll retrieves every registered worker profile. Notification fan-out
	// evaluates its skill match over this full set; the match itself is a
	// domain concern and deliberately not pushed into the query.
	GetAll(ctx context.Context) ([]*worker.Worker, error)
}
