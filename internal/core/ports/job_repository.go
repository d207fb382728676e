// Package ports defines repository and outbound gateway interfaces for the
// job matching domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
// Provides methods for storing, retrieving, and querying job entities
// based on their status, assignment state, and location.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate.
	// The job must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	// Returns the complete job with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllRatedByWorker retrieves every completed job of a worker that
	// carries a review. Used by rating aggregation, which always recomputes
	// over the full set.
	GetAllRatedByWorker(ctx context.Context, workerID kernel.UUID) ([]*job.Job, error)
}
