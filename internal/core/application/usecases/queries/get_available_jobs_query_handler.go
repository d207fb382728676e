package queries

import (
	"context"

	"gorm.io/gorm"

	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/kernel"
)

// GetAvailableJobsQueryHandler serves the open job board: every pending,
// unassigned job whose category fuzzily matches the worker's skills, newest
// first, with no distance bound. A worker does not need a registered
// location to browse the board.
type GetAvailableJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableJobsQueryHandler creates a handler for the job board query.
// Requires a GORM database connection for query execution.
func NewGetAvailableJobsQueryHandler(db *gorm.DB) GetAvailableJobsQueryHandler {
	return GetAvailableJobsQueryHandler{db: db}
}

// Handle executes the job board query.
func (h GetAvailableJobsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableJobsQuery,
) ([]AvailableJobResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	w, err := loadWorkerProfile(ctx, h.db, query.WorkerID())
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobColumns+`
		FROM jobs
		WHERE status = ?
		  AND worker_id IS NULL
		ORDER BY created_at DESC
	`, job.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]AvailableJobResponse, 0)
	for rows.Next() {
		j, scanErr := scanJobRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		if j.Category() != kernel.CategoryGeneral && !w.MatchesCategoryFuzzy(j.Category()) {
			continue
		}

		responses = append(responses, AvailableJobResponse{
			ID:                 j.ID(),
			Title:              j.Title(),
			Description:        j.Description(),
			Category:           j.Category(),
			ApproximateAddress: j.ApproximateAddress(),
			Budget:             j.Budget(),
			Deadline:           j.Deadline(),
			TimeStart:          j.TimeStart(),
			TimeEnd:            j.TimeEnd(),
			CreatedAt:          j.CreatedAt(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
