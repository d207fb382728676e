package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/kernel"
	"finder/internal/core/domain/services"
	"finder/internal/pkg/errs"
)

// GetJobLocationQueryHandler serves the time-gated location disclosure.
// The authorization and timing rules live in services.DisclosureGate; the
// handler only loads the job and translates the decision.
type GetJobLocationQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGetJobLocationQueryHandler creates a handler for location disclosure.
// Requires a GORM database connection for query execution.
func NewGetJobLocationQueryHandler(db *gorm.DB) GetJobLocationQueryHandler {
	return GetJobLocationQueryHandler{db: db, now: time.Now}
}

// Handle executes the disclosure query at the current instant.
func (h GetJobLocationQueryHandler) Handle(
	ctx context.Context,
	query GetJobLocationQuery,
) (JobLocationResponse, error) {
	if err := query.Validate(); err != nil {
		return JobLocationResponse{}, err
	}

	j, err := h.loadJob(ctx, query.JobID())
	if err != nil {
		return JobLocationResponse{}, err
	}

	disclosure, err := services.NewDisclosureGate().Disclose(j, query.RequesterID(), h.now())
	if err != nil {
		return JobLocationResponse{}, err
	}

	return JobLocationResponse{
		Revealed:   disclosure.Revealed,
		Location:   disclosure.Location,
		Address:    disclosure.Address,
		RevealTime: disclosure.RevealTime,
	}, nil
}

func (h GetJobLocationQueryHandler) loadJob(ctx context.Context, jobID kernel.UUID) (*job.Job, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobColumns+`
		FROM jobs
		WHERE id = ?
	`, jobID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("job", jobID.String())
	}

	return scanJobRow(rows)
}
