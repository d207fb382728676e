// Package queries contains read operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read the
// store directly through raw SQL and map rows back onto domain aggregates,
// bypassing the write-side repositories.
package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/kernel"
)

// jobColumns is the select list every job-reading query shares, in the order
// scanJobRow expects.
const jobColumns = `
	id, client_id, worker_id, title, description, category,
	longitude, latitude, address, budget, deadline,
	time_start, time_end, status, rating, review, created_at`

// scanJobRow maps one row of jobColumns back onto a Job aggregate.
func scanJobRow(rows *sql.Rows) (*job.Job, error) {
	var (
		id        uuid.UUID
		clientID  uuid.UUID
		workerID  uuid.NullUUID
		title     string
		desc      string
		category  string
		longitude float64
		latitude  float64
		address   string
		budget    float64
		deadline  time.Time
		timeStart string
		timeEnd   string
		status    string
		rating    sql.NullFloat64
		review    sql.NullString
		createdAt time.Time
	)

	if err := rows.Scan(
		&id, &clientID, &workerID, &title, &desc, &category,
		&longitude, &latitude, &address, &budget, &deadline,
		&timeStart, &timeEnd, &status, &rating, &review, &createdAt,
	); err != nil {
		return nil, err
	}

	jobID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	posterID, err := kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return nil, err
	}

	var assignee *kernel.UUID
	if workerID.Valid {
		w, idErr := kernel.UUIDFromBytes(workerID.UUID[:])
		if idErr != nil {
			return nil, idErr
		}
		assignee = &w
	}

	location, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return nil, err
	}

	jobCategory, err := kernel.CategoryFromString(category)
	if err != nil {
		return nil, err
	}

	jobStatus, err := job.StatusFromString(status)
	if err != nil {
		return nil, err
	}

	var ratingValue *float64
	if rating.Valid {
		ratingValue = &rating.Float64
	}
	var reviewValue *string
	if review.Valid {
		reviewValue = &review.String
	}

	return job.RestoreJob(
		jobID, posterID, assignee, title, desc, jobCategory, location, address,
		budget, deadline, timeStart, timeEnd, jobStatus, ratingValue, reviewValue, createdAt,
	)
}
