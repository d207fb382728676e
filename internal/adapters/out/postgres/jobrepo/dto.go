// Package jobrepo provides data transfer objects and mapping functions for job persistence.
// This package implements the repository pattern for the job domain aggregate, handling
// the conversion between domain entities and database representations.
package jobrepo

import (
	"time"

	"finder/internal/core/domain/model/job"
	"finder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// Status and category are stored as their wire strings so the read-side
// queries can filter on them without numeric mapping tables.
type JobDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	WorkerID    *uuid.UUID `gorm:"type:uuid;index"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Category    string     `gorm:"type:varchar(50);not null;index"`
	Longitude   float64    `gorm:"type:double precision;not null"`
	Latitude    float64    `gorm:"type:double precision;not null"`
	Address     string     `gorm:"type:varchar(500);not null"`
	Budget      float64    `gorm:"type:double precision;not null"`
	Deadline    time.Time  `gorm:"not null"`
	TimeStart   string     `gorm:"type:varchar(5);not null"`
	TimeEnd     string     `gorm:"type:varchar(5);not null"`
	Status      string     `gorm:"type:varchar(20);not null;index"`
	Rating      *float64   `gorm:"type:double precision"`
	Review      *string    `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"not null;index"`
}

// TableName specifies the database table name for job entities.
// Overrides GORM's default naming convention to use "jobs" instead of "job_dtos".
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain converts a job domain aggregate to its database representation.
func fromDomain(j *job.Job) JobDTO {
	var workerID *uuid.UUID
	if j.Worker() != nil {
		raw := j.Worker().Bytes()
		workerID = &raw
	}

	return JobDTO{
		ID:          j.ID().Bytes(),
		ClientID:    j.ClientID().Bytes(),
		WorkerID:    workerID,
		Title:       j.Title(),
		Description: j.Description(),
		Category:    j.Category().String(),
		Longitude:   j.Location().Longitude(),
		Latitude:    j.Location().Latitude(),
		Address:     j.Address(),
		Budget:      j.Budget(),
		Deadline:    j.Deadline(),
		TimeStart:   j.TimeStart(),
		TimeEnd:     j.TimeEnd(),
		Status:      j.Status().String(),
		Rating:      j.Rating(),
		Review:      j.Review(),
		CreatedAt:   j.CreatedAt(),
	}
}

// toDomain converts a database DTO to a job domain aggregate.
// Reconstructs the complete aggregate using RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}
		workerID = &wID
	}

	category, err := kernel.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	status, err := job.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(id, clientID, workerID, dto.Title, dto.Description,
		category, location, dto.Address, dto.Budget, dto.Deadline,
		dto.TimeStart, dto.TimeEnd, status, dto.Rating, dto.Review, dto.CreatedAt)
}
