// Package workerrepo provides data transfer objects and mapping functions for worker persistence.
// This package implements the repository pattern for the worker domain aggregate, handling
// the conversion between domain entities and database representations.
package workerrepo

import (
	"time"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/core/domain/model/worker"

	"github.com/google/uuid"
)

// WorkerDTO represents the database structure for persisting worker aggregates.
// Skills and derived categories are stored as jsonb arrays, matching the
// read-side queries that unmarshal them directly.
type WorkerDTO struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex"`
	Longitude        *float64          `gorm:"type:double precision"`
	Latitude         *float64          `gorm:"type:double precision"`
	Skills           []string          `gorm:"type:jsonb;serializer:json"`
	Categories       []string          `gorm:"type:jsonb;serializer:json"`
	ServiceRadiusKm  float64           `gorm:"type:double precision;not null"`
	PushSubscription *string           `gorm:"type:text"`
	Rating           float64           `gorm:"type:double precision;not null"`
	CompletedJobs    int               `gorm:"type:int;not null"`
	Notifications    []NotificationDTO `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for worker entities.
// Overrides GORM's default naming convention to use "workers" instead of "worker_dtos".
func (WorkerDTO) TableName() string {
	return "workers"
}

// NotificationDTO represents the database structure for persisting notification records.
// Links to worker via foreign key and optionally references the originating job.
type NotificationDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WorkerID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type      string     `gorm:"type:varchar(20);not null"`
	Message   string     `gorm:"type:text;not null"`
	JobID     *uuid.UUID `gorm:"type:uuid;index"`
	IsRead    bool       `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null;index"`
}

// TableName specifies the database table name for notification entities.
// Overrides GORM's default naming convention to use "notifications" instead of "notification_dtos".
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a worker domain aggregate to its database representation.
// Maps the profile and all owned notification records.
func fromDomain(w *worker.Worker) WorkerDTO {
	workerID := w.ID().Bytes()

	var longitude, latitude *float64
	if w.Location() != nil {
		lng := w.Location().Longitude()
		lat := w.Location().Latitude()
		longitude = &lng
		latitude = &lat
	}

	categories := make([]string, 0, len(w.Categories()))
	for _, category := range w.Categories() {
		categories = append(categories, category.String())
	}

	notifications := make([]NotificationDTO, 0, len(w.Notifications()))
	for _, n := range w.Notifications() {
		var jobID *uuid.UUID
		if n.JobID() != nil {
			raw := n.JobID().Bytes()
			jobID = &raw
		}

		notifications = append(notifications, NotificationDTO{
			ID:        n.ID().Bytes(),
			WorkerID:  workerID,
			Type:      n.Type().String(),
			Message:   n.Message(),
			JobID:     jobID,
			IsRead:    n.IsRead(),
			CreatedAt: n.CreatedAt(),
		})
	}

	return WorkerDTO{
		ID:               workerID,
		UserID:           w.UserID().Bytes(),
		Longitude:        longitude,
		Latitude:         latitude,
		Skills:           w.Skills(),
		Categories:       categories,
		ServiceRadiusKm:  w.ServiceRadiusKm(),
		PushSubscription: w.PushSubscription(),
		Rating:           w.Rating(),
		CompletedJobs:    w.CompletedJobs(),
		Notifications:    notifications,
	}
}

// toDomain converts a database DTO to a worker domain aggregate.
// Reconstructs the complete aggregate including all notifications using RestoreWorker.
func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	categories := make([]kernel.Category, 0, len(dto.Categories))
	for _, raw := range dto.Categories {
		category, catErr := kernel.CategoryFromString(raw)
		if catErr != nil {
			return nil, catErr
		}
		categories = append(categories, category)
	}

	notifications := make([]*worker.Notification, 0, len(dto.Notifications))
	for _, nDto := range dto.Notifications {
		n, nErr := notificationToDomain(nDto)
		if nErr != nil {
			return nil, nErr
		}
		notifications = append(notifications, n)
	}

	return worker.RestoreWorker(id, userID, location, dto.Skills, categories,
		dto.ServiceRadiusKm, dto.PushSubscription, dto.Rating, dto.CompletedJobs,
		notifications)
}

// notificationToDomain converts a notification DTO to domain entity.
// Uses RestoreNotification to reconstruct the record with its persisted state.
func notificationToDomain(dto NotificationDTO) (*worker.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var jobID *kernel.UUID
	if dto.JobID != nil {
		jID, jobErr := kernel.UUIDFromBytes((*dto.JobID)[:])
		if jobErr != nil {
			return nil, jobErr
		}
		jobID = &jID
	}

	return worker.RestoreNotification(id, worker.NotificationType(dto.Type),
		dto.Message, jobID, dto.IsRead, dto.CreatedAt)
}
