package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/core/domain/model/worker"
)

// GetWorkerNotificationsQueryHandler reads a worker's notification feed
// straight from the store, newest first.
type GetWorkerNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkerNotificationsQueryHandler creates a handler for feed queries.
// Requires a GORM database connection for query execution.
func NewGetWorkerNotificationsQueryHandler(db *gorm.DB) GetWorkerNotificationsQueryHandler {
	return GetWorkerNotificationsQueryHandler{db: db}
}

// Handle executes the feed query.
func (h GetWorkerNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetWorkerNotificationsQuery,
) ([]WorkerNotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, type, message, job_id, is_read, created_at
		FROM notifications
		WHERE worker_id = ?
		ORDER BY created_at DESC
	`, query.WorkerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]WorkerNotificationResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			kind      string
			message   string
			jobID     uuid.NullUUID
			isRead    bool
			createdAt time.Time
		)

		if err = rows.Scan(&id, &kind, &message, &jobID, &isRead, &createdAt); err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		notificationType := worker.NotificationType(kind)
		if err = notificationType.Validate(); err != nil {
			return nil, err
		}

		var jobRef *kernel.UUID
		if jobID.Valid {
			ref, refErr := kernel.UUIDFromBytes(jobID.UUID[:])
			if refErr != nil {
				return nil, refErr
			}
			jobRef = &ref
		}

		responses = append(responses, WorkerNotificationResponse{
			ID:        notificationID,
			Type:      notificationType,
			Message:   message,
			JobID:     jobRef,
			IsRead:    isRead,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
