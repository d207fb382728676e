package worker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/core/domain/model/worker"
)

func Test_NotificationTypeValidate(t *testing.T) {
	tests := []struct {
		name    string
		kind    worker.NotificationType
		wantErr bool
	}{
		{"new job", worker.NotificationNewJob, false},
		{"job update", worker.NotificationJobUpdate, false},
		{"payment", worker.NotificationPayment, false},
		{"message", worker.NotificationMessage, false},
		{"empty", worker.NotificationType(""), true},
		{"unknown", worker.NotificationType("broadcast"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.kind.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_NewNotification(t *testing.T) {
	id := kernel.NewUUID()
	jobID := kernel.NewUUID()

	n, err := worker.NewNotification(id, worker.NotificationNewJob, "New plumbing job nearby", &jobID)

	require.NoError(t, err)
	assert.True(t, n.ID().IsEqual(id))
	assert.Equal(t, worker.NotificationNewJob, n.Type())
	assert.Equal(t, "New plumbing job nearby", n.Message())
	require.NotNil(t, n.JobID())
	assert.True(t, n.JobID().IsEqual(jobID))
	assert.False(t, n.IsRead())
	assert.WithinDuration(t, time.Now().UTC(), n.CreatedAt(), time.Minute)
}

func Test_NewNotificationShouldReturnErrorWhenParamsAreInvalid(t *testing.T) {
	validID := kernel.NewUUID()

	tests := []struct {
		name    string
		id      kernel.UUID
		kind    worker.NotificationType
		message string
	}{
		{"invalid id", kernel.UUID{}, worker.NotificationNewJob, "text"},
		{"invalid type", validID, worker.NotificationType("broadcast"), "text"},
		{"empty message", validID, worker.NotificationNewJob, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := worker.NewNotification(tt.id, tt.kind, tt.message, nil)
			assert.Error(t, err)
		})
	}
}

func Test_NotificationMarkRead(t *testing.T) {
	n, err := worker.NewNotification(kernel.NewUUID(), worker.NotificationMessage, "hello", nil)
	require.NoError(t, err)

	n.MarkRead()
	assert.True(t, n.IsRead())

	n.MarkRead()
	assert.True(t, n.IsRead())
}

func Test_RestoreNotification(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	n, err := worker.RestoreNotification(id, worker.NotificationPayment, "Payment received", nil, true, createdAt)

	require.NoError(t, err)
	assert.True(t, n.ID().IsEqual(id))
	assert.True(t, n.IsRead())
	assert.Equal(t, createdAt, n.CreatedAt())
	assert.Nil(t, n.JobID())
}

func Test_NotificationValidateShouldReturnErrorWhenNotConstructed(t *testing.T) {
	var n worker.Notification
	assert.Error(t, n.Validate())

	var nilNotification *worker.Notification
	assert.Error(t, nilNotification.Validate())
}
