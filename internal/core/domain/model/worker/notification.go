package worker

import (
	"fmt"
	"strings"
	"time"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/pkg/errs"
)

// NotificationType classifies a notification record.
type NotificationType string

const (
	// NotificationNewJob is appended by the dispatcher when a matching job is
	// posted.
	NotificationNewJob NotificationType = "new_job"
	// NotificationJobUpdate signals a status change on a job the worker is
	// involved with.
	NotificationJobUpdate NotificationType = "job_update"
	// NotificationPayment signals a payment event.
	NotificationPayment NotificationType = "payment"
	// NotificationMessage carries a free-form message.
	NotificationMessage NotificationType = "message"
)

// getValidNotificationTypes returns the closed set of notification types.
func getValidNotificationTypes() map[NotificationType]struct{} {
	return map[NotificationType]struct{}{
		NotificationNewJob:    {},
		NotificationJobUpdate: {},
		NotificationPayment:   {},
		NotificationMessage:   {},
	}
}

// Validate checks that the type belongs to the closed set.
func (t NotificationType) Validate() error {
	if _, ok := getValidNotificationTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"notification type is invalid",
			fmt.Errorf("%q is not a valid notification type", string(t)),
		)
	}
	return nil
}

// String returns the wire-format tag.
func (t NotificationType) String() string {
	return string(t)
}

// Notification is an entity owned exclusively by the Worker aggregate it was
// appended to; it is never shared or referenced elsewhere. Records keep their
// insertion order on the aggregate, and consumers may re-sort by CreatedAt
// descending.
type Notification struct {
	id        kernel.UUID
	kind      NotificationType
	message   string
	jobID     *kernel.UUID
	isRead    bool
	createdAt time.Time

	isConstructed bool
}

// NewNotification creates an unread notification stamped with the current
// time.
//
// Parameters:
//   - id: Unique identifier for the record
//   - kind: One of the closed notification types
//   - message: Human-readable text (required)
//   - jobID: Optional reference to the job that caused the notification
func NewNotification(
	id kernel.UUID,
	kind NotificationType,
	message string,
	jobID *kernel.UUID,
) (*Notification, error) {
	n := &Notification{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := n.setID(id); err != nil {
		return nil, err
	}
	if err := n.setKind(kind); err != nil {
		return nil, err
	}
	if err := n.setMessage(message); err != nil {
		return nil, err
	}
	if err := n.setJobID(jobID); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a notification from persistence.
// Used by repository adapters only.
func RestoreNotification(
	id kernel.UUID,
	kind NotificationType,
	message string,
	jobID *kernel.UUID,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, kind, message, jobID)
	if err != nil {
		return nil, err
	}

	n.isRead = isRead
	n.createdAt = createdAt
	return n, nil
}

// Validate ensures the notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return errs.NewValueIsRequiredError(
			"notification must be created via NewNotification or RestoreNotification constructors")
	}
	return nil
}

// ID returns the record's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// Type returns the notification classification.
func (n *Notification) Type() NotificationType {
	return n.kind
}

// Message returns the human-readable text.
func (n *Notification) Message() string {
	return n.message
}

// JobID returns the referenced job, or nil when the notification is not tied
// to one.
func (n *Notification) JobID() *kernel.UUID {
	return n.jobID
}

// IsRead reports whether the worker has read the record.
func (n *Notification) IsRead() bool {
	return n.isRead
}

// CreatedAt returns the append time.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead flags the record as read. Marking an already-read record is a
// no-op.
func (n *Notification) MarkRead() {
	n.isRead = true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setKind(kind NotificationType) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	n.kind = kind
	return nil
}

func (n *Notification) setMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setJobID(jobID *kernel.UUID) error {
	if jobID == nil {
		return nil
	}
	if err := jobID.Validate(); err != nil {
		return err
	}
	id := *jobID
	n.jobID = &id
	return nil
}
