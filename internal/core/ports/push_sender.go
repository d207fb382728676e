package ports

import (
	"context"
)

// PushNotification is the payload handed to the push transport.
type PushNotification struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushSender defines the outbound contract for delivering push notifications
// to a worker's device. Delivery is best-effort: a failed send must not fail
// the business operation that triggered it.
type PushSender interface {
	// Send delivers one notification to the endpoint identified by the
	// worker's stored push subscription.
	Send(ctx context.Context, subscription string, notification PushNotification) error
}
