package domain

import (
	"github.com/google/uuid"
)

// Notification is the core domain entity: a single SMS derived from an
// order event, addressed and ready for dispatch.
type Notification struct {
	ID    uuid.UUID
	Phone Phone
	Body  string
}

// NewNotification creates a Notification with a generated message ID.
// The ID is what the gateway receives as the per-message identifier.
func NewNotification(phone Phone, body string) Notification {
	return Notification{
		ID:    uuid.New(),
		Phone: phone,
		Body:  body,
	}
}

// DispatchResult is the gateway's answer after submitting a notification.
// It lives only for the duration of the request.
type DispatchResult struct {
	MessageID string
}
