package event

import (
	"time"

	"github.com/google/uuid"
)

type ContentEventType string

const (
	ContentEventCreated       ContentEventType = "created"
	ContentEventUpdated       ContentEventType = "updated"
	ContentEventDeleted       ContentEventType = "deleted"
	ContentEventReordered     ContentEventType = "reordered"
	ContentEventImageUploaded ContentEventType = "image_uploaded"
)

type ContentEventPayload struct {
	EventType     ContentEventType `json:"event_type"`
	Section       string           `json:"section"`
	ResourceID    uuid.UUID        `json:"resource_id"`
	ImagePublicID string           `json:"image_public_id,omitempty"`
	OccurredAt    time.Time        `json:"occurred_at"`
}

type ContactEventPayload struct {
	MessageID uuid.UUID `json:"message_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
