package service

import (
	"context"

	"github.com/syedmaroof/portfolio-api/adapters/event"
)

type EventPublisher interface {
	PublishContentEvent(ctx context.Context, payload event.ContentEventPayload) error
	PublishContactEvent(ctx context.Context, payload event.ContactEventPayload) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
