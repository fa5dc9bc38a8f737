package contact

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/internal/domain/contact"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type ContactUseCase struct {
	repo      contact.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewContactUseCase(r contact.Repository, publisher service.EventPublisher, log logger.Logger) *ContactUseCase {
	return &ContactUseCase{repo: r, publisher: publisher, logger: log}
}

type SubmitMessageInput struct {
	Name    string
	Email   string
	Subject *string
	Message string
}

func (uc *ContactUseCase) SubmitMessage(ctx context.Context, in SubmitMessageInput) (*contact.Message, error) {
	if in.Subject != nil {
		s := strings.TrimSpace(*in.Subject)
		in.Subject = &s
	}
	msg := &contact.Message{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Subject:   content.NilIfBlank(in.Subject),
		Body:      strings.TrimSpace(in.Message),
		CreatedAt: time.Now().UTC(),
	}
	if err := msg.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("contact message validation failed", err)
	}
	if err := uc.repo.Save(ctx, msg); err != nil {
		return nil, err
	}

	payload := event.ContactEventPayload{
		MessageID: msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Body:      msg.Body,
		CreatedAt: msg.CreatedAt,
	}
	if msg.Subject != nil {
		payload.Subject = *msg.Subject
	}
	go func() {
		if err := uc.publisher.PublishContactEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish contact event", err, zap.String("message_id", msg.ID.String()))
		}
	}()

	return msg, nil
}

func (uc *ContactUseCase) ListMessages(ctx context.Context, filter contact.ListFilter) ([]*contact.Message, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return uc.repo.List(ctx, filter)
}

func (uc *ContactUseCase) MarkRead(ctx context.Context, id uuid.UUID) error {
	return uc.repo.MarkRead(ctx, id)
}

func (uc *ContactUseCase) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
