package contact

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

// NotifyOwnerUseCase runs in the worker for every contact event.
type NotifyOwnerUseCase struct {
	mailer   service.Mailer
	notifyTo string
	logger   logger.Logger
}

func NewNotifyOwnerUseCase(mailer service.Mailer, notifyTo string, log logger.Logger) *NotifyOwnerUseCase {
	return &NotifyOwnerUseCase{mailer: mailer, notifyTo: notifyTo, logger: log}
}

func (uc *NotifyOwnerUseCase) Execute(ctx context.Context, payload event.ContactEventPayload) error {
	l := uc.logger.With(zap.String("message_id", payload.MessageID.String()))
	if uc.notifyTo == "" {
		l.Warn("No owner address configured, skipping contact notification")
		return nil
	}

	subject := "New portfolio message from " + payload.Name
	if payload.Subject != "" {
		subject += ": " + payload.Subject
	}

	var body strings.Builder
	fmt.Fprintf(&body, "From: %s <%s>\n", payload.Name, payload.Email)
	fmt.Fprintf(&body, "Sent: %s\n\n", payload.CreatedAt.Format("2006-01-02 15:04 MST"))
	body.WriteString(payload.Body)
	body.WriteString("\n")

	if err := uc.mailer.Send(ctx, uc.notifyTo, subject, body.String()); err != nil {
		return apperror.NewInternal("failed to send contact notification", err)
	}
	l.Info("Contact notification sent")
	return nil
}
