package contact

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject"`
	Body      string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	MaxNameLength    = 120
	MaxSubjectLength = 200
	MaxBodyLength    = 5000
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidEmail    = errors.New("a valid email is required")
	ErrMessageRequired = errors.New("message is required")
	ErrTooLong         = errors.New("message exceeds the allowed length")
)

func (m *Message) Validate() error {
	if m.Name == "" {
		return ErrNameRequired
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return ErrInvalidEmail
	}
	if m.Body == "" {
		return ErrMessageRequired
	}
	if len(m.Name) > MaxNameLength || len(m.Body) > MaxBodyLength ||
		(m.Subject != nil && len(*m.Subject) > MaxSubjectLength) {
		return ErrTooLong
	}
	return nil
}

type ListFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

type Repository interface {
	Save(ctx context.Context, msg *Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*Message, error)
	List(ctx context.Context, filter ListFilter) ([]*Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
