package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/service"
)

type SectionCache struct{ mock.Mock }

func (m *SectionCache) Get(ctx context.Context, section, variant string, dest any) (bool, error) {
	args := m.Called(ctx, section, variant, dest)
	return args.Bool(0), args.Error(1)
}

func (m *SectionCache) Set(ctx context.Context, section, variant string, value any) error {
	return m.Called(ctx, section, variant, value).Error(0)
}

func (m *SectionCache) Invalidate(ctx context.Context, sections ...string) error {
	args := make([]any, 0, len(sections)+1)
	args = append(args, ctx)
	for _, s := range sections {
		args = append(args, s)
	}
	return m.Called(args...).Error(0)
}

// NewMissingCache returns a cache that always misses and accepts every write.
func NewMissingCache() *SectionCache {
	c := &SectionCache{}
	c.On("Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Maybe()
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	c.On("Invalidate", mock.Anything, mock.Anything).Return(nil).Maybe()
	return c
}

type EventPublisher struct{ mock.Mock }

func (m *EventPublisher) PublishContentEvent(ctx context.Context, payload event.ContentEventPayload) error {
	return m.Called(ctx, payload).Error(0)
}

func (m *EventPublisher) PublishContactEvent(ctx context.Context, payload event.ContactEventPayload) error {
	return m.Called(ctx, payload).Error(0)
}

// NewQuietPublisher accepts every event. Publishing runs on a goroutine, so
// tests that do not wait for it must not assert on it.
func NewQuietPublisher() *EventPublisher {
	p := &EventPublisher{}
	p.On("PublishContentEvent", mock.Anything, mock.Anything).Return(nil).Maybe()
	p.On("PublishContactEvent", mock.Anything, mock.Anything).Return(nil).Maybe()
	return p
}

type Uploader struct{ mock.Mock }

func (m *Uploader) Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error) {
	args := m.Called(ctx, file, folder, publicID)
	return args.String(0), args.Error(1)
}

func (m *Uploader) Delete(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

func (m *Uploader) VariantURL(publicID string, transformation string) (string, error) {
	args := m.Called(publicID, transformation)
	return args.String(0), args.Error(1)
}

func (m *Uploader) Folder() string {
	return m.Called().String(0)
}

type RateLimiter struct{ mock.Mock }

func (m *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (*service.RateLimitResult, error) {
	args := m.Called(ctx, key, limit, window)
	v, _ := args.Get(0).(*service.RateLimitResult)
	return v, args.Error(1)
}

type TokenDenylist struct{ mock.Mock }

func (m *TokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return m.Called(ctx, tokenID, ttl).Error(0)
}

func (m *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

type Mailer struct{ mock.Mock }

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}
