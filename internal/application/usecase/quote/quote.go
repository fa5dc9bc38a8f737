package quote

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/internal/domain/quote"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type QuoteUseCase struct {
	repo     quote.Repository
	notifier *sections.Notifier
	logger   logger.Logger
}

func NewQuoteUseCase(r quote.Repository, notifier *sections.Notifier, log logger.Logger) *QuoteUseCase {
	return &QuoteUseCase{repo: r, notifier: notifier, logger: log}
}

type QuoteInput struct {
	Text          string
	CharacterName *string
}

// RandomQuote falls back to the built-in quotes while the table is empty.
func (uc *QuoteUseCase) RandomQuote(ctx context.Context) (*quote.Quote, error) {
	q, err := uc.repo.Random(ctx)
	if errors.Is(err, apperror.ErrNotFound) {
		fallback := quote.RandomDefault()
		return &fallback, nil
	}
	if err != nil {
		uc.logger.Warn("Random quote query failed", zap.Error(err))
		return nil, err
	}
	return q, nil
}

func (uc *QuoteUseCase) ListQuotes(ctx context.Context) ([]*quote.Quote, error) {
	return uc.repo.List(ctx)
}

func (uc *QuoteUseCase) CreateQuote(ctx context.Context, in QuoteInput) (*quote.Quote, error) {
	q := &quote.Quote{
		ID:            uuid.New(),
		Text:          in.Text,
		CharacterName: content.NilIfBlank(in.CharacterName),
		CreatedAt:     time.Now().UTC(),
	}
	if err := q.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("quote validation failed", err)
	}
	if err := uc.repo.Save(ctx, q); err != nil {
		return nil, err
	}
	uc.changed(ctx, event.ContentEventCreated, q.ID)
	return q, nil
}

func (uc *QuoteUseCase) UpdateQuote(ctx context.Context, id uuid.UUID, in QuoteInput) (*quote.Quote, error) {
	q, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	q.Text = in.Text
	q.CharacterName = content.NilIfBlank(in.CharacterName)
	if err := q.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("quote validation failed", err)
	}
	if err := uc.repo.Update(ctx, q); err != nil {
		return nil, err
	}
	uc.changed(ctx, event.ContentEventUpdated, q.ID)
	return q, nil
}

func (uc *QuoteUseCase) DeleteQuote(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, event.ContentEventDeleted, id)
	return nil
}

func (uc *QuoteUseCase) changed(ctx context.Context, t event.ContentEventType, id uuid.UUID) {
	uc.notifier.Changed(ctx, sections.Change{Section: content.SectionQuotes, Type: t, ResourceID: id})
}
