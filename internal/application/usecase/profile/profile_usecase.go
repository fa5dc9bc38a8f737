package profile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/internal/domain/profile"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	cache       service.SectionCache
	notifier    *sections.Notifier
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, cache service.SectionCache, notifier *sections.Notifier, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		cache:       cache,
		notifier:    notifier,
		logger:      log,
	}
}

type GetProfileInput struct {
	Public bool
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteGetProfile never fails on a missing row: an empty profile is
// returned so the page can render placeholders.
func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	if !input.Public {
		p, err := uc.profileRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		return &GetProfileOutput{Profile: p}, nil
	}

	p, err := sections.Load(ctx, uc.cache, uc.logger, content.SectionProfile, "all", uc.profileRepo.Get)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	OwnerID   uuid.UUID
	FullName  string
	Title     string
	Bio       *string
	Email     *string
	Phone     *string
	Location  *string
	Github    *string
	Instagram *string
	Linkedin  *string
	DOB       *time.Time
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	existing, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &profile.Profile{
		ID:        existing.ID,
		UserID:    &input.OwnerID,
		FullName:  input.FullName,
		Title:     input.Title,
		Bio:       content.NilIfBlank(input.Bio),
		Email:     content.NilIfBlank(input.Email),
		Phone:     content.NilIfBlank(input.Phone),
		Location:  content.NilIfBlank(input.Location),
		Github:    content.NilIfBlank(input.Github),
		Instagram: content.NilIfBlank(input.Instagram),
		Linkedin:  content.NilIfBlank(input.Linkedin),
		DOB:       input.DOB,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: now,
	}
	eventType := event.ContentEventUpdated
	if !existing.Exists() {
		p.ID = uuid.New()
		p.CreatedAt = now
		eventType = event.ContentEventCreated
	}

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("profile validation failed", err)
	}
	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	uc.notifier.Changed(ctx, sections.Change{
		Section:    content.SectionProfile,
		Type:       eventType,
		ResourceID: p.ID,
	})
	return &UpdateProfileOutput{Profile: p}, nil
}
