package experience

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/internal/domain/experience"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type ExperienceUseCase struct {
	repo     experience.Repository
	cache    service.SectionCache
	notifier *sections.Notifier
	logger   logger.Logger
}

func NewExperienceUseCase(r experience.Repository, cache service.SectionCache, notifier *sections.Notifier, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{repo: r, cache: cache, notifier: notifier, logger: log}
}

type ExperienceInput struct {
	Company     string
	Position    string
	Location    *string
	StartDate   *time.Time
	EndDate     *time.Time
	IsCurrent   bool
	Description *string
}

func (in ExperienceInput) apply(e *experience.Experience) {
	e.Company = in.Company
	e.Position = in.Position
	e.Location = content.NilIfBlank(in.Location)
	e.StartDate = in.StartDate
	e.EndDate = in.EndDate
	e.IsCurrent = in.IsCurrent
	e.Description = content.NilIfBlank(in.Description)
}

func (uc *ExperienceUseCase) CreateExperience(ctx context.Context, in ExperienceInput) (*experience.Experience, error) {
	e := &experience.Experience{ID: uuid.New(), CreatedAt: time.Now().UTC()}
	in.apply(e)
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("experience validation failed", err)
	}

	order, err := uc.repo.NextDisplayOrder(ctx)
	if err != nil {
		return nil, err
	}
	e.DisplayOrder = order

	if err := uc.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	uc.changed(ctx, event.ContentEventCreated, e.ID)
	return e, nil
}

func (uc *ExperienceUseCase) UpdateExperience(ctx context.Context, id uuid.UUID, in ExperienceInput) (*experience.Experience, error) {
	e, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(e)
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("experience validation failed", err)
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	uc.changed(ctx, event.ContentEventUpdated, e.ID)
	return e, nil
}

func (uc *ExperienceUseCase) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, event.ContentEventDeleted, id)
	return nil
}

func (uc *ExperienceUseCase) GetExperience(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *ExperienceUseCase) ListExperience(ctx context.Context) ([]*experience.Experience, error) {
	return uc.repo.List(ctx)
}

func (uc *ExperienceUseCase) ListPublicExperience(ctx context.Context) ([]*experience.Experience, error) {
	return sections.Load(ctx, uc.cache, uc.logger, content.SectionExperience, "all", uc.repo.List)
}

func (uc *ExperienceUseCase) ReorderExperience(ctx context.Context, ids []uuid.UUID) error {
	if err := content.ValidateOrder(ids); err != nil {
		return apperror.NewInvalidInput("invalid experience order", err)
	}
	if err := uc.repo.Reorder(ctx, ids); err != nil {
		return err
	}
	uc.changed(ctx, event.ContentEventReordered, uuid.Nil)
	return nil
}

func (uc *ExperienceUseCase) changed(ctx context.Context, t event.ContentEventType, id uuid.UUID) {
	uc.notifier.Changed(ctx, sections.Change{Section: content.SectionExperience, Type: t, ResourceID: id})
}
