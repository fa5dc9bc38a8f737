package education

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/internal/domain/education"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type EducationUseCase struct {
	repo     education.Repository
	cache    service.SectionCache
	notifier *sections.Notifier
	logger   logger.Logger
}

func NewEducationUseCase(r education.Repository, cache service.SectionCache, notifier *sections.Notifier, log logger.Logger) *EducationUseCase {
	return &EducationUseCase{repo: r, cache: cache, notifier: notifier, logger: log}
}

type EducationInput struct {
	Institution string
	Degree      string
	Field       *string
	Location    *string
	StartDate   *time.Time
	EndDate     *time.Time
	IsCurrent   bool
	Description *string
}

func (in EducationInput) apply(e *education.Education) {
	e.Institution = in.Institution
	e.Degree = in.Degree
	e.Field = content.NilIfBlank(in.Field)
	e.Location = content.NilIfBlank(in.Location)
	e.StartDate = in.StartDate
	e.EndDate = in.EndDate
	e.IsCurrent = in.IsCurrent
	e.Description = content.NilIfBlank(in.Description)
}

func (uc *EducationUseCase) CreateEducation(ctx context.Context, in EducationInput) (*education.Education, error) {
	e := &education.Education{ID: uuid.New(), CreatedAt: time.Now().UTC()}
	in.apply(e)
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("education validation failed", err)
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

func (uc *EducationUseCase) UpdateEducation(ctx context.Context, id uuid.UUID, in EducationInput) (*education.Education, error) {
	e, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(e)
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("education validation failed", err)
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	uc.changed(ctx, event.ContentEventUpdated, e.ID)
	return e, nil
}

func (uc *EducationUseCase) DeleteEducation(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, event.ContentEventDeleted, id)
	return nil
}

func (uc *EducationUseCase) GetEducation(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *EducationUseCase) ListEducation(ctx context.Context) ([]*education.Education, error) {
	return uc.repo.List(ctx)
}

func (uc *EducationUseCase) ListPublicEducation(ctx context.Context) ([]*education.Education, error) {
	return sections.Load(ctx, uc.cache, uc.logger, content.SectionEducation, "all", uc.repo.List)
}

func (uc *EducationUseCase) ReorderEducation(ctx context.Context, ids []uuid.UUID) error {
	if err := content.ValidateOrder(ids); err != nil {
		return apperror.NewInvalidInput("invalid education order", err)
	}
	if err := uc.repo.Reorder(ctx, ids); err != nil {
		return err
	}
	uc.changed(ctx, event.ContentEventReordered, uuid.Nil)
	return nil
}

func (uc *EducationUseCase) changed(ctx context.Context, t event.ContentEventType, id uuid.UUID) {
	uc.notifier.Changed(ctx, sections.Change{Section: content.SectionEducation, Type: t, ResourceID: id})
}
