package skill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/internal/domain/skill"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type SkillUseCase struct {
	repo     skill.Repository
	cache    service.SectionCache
	notifier *sections.Notifier
	logger   logger.Logger
}

func NewSkillUseCase(r skill.Repository, cache service.SectionCache, notifier *sections.Notifier, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{repo: r, cache: cache, notifier: notifier, logger: log}
}

type SkillInput struct {
	Name        string
	Category    string
	Proficiency *int
	Icon        *string
}

func (uc *SkillUseCase) CreateSkill(ctx context.Context, in SkillInput) (*skill.Skill, error) {
	s := &skill.Skill{
		ID:          uuid.New(),
		Name:        in.Name,
		Category:    in.Category,
		Proficiency: in.Proficiency,
		Icon:        content.NilIfBlank(in.Icon),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill validation failed", err)
	}

	order, err := uc.repo.NextDisplayOrder(ctx)
	if err != nil {
		return nil, err
	}
	s.DisplayOrder = order

	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	uc.changed(ctx, event.ContentEventCreated, s.ID)
	return s, nil
}

func (uc *SkillUseCase) UpdateSkill(ctx context.Context, id uuid.UUID, in SkillInput) (*skill.Skill, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Name = in.Name
	s.Category = in.Category
	s.Proficiency = in.Proficiency
	s.Icon = content.NilIfBlank(in.Icon)

	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill validation failed", err)
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	uc.changed(ctx, event.ContentEventUpdated, s.ID)
	return s, nil
}

func (uc *SkillUseCase) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, event.ContentEventDeleted, id)
	return nil
}

func (uc *SkillUseCase) GetSkill(ctx context.Context, id uuid.UUID) (*skill.Skill, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *SkillUseCase) ListSkills(ctx context.Context) ([]*skill.Skill, error) {
	return uc.repo.List(ctx)
}

func (uc *SkillUseCase) ListPublicSkills(ctx context.Context) ([]*skill.Skill, error) {
	return sections.Load(ctx, uc.cache, uc.logger, content.SectionSkills, "all", uc.repo.List)
}

func (uc *SkillUseCase) ListGroupedSkills(ctx context.Context) ([]skill.Group, error) {
	return sections.Load(ctx, uc.cache, uc.logger, content.SectionSkills, "grouped",
		func(ctx context.Context) ([]skill.Group, error) {
			skills, err := uc.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			return skill.GroupByCategory(skills), nil
		})
}

func (uc *SkillUseCase) ReorderSkills(ctx context.Context, ids []uuid.UUID) error {
	if err := content.ValidateOrder(ids); err != nil {
		return apperror.NewInvalidInput("invalid skill order", err)
	}
	if err := uc.repo.Reorder(ctx, ids); err != nil {
		return err
	}
	uc.changed(ctx, event.ContentEventReordered, uuid.Nil)
	return nil
}

func (uc *SkillUseCase) changed(ctx context.Context, t event.ContentEventType, id uuid.UUID) {
	uc.notifier.Changed(ctx, sections.Change{Section: content.SectionSkills, Type: t, ResourceID: id})
}
