package project

import (
	"context"

	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/internal/domain/project"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
	cache       service.SectionCache
	logger      logger.Logger
}

func NewListProjectsUseCase(pRepo project.Repository, cache service.SectionCache, log logger.Logger) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: pRepo, cache: cache, logger: log}
}

type ListProjectsInput struct {
	FeaturedOnly bool
	// Public reads go through the section cache; the admin editor always
	// sees the database.
	Public bool
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) ([]*project.Project, error) {
	filter := project.ListFilter{FeaturedOnly: input.FeaturedOnly}
	if !input.Public {
		return uc.projectRepo.List(ctx, filter)
	}

	variant := "all"
	if input.FeaturedOnly {
		variant = "featured"
	}
	return sections.Load(ctx, uc.cache, uc.logger, content.SectionProjects, variant,
		func(ctx context.Context) ([]*project.Project, error) {
			return uc.projectRepo.List(ctx, filter)
		})
}
