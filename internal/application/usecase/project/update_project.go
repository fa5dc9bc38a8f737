package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/internal/domain/project"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	notifier    *sections.Notifier
	logger      logger.Logger
}

func NewUpdateProjectUseCase(pRepo project.Repository, notifier *sections.Notifier, log logger.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: pRepo, notifier: notifier, logger: log}
}

type UpdateProjectInput struct {
	ProjectID   uuid.UUID
	Title       string
	Description *string
	TechStack   []string
	PreviewURL  *string
	GithubURL   *string
	IsFeatured  bool
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*project.Project, error) {
	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	p.Title = input.Title
	p.Description = content.NilIfBlank(input.Description)
	p.TechStack = input.TechStack
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	p.PreviewURL = content.NilIfBlank(input.PreviewURL)
	p.GithubURL = content.NilIfBlank(input.GithubURL)
	p.IsFeatured = input.IsFeatured
	p.UpdatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}
	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.notifier.Changed(ctx, sections.Change{
		Section:    content.SectionProjects,
		Type:       event.ContentEventUpdated,
		ResourceID: p.ID,
	})
	return p, nil
}
