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

type CreateProjectUseCase struct {
	projectRepo project.Repository
	notifier    *sections.Notifier
	logger      logger.Logger
}

func NewCreateProjectUseCase(pRepo project.Repository, notifier *sections.Notifier, log logger.Logger) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: pRepo,
		notifier:    notifier,
		logger:      log,
	}
}

type CreateProjectInput struct {
	Title       string
	Description *string
	TechStack   []string
	PreviewURL  *string
	GithubURL   *string
	IsFeatured  bool
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*project.Project, error) {
	now := time.Now().UTC()

	newProject := &project.Project{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: content.NilIfBlank(input.Description),
		TechStack:   input.TechStack,
		PreviewURL:  content.NilIfBlank(input.PreviewURL),
		GithubURL:   content.NilIfBlank(input.GithubURL),
		IsFeatured:  input.IsFeatured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if newProject.TechStack == nil {
		newProject.TechStack = []string{}
	}

	if err := newProject.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}

	order, err := uc.projectRepo.NextDisplayOrder(ctx)
	if err != nil {
		return nil, err
	}
	newProject.DisplayOrder = order

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		return nil, err
	}

	uc.notifier.Changed(ctx, sections.Change{
		Section:    content.SectionProjects,
		Type:       event.ContentEventCreated,
		ResourceID: newProject.ID,
	})
	return newProject, nil
}
