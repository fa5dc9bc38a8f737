package project

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/internal/domain/project"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	uploader    service.Uploader
	notifier    *sections.Notifier
	logger      logger.Logger
}

func NewDeleteProjectUseCase(pRepo project.Repository, uploader service.Uploader, notifier *sections.Notifier, log logger.Logger) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: pRepo, uploader: uploader, notifier: notifier, logger: log}
}

// Execute removes the row; the stored image is cleaned up by the worker
// from the deleted event.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, projectID uuid.UUID) error {
	p, err := uc.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}

	if err := uc.projectRepo.Delete(ctx, projectID); err != nil {
		return err
	}

	change := sections.Change{
		Section:    content.SectionProjects,
		Type:       event.ContentEventDeleted,
		ResourceID: projectID,
	}
	if p.ImageURL != nil {
		change.ImagePublicID = p.ImagePublicID(uc.uploader.Folder())
	}
	uc.notifier.Changed(ctx, change)

	uc.logger.Info("Project deleted", zap.String("project_id", projectID.String()))
	return nil
}
