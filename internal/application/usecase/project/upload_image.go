package project

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/internal/domain/project"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type UploadProjectImageUseCase struct {
	projectRepo project.Repository
	uploader    service.Uploader
	notifier    *sections.Notifier
	logger      logger.Logger
}

func NewUploadProjectImageUseCase(pRepo project.Repository, uploader service.Uploader, notifier *sections.Notifier, log logger.Logger) *UploadProjectImageUseCase {
	return &UploadProjectImageUseCase{projectRepo: pRepo, uploader: uploader, notifier: notifier, logger: log}
}

type UploadProjectImageInput struct {
	ProjectID uuid.UUID
	File      io.Reader
}

func (uc *UploadProjectImageUseCase) Execute(ctx context.Context, input UploadProjectImageInput) (*project.Project, error) {
	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	folder := uc.uploader.Folder()
	url, err := uc.uploader.Upload(ctx, input.File, folder+"/projects", p.ID.String())
	if err != nil {
		return nil, apperror.NewInternal("failed to upload project image", err)
	}

	if err := uc.projectRepo.UpdateImage(ctx, p.ID, url); err != nil {
		return nil, err
	}
	p.ImageURL = &url

	uc.notifier.Changed(ctx, sections.Change{
		Section:       content.SectionProjects,
		Type:          event.ContentEventImageUploaded,
		ResourceID:    p.ID,
		ImagePublicID: p.ImagePublicID(folder),
	})

	uc.logger.Info("Project image uploaded", zap.String("project_id", p.ID.String()), zap.String("url", url))
	return p, nil
}
