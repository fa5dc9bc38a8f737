package blog

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/blog"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type UploadCoverUseCase struct {
	postRepo blog.Repository
	uploader service.Uploader
	notifier *sections.Notifier
	logger   logger.Logger
}

func NewUploadCoverUseCase(pRepo blog.Repository, uploader service.Uploader, notifier *sections.Notifier, log logger.Logger) *UploadCoverUseCase {
	return &UploadCoverUseCase{postRepo: pRepo, uploader: uploader, notifier: notifier, logger: log}
}

func (uc *UploadCoverUseCase) Execute(ctx context.Context, postID uuid.UUID, file io.Reader) (*blog.Post, error) {
	p, err := uc.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	folder := uc.uploader.Folder()
	url, err := uc.uploader.Upload(ctx, file, folder+"/blog", p.ID.String())
	if err != nil {
		return nil, apperror.NewInternal("failed to upload cover image", err)
	}
	if err := uc.postRepo.UpdateCover(ctx, p.ID, url); err != nil {
		return nil, err
	}
	p.CoverImage = &url

	uc.notifier.Changed(ctx, sections.Change{
		Section:       content.SectionBlog,
		Type:          event.ContentEventImageUploaded,
		ResourceID:    p.ID,
		ImagePublicID: p.CoverPublicID(folder),
	})
	uc.logger.Info("Post cover uploaded", zap.String("post_id", p.ID.String()))
	return p, nil
}
