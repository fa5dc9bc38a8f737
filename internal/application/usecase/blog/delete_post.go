package blog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/blog"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type DeletePostUseCase struct {
	postRepo blog.Repository
	uploader service.Uploader
	notifier *sections.Notifier
	logger   logger.Logger
}

func NewDeletePostUseCase(pRepo blog.Repository, uploader service.Uploader, notifier *sections.Notifier, log logger.Logger) *DeletePostUseCase {
	return &DeletePostUseCase{
		postRepo: pRepo,
		uploader: uploader,
		notifier: notifier,
		logger:   log,
	}
}

func (uc *DeletePostUseCase) Execute(ctx context.Context, postID uuid.UUID) error {
	p, err := uc.postRepo.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := uc.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	change := sections.Change{
		Section:    content.SectionBlog,
		Type:       event.ContentEventDeleted,
		ResourceID: postID,
	}
	if p.CoverImage != nil {
		change.ImagePublicID = p.CoverPublicID(uc.uploader.Folder())
	}
	uc.notifier.Changed(ctx, change)

	uc.logger.Info("Post deleted", zap.String("post_id", postID.String()))
	return nil
}
