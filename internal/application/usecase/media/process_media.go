package media

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/internal/domain/blog"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/internal/domain/project"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

const (
	ProjectImageTransformation = "c_limit,w_1200"
	BlogCoverTransformation    = "c_fill,g_auto,w_1200,h_630"
)

// ProcessContentEventUseCase is the worker side of content.events: it evicts
// the section on this replica's cache, swaps freshly uploaded images for
// their delivery variant and removes images of deleted rows.
type ProcessContentEventUseCase struct {
	projectRepo project.Repository
	blogRepo    blog.Repository
	uploader    service.Uploader
	cache       service.SectionCache
	logger      logger.Logger
}

func NewProcessContentEventUseCase(pRepo project.Repository, bRepo blog.Repository, u service.Uploader, cache service.SectionCache, log logger.Logger) *ProcessContentEventUseCase {
	return &ProcessContentEventUseCase{projectRepo: pRepo, blogRepo: bRepo, uploader: u, cache: cache, logger: log}
}

func (uc *ProcessContentEventUseCase) Execute(ctx context.Context, payload event.ContentEventPayload) error {
	l := uc.logger.With(
		zap.String("section", payload.Section),
		zap.String("resource_id", payload.ResourceID.String()),
		zap.String("event_type", string(payload.EventType)),
	)
	l.Info("Worker UseCase processing content event")

	switch payload.EventType {
	case event.ContentEventImageUploaded:
		if err := uc.applyVariant(ctx, l, payload); err != nil {
			return err
		}
	case event.ContentEventDeleted:
		if payload.ImagePublicID != "" {
			if err := uc.uploader.Delete(ctx, payload.ImagePublicID); err != nil {
				return apperror.NewInternal("failed to delete image", err)
			}
			l.Info("Deleted image of removed resource", zap.String("public_id", payload.ImagePublicID))
		}
	}

	if err := uc.cache.Invalidate(ctx, payload.Section); err != nil {
		return apperror.NewInternal("failed to invalidate section cache", err)
	}
	return nil
}

func (uc *ProcessContentEventUseCase) applyVariant(ctx context.Context, l logger.Logger, payload event.ContentEventPayload) error {
	if payload.ImagePublicID == "" {
		l.Warn("Image event without public id, skipping")
		return nil
	}

	var (
		transformation string
		current        func(context.Context, uuid.UUID) (*string, error)
		store          func(context.Context, uuid.UUID, string) error
	)
	switch payload.Section {
	case content.SectionProjects:
		transformation = ProjectImageTransformation
		current = func(ctx context.Context, id uuid.UUID) (*string, error) {
			p, err := uc.projectRepo.FindByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return p.ImageURL, nil
		}
		store = uc.projectRepo.UpdateImage
	case content.SectionBlog:
		transformation = BlogCoverTransformation
		current = func(ctx context.Context, id uuid.UUID) (*string, error) {
			p, err := uc.blogRepo.FindByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return p.CoverImage, nil
		}
		store = uc.blogRepo.UpdateCover
	default:
		l.Warn("Image event for a section without images, skipping")
		return nil
	}

	existing, err := current(ctx, payload.ResourceID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			l.Warn("Resource not found, skipping event")
			return nil
		}
		return apperror.NewInternal("failed to load resource", err)
	}

	variantURL, err := uc.uploader.VariantURL(payload.ImagePublicID, transformation)
	if err != nil {
		return apperror.NewInternal("failed to build image variant URL", err)
	}
	if existing != nil && *existing == variantURL {
		l.Info("Image already points at its variant, skipping")
		return nil
	}

	if err := store(ctx, payload.ResourceID, variantURL); err != nil {
		return apperror.NewInternal("failed to store image variant", err)
	}
	l.Info("Stored image variant", zap.String("url", variantURL))
	return nil
}
