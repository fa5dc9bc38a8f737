package blog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/blog"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type UpdatePostUseCase struct {
	postRepo blog.Repository
	notifier *sections.Notifier
	logger   logger.Logger
}

func NewUpdatePostUseCase(pRepo blog.Repository, notifier *sections.Notifier, log logger.Logger) *UpdatePostUseCase {
	return &UpdatePostUseCase{
		postRepo: pRepo,
		notifier: notifier,
		logger:   log,
	}
}

func (uc *UpdatePostUseCase) Execute(ctx context.Context, postID uuid.UUID, input PostInput) (*blog.Post, error) {
	existingPost, err := uc.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if input.Slug == "" {
		input.Slug = blog.DeriveSlug(input.Title, existingPost.ID)
	}

	now := time.Now().UTC()
	existingPost.Title = input.Title
	existingPost.Slug = input.Slug
	existingPost.Excerpt = content.NilIfBlank(input.Excerpt)
	existingPost.Content = content.NilIfBlank(input.Content)
	existingPost.IsPublished = input.IsPublished
	if input.PublishedAt != nil {
		existingPost.PublishedAt = input.PublishedAt
	}
	existingPost.UpdatedAt = now
	existingPost.ApplyPublication(now)

	if err := existingPost.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("post validation failed", err)
	}
	if err := uc.postRepo.Update(ctx, existingPost); err != nil {
		return nil, err
	}

	uc.notifier.Changed(ctx, sections.Change{
		Section:    content.SectionBlog,
		Type:       event.ContentEventUpdated,
		ResourceID: existingPost.ID,
	})
	return existingPost, nil
}
