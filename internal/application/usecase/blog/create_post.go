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

type CreatePostUseCase struct {
	postRepo blog.Repository
	notifier *sections.Notifier
	logger   logger.Logger
}

func NewCreatePostUseCase(pRepo blog.Repository, notifier *sections.Notifier, log logger.Logger) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo: pRepo,
		notifier: notifier,
		logger:   log,
	}
}

type PostInput struct {
	Title       string
	Slug        string
	Excerpt     *string
	Content     *string
	IsPublished bool
	PublishedAt *time.Time
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, input PostInput) (*blog.Post, error) {
	id := uuid.New()
	if input.Slug == "" {
		input.Slug = blog.DeriveSlug(input.Title, id)
	}

	now := time.Now().UTC()
	newPost := &blog.Post{
		ID:          id,
		Title:       input.Title,
		Slug:        input.Slug,
		Excerpt:     content.NilIfBlank(input.Excerpt),
		Content:     content.NilIfBlank(input.Content),
		IsPublished: input.IsPublished,
		PublishedAt: input.PublishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	newPost.ApplyPublication(now)

	if err := newPost.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("post validation failed", err)
	}
	if err := uc.postRepo.Save(ctx, newPost); err != nil {
		return nil, err
	}

	uc.notifier.Changed(ctx, sections.Change{
		Section:    content.SectionBlog,
		Type:       event.ContentEventCreated,
		ResourceID: newPost.ID,
	})
	return newPost, nil
}
