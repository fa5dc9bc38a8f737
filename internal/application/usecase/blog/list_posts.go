package blog

import (
	"context"
	"strconv"

	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/internal/application/usecase/sections"
	"github.com/syedmaroof/portfolio-api/internal/domain/blog"
	"github.com/syedmaroof/portfolio-api/internal/domain/content"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

const maxPublicLimit = 50

type ListPostsUseCase struct {
	postRepo blog.Repository
}

func NewListPostsUseCase(pRepo blog.Repository) *ListPostsUseCase {
	return &ListPostsUseCase{postRepo: pRepo}
}

type ListPostsInput struct {
	Page  int
	Limit int
}

func (uc *ListPostsUseCase) Execute(ctx context.Context, input ListPostsInput) ([]*blog.Post, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Page <= 0 {
		input.Page = 1
	}
	offset := (input.Page - 1) * input.Limit
	return uc.postRepo.List(ctx, input.Limit, offset)
}

type ListPublicPostsUseCase struct {
	postRepo blog.Repository
	cache    service.SectionCache
	logger   logger.Logger
}

func NewListPublicPostsUseCase(pRepo blog.Repository, cache service.SectionCache, log logger.Logger) *ListPublicPostsUseCase {
	return &ListPublicPostsUseCase{postRepo: pRepo, cache: cache, logger: log}
}

// Execute returns the newest published posts; the landing page asks for
// blog.DefaultLatestLimit.
func (uc *ListPublicPostsUseCase) Execute(ctx context.Context, limit int) ([]*blog.Post, error) {
	if limit <= 0 {
		limit = blog.DefaultLatestLimit
	}
	limit = min(limit, maxPublicLimit)

	return sections.Load(ctx, uc.cache, uc.logger, content.SectionBlog, "latest:"+strconv.Itoa(limit),
		func(ctx context.Context) ([]*blog.Post, error) {
			return uc.postRepo.ListPublished(ctx, limit)
		})
}
