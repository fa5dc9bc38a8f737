package blog

import (
	"context"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/internal/domain/blog"
)

type GetPostUseCase struct {
	postRepo blog.Repository
}

func NewGetPostUseCase(pRepo blog.Repository) *GetPostUseCase {
	return &GetPostUseCase{postRepo: pRepo}
}

func (uc *GetPostUseCase) Execute(ctx context.Context, postID uuid.UUID) (*blog.Post, error) {
	return uc.postRepo.FindByID(ctx, postID)
}

type GetPublicPostUseCase struct {
	postRepo blog.Repository
}

func NewGetPublicPostUseCase(pRepo blog.Repository) *GetPublicPostUseCase {
	return &GetPublicPostUseCase{postRepo: pRepo}
}

func (uc *GetPublicPostUseCase) Execute(ctx context.Context, slug string) (*blog.Post, error) {
	return uc.postRepo.FindPublishedBySlug(ctx, slug)
}
