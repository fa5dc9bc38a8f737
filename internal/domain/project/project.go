package project

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/syedmaroof/portfolio-api/internal/domain/content"
)

type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	TechStack    []string  `json:"tech_stack"`
	PreviewURL   *string   `json:"preview_url"`
	GithubURL    *string   `json:"github_url"`
	ImageURL     *string   `json:"image_url"`
	IsFeatured   bool      `json:"is_featured"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ListFilter struct {
	FeaturedOnly bool
}

var (
	ErrTitleRequired = errors.New("title is required")
)

func (p *Project) Validate() error {
	if p.Title == "" {
		return ErrTitleRequired
	}
	if err := content.ValidateURL("preview_url", p.PreviewURL); err != nil {
		return err
	}
	return content.ValidateURL("github_url", p.GithubURL)
}

// ImagePublicID is the media storage id of the project's cover image.
func (p *Project) ImagePublicID(folder string) string {
	return folder + "/projects/" + p.ID.String()
}

type Repository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	List(ctx context.Context, filter ListFilter) ([]*Project, error)
	NextDisplayOrder(ctx context.Context) (int, error)
	Reorder(ctx context.Context, ids []uuid.UUID) error
}
