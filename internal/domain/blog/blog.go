package blog

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt"`
	Content     *string    `json:"content"`
	CoverImage  *string    `json:"cover_image"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

const DefaultLatestLimit = 3

var (
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidSlug   = errors.New("slug only includes lowercase letter, digit and -")
	slugRegex        = regexp.MustCompile(`^[a-z0-9-]+$`)
	nonSlugChars     = regexp.MustCompile(`[^a-z0-9]+`)
)

func Slugify(title string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// DeriveSlug slugifies the title, or names the post after its id when the
// title has no ASCII letters or digits.
func DeriveSlug(title string, id uuid.UUID) string {
	if s := Slugify(title); s != "" {
		return s
	}
	return "post-" + id.String()[:8]
}

func (p *Post) Validate() error {
	if p.Title == "" {
		return ErrTitleRequired
	}
	if !slugRegex.MatchString(p.Slug) {
		return ErrInvalidSlug
	}
	return nil
}

// ApplyPublication stamps the first publication time. Unpublishing keeps
// PublishedAt.
func (p *Post) ApplyPublication(now time.Time) {
	if p.IsPublished && p.PublishedAt == nil {
		t := now
		p.PublishedAt = &t
	}
}

func (p *Post) CoverPublicID(folder string) string {
	return folder + "/blog/" + p.ID.String()
}

type Repository interface {
	Save(ctx context.Context, post *Post) error
	Update(ctx context.Context, post *Post) error
	UpdateCover(ctx context.Context, id uuid.UUID, coverURL string) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*Post, error)
	List(ctx context.Context, limit, offset int) ([]*Post, error)
	ListPublished(ctx context.Context, limit int) ([]*Post, error)
}
