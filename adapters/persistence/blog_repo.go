package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syedmaroof/portfolio-api/internal/domain/blog"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

const blogColumns = "id, title, slug, excerpt, content, cover_image, is_published, published_at, created_at, updated_at"

type postgresBlogRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresBlogRepo(db *pgxpool.Pool, logger logger.Logger) blog.Repository {
	return &postgresBlogRepo{db: db, logger: logger}
}

func scanPost(row pgx.Row) (*blog.Post, error) {
	p := &blog.Post{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Excerpt,
		&p.Content,
		&p.CoverImage,
		&p.IsPublished,
		&p.PublishedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("post", "")
		}
		return nil, apperror.NewInternal("failed to scan post row", err)
	}
	return p, nil
}

func scanPosts(rows pgx.Rows) ([]*blog.Post, error) {
	defer rows.Close()
	posts := make([]*blog.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating post rows", err)
	}
	return posts, nil
}

func (r *postgresBlogRepo) Save(ctx context.Context, p *blog.Post) error {
	query := `
		INSERT INTO blog_posts (id, title, slug, excerpt, content, cover_image, is_published, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.CoverImage,
		p.IsPublished, p.PublishedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.NewConflict("post", "slug", p.Slug)
		}
		return apperror.NewInternal("failed to save post", err)
	}
	return nil
}

func (r *postgresBlogRepo) Update(ctx context.Context, p *blog.Post) error {
	query := `
		UPDATE blog_posts SET
			title = $2, slug = $3, excerpt = $4, content = $5,
			is_published = $6, published_at = $7, updated_at = $8
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content,
		p.IsPublished, p.PublishedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.NewConflict("post", "slug", p.Slug)
		}
		return apperror.NewInternal("failed to update post", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("post", p.ID.String())
	}
	return nil
}

func (r *postgresBlogRepo) UpdateCover(ctx context.Context, id uuid.UUID, coverURL string) error {
	query := `UPDATE blog_posts SET cover_image = $2, updated_at = NOW() WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id, coverURL)
	if err != nil {
		return apperror.NewInternal("failed to update post cover", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("post", id.String())
	}
	return nil
}

func (r *postgresBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "blog_posts", "post", id)
}

func (r *postgresBlogRepo) FindByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE id = $1`
	p, err := scanPost(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("post", id.String())
	}
	return p, err
}

func (r *postgresBlogRepo) FindPublishedBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug = $1 AND is_published = true`
	p, err := scanPost(r.db.QueryRow(ctx, query, slug))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("post", slug)
	}
	return p, err
}

func (r *postgresBlogRepo) List(ctx context.Context, limit, offset int) ([]*blog.Post, error) {
	builder := psql.Select(blogColumns).
		From("blog_posts").
		OrderBy("created_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list posts query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query posts", err)
	}
	return scanPosts(rows)
}

func (r *postgresBlogRepo) ListPublished(ctx context.Context, limit int) ([]*blog.Post, error) {
	builder := psql.Select(blogColumns).
		From("blog_posts").
		Where(sq.Eq{"is_published": true}).
		OrderBy("published_at DESC NULLS LAST", "created_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build published posts query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query published posts", err)
	}
	return scanPosts(rows)
}
