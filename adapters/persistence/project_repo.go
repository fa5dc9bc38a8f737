package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syedmaroof/portfolio-api/internal/domain/project"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

const projectColumns = "id, title, description, tech_stack, preview_url, github_url, image_url, is_featured, display_order, created_at, updated_at"

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.TechStack,
		&p.PreviewURL,
		&p.GithubURL,
		&p.ImageURL,
		&p.IsFeatured,
		&p.DisplayOrder,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	return p, nil
}

func scanProjects(rows pgx.Rows) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func techStack(p *project.Project) []string {
	if p.TechStack == nil {
		return []string{}
	}
	return p.TechStack
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (id, title, description, tech_stack, preview_url, github_url, image_url, is_featured, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, techStack(p), p.PreviewURL, p.GithubURL,
		p.ImageURL, p.IsFeatured, p.DisplayOrder, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects SET
			title = $2, description = $3, tech_stack = $4, preview_url = $5,
			github_url = $6, is_featured = $7, updated_at = $8
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, techStack(p), p.PreviewURL,
		p.GithubURL, p.IsFeatured, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", p.ID.String())
	}
	return nil
}

func (r *postgresProjectRepo) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	query := `UPDATE projects SET image_url = $2, updated_at = NOW() WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id, imageURL)
	if err != nil {
		return apperror.NewInternal("failed to update project image", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", id.String())
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "projects", "project", id)
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("project", id.String())
	}
	return p, err
}

func (r *postgresProjectRepo) List(ctx context.Context, filter project.ListFilter) ([]*project.Project, error) {
	builder := psql.Select(projectColumns).
		From("projects").
		OrderBy("display_order ASC", "created_at ASC")
	if filter.FeaturedOnly {
		builder = builder.Where(sq.Eq{"is_featured": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	return scanProjects(rows)
}

func (r *postgresProjectRepo) NextDisplayOrder(ctx context.Context) (int, error) {
	return nextDisplayOrder(ctx, r.db, "projects")
}

func (r *postgresProjectRepo) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return reorder(ctx, r.db, "projects", "project", ids)
}
