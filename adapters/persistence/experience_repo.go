package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syedmaroof/portfolio-api/internal/domain/experience"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

const experienceColumns = "id, company, position, location, start_date, end_date, is_current, description, display_order, created_at"

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

func scanExperience(row pgx.Row) (*experience.Experience, error) {
	e := &experience.Experience{}
	err := row.Scan(
		&e.ID, &e.Company, &e.Position, &e.Location,
		&e.StartDate, &e.EndDate, &e.IsCurrent, &e.Description,
		&e.DisplayOrder, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("experience", "")
		}
		return nil, apperror.NewInternal("failed to scan experience row", err)
	}
	return e, nil
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	query := `
		INSERT INTO experience (id, company, position, location, start_date, end_date, is_current, description, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.Company, e.Position, e.Location,
		e.StartDate, e.EndDate, e.IsCurrent, e.Description,
		e.DisplayOrder, e.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save experience", err)
	}
	return nil
}

func (r *postgresExperienceRepo) Update(ctx context.Context, e *experience.Experience) error {
	query := `
		UPDATE experience SET
			company = $2, position = $3, location = $4,
			start_date = $5, end_date = $6, is_current = $7, description = $8
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		e.ID, e.Company, e.Position, e.Location,
		e.StartDate, e.EndDate, e.IsCurrent, e.Description,
	)
	if err != nil {
		return apperror.NewInternal("failed to update experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", e.ID.String())
	}
	return nil
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "experience", "experience", id)
}

func (r *postgresExperienceRepo) FindByID(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experience WHERE id = $1`
	e, err := scanExperience(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("experience", id.String())
	}
	return e, err
}

func (r *postgresExperienceRepo) List(ctx context.Context) ([]*experience.Experience, error) {
	sql, args, err := psql.Select(experienceColumns).
		From("experience").
		OrderBy("display_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list experience query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experience", err)
	}
	defer rows.Close()

	entries := make([]*experience.Experience, 0)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}
	return entries, nil
}

func (r *postgresExperienceRepo) NextDisplayOrder(ctx context.Context) (int, error) {
	return nextDisplayOrder(ctx, r.db, "experience")
}

func (r *postgresExperienceRepo) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return reorder(ctx, r.db, "experience", "experience", ids)
}
