package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syedmaroof/portfolio-api/internal/domain/education"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

const educationColumns = "id, institution, degree, field, location, start_date, end_date, is_current, description, display_order, created_at"

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

func scanEducation(row pgx.Row) (*education.Education, error) {
	e := &education.Education{}
	err := row.Scan(
		&e.ID, &e.Institution, &e.Degree, &e.Field, &e.Location,
		&e.StartDate, &e.EndDate, &e.IsCurrent, &e.Description,
		&e.DisplayOrder, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("education", "")
		}
		return nil, apperror.NewInternal("failed to scan education row", err)
	}
	return e, nil
}

func (r *postgresEducationRepo) Save(ctx context.Context, e *education.Education) error {
	query := `
		INSERT INTO education (id, institution, degree, field, location, start_date, end_date, is_current, description, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.Institution, e.Degree, e.Field, e.Location,
		e.StartDate, e.EndDate, e.IsCurrent, e.Description,
		e.DisplayOrder, e.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save education", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *education.Education) error {
	query := `
		UPDATE education SET
			institution = $2, degree = $3, field = $4, location = $5,
			start_date = $6, end_date = $7, is_current = $8, description = $9
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		e.ID, e.Institution, e.Degree, e.Field, e.Location,
		e.StartDate, e.EndDate, e.IsCurrent, e.Description,
	)
	if err != nil {
		return apperror.NewInternal("failed to update education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", e.ID.String())
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "education", "education", id)
}

func (r *postgresEducationRepo) FindByID(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM education WHERE id = $1`
	e, err := scanEducation(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("education", id.String())
	}
	return e, err
}

func (r *postgresEducationRepo) List(ctx context.Context) ([]*education.Education, error) {
	sql, args, err := psql.Select(educationColumns).
		From("education").
		OrderBy("display_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list education query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education", err)
	}
	defer rows.Close()

	entries := make([]*education.Education, 0)
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return entries, nil
}

func (r *postgresEducationRepo) NextDisplayOrder(ctx context.Context) (int, error) {
	return nextDisplayOrder(ctx, r.db, "education")
}

func (r *postgresEducationRepo) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return reorder(ctx, r.db, "education", "education", ids)
}
