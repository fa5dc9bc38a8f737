package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syedmaroof/portfolio-api/internal/domain/skill"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

const skillColumns = "id, name, category, proficiency, icon, display_order, created_at"

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

func scanSkill(row pgx.Row) (*skill.Skill, error) {
	s := &skill.Skill{}
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.Icon, &s.DisplayOrder, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("skill", "")
		}
		return nil, apperror.NewInternal("failed to scan skill row", err)
	}
	return s, nil
}

func scanSkills(rows pgx.Rows) ([]*skill.Skill, error) {
	defer rows.Close()
	skills := make([]*skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return skills, nil
}

func (r *postgresSkillRepo) Save(ctx context.Context, s *skill.Skill) error {
	query := `
		INSERT INTO skills (id, name, category, proficiency, icon, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, s.ID, s.Name, s.Category, s.Proficiency, s.Icon, s.DisplayOrder, s.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save skill", err)
	}
	return nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, s *skill.Skill) error {
	query := `UPDATE skills SET name = $2, category = $3, proficiency = $4, icon = $5 WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, s.ID, s.Name, s.Category, s.Proficiency, s.Icon)
	if err != nil {
		return apperror.NewInternal("failed to update skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", s.ID.String())
	}
	return nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "skills", "skill", id)
}

func (r *postgresSkillRepo) FindByID(ctx context.Context, id uuid.UUID) (*skill.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`
	s, err := scanSkill(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("skill", id.String())
	}
	return s, err
}

func (r *postgresSkillRepo) List(ctx context.Context) ([]*skill.Skill, error) {
	sql, args, err := psql.Select(skillColumns).
		From("skills").
		OrderBy("display_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list skills query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
	return scanSkills(rows)
}

func (r *postgresSkillRepo) NextDisplayOrder(ctx context.Context) (int, error) {
	return nextDisplayOrder(ctx, r.db, "skills")
}

func (r *postgresSkillRepo) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return reorder(ctx, r.db, "skills", "skill", ids)
}
