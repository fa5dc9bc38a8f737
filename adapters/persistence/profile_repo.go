package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syedmaroof/portfolio-api/internal/domain/profile"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT id, user_id, full_name, title, bio, email, phone, location,
			github, instagram, linkedin, dob, created_at, updated_at
		FROM profiles
		LIMIT 1
	`
	p := &profile.Profile{}
	err := r.db.QueryRow(ctx, query).Scan(
		&p.ID,
		&p.UserID,
		&p.FullName,
		&p.Title,
		&p.Bio,
		&p.Email,
		&p.Phone,
		&p.Location,
		&p.Github,
		&p.Instagram,
		&p.Linkedin,
		&p.DOB,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &profile.Profile{}, nil
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

// Upsert relies on the singleton column: a second insert turns into an
// update of the existing row, whose id and created_at are written back.
func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, full_name, title, bio, email, phone, location,
			github, instagram, linkedin, dob, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (singleton) DO UPDATE SET
			user_id = COALESCE(EXCLUDED.user_id, profiles.user_id),
			full_name = EXCLUDED.full_name,
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			github = EXCLUDED.github,
			instagram = EXCLUDED.instagram,
			linkedin = EXCLUDED.linkedin,
			dob = EXCLUDED.dob,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		p.ID, p.UserID, p.FullName, p.Title, p.Bio, p.Email, p.Phone, p.Location,
		p.Github, p.Instagram, p.Linkedin, p.DOB, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}
