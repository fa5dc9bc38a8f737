package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syedmaroof/portfolio-api/internal/domain/certification"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

const certificationColumns = "id, title, issuer, issue_date, expiry_date, credential_id, credential_url, display_order, created_at"

type postgresCertificationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCertificationRepo(db *pgxpool.Pool, logger logger.Logger) certification.Repository {
	return &postgresCertificationRepo{db: db, logger: logger}
}

func scanCertification(row pgx.Row) (*certification.Certification, error) {
	c := &certification.Certification{}
	err := row.Scan(
		&c.ID, &c.Title, &c.Issuer, &c.IssueDate, &c.ExpiryDate,
		&c.CredentialID, &c.CredentialURL, &c.DisplayOrder, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("certification", "")
		}
		return nil, apperror.NewInternal("failed to scan certification row", err)
	}
	return c, nil
}

func scanCertifications(rows pgx.Rows) ([]*certification.Certification, error) {
	defer rows.Close()
	certs := make([]*certification.Certification, 0)
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating certification rows", err)
	}
	return certs, nil
}

func (r *postgresCertificationRepo) Save(ctx context.Context, c *certification.Certification) error {
	query := `
		INSERT INTO certifications (id, title, issuer, issue_date, expiry_date, credential_id, credential_url, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Title, c.Issuer, c.IssueDate, c.ExpiryDate,
		c.CredentialID, c.CredentialURL, c.DisplayOrder, c.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save certification", err)
	}
	return nil
}

func (r *postgresCertificationRepo) Update(ctx context.Context, c *certification.Certification) error {
	query := `
		UPDATE certifications SET
			title = $2, issuer = $3, issue_date = $4, expiry_date = $5,
			credential_id = $6, credential_url = $7
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		c.ID, c.Title, c.Issuer, c.IssueDate, c.ExpiryDate, c.CredentialID, c.CredentialURL,
	)
	if err != nil {
		return apperror.NewInternal("failed to update certification", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("certification", c.ID.String())
	}
	return nil
}

func (r *postgresCertificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "certifications", "certification", id)
}

func (r *postgresCertificationRepo) FindByID(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE id = $1`
	c, err := scanCertification(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("certification", id.String())
	}
	return c, err
}

func (r *postgresCertificationRepo) List(ctx context.Context) ([]*certification.Certification, error) {
	sql, args, err := psql.Select(certificationColumns).
		From("certifications").
		OrderBy("display_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list certifications query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query certifications", err)
	}
	return scanCertifications(rows)
}

func (r *postgresCertificationRepo) NextDisplayOrder(ctx context.Context) (int, error) {
	return nextDisplayOrder(ctx, r.db, "certifications")
}

func (r *postgresCertificationRepo) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return reorder(ctx, r.db, "certifications", "certification", ids)
}
