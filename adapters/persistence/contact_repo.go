package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syedmaroof/portfolio-api/internal/domain/contact"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
)

const contactColumns = "id, name, email, subject, message, is_read, created_at"

type postgresContactRepo struct {
	db *pgxpool.Pool
}

func NewPostgresContactRepo(db *pgxpool.Pool) contact.Repository {
	return &postgresContactRepo{db: db}
}

func scanMessage(row pgx.Row) (*contact.Message, error) {
	m := &contact.Message{}
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.IsRead, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("message", "")
		}
		return nil, apperror.NewInternal("failed to scan message row", err)
	}
	return m, nil
}

func (r *postgresContactRepo) Save(ctx context.Context, m *contact.Message) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Email, m.Subject, m.Body, m.IsRead, m.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save message", err)
	}
	return nil
}

func (r *postgresContactRepo) FindByID(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_messages WHERE id = $1`
	m, err := scanMessage(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("message", id.String())
	}
	return m, err
}

func (r *postgresContactRepo) List(ctx context.Context, filter contact.ListFilter) ([]*contact.Message, error) {
	builder := psql.Select(contactColumns).
		From("contact_messages").
		OrderBy("created_at DESC")
	if filter.UnreadOnly {
		builder = builder.Where(sq.Eq{"is_read": false})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list messages query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query messages", err)
	}
	defer rows.Close()

	messages := make([]*contact.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating message rows", err)
	}
	return messages, nil
}

func (r *postgresContactRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE contact_messages SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to mark message read", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("message", id.String())
	}
	return nil
}

func (r *postgresContactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "contact_messages", "message", id)
}
