package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syedmaroof/portfolio-api/internal/domain/quote"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
)

const quoteColumns = "id, quote, character_name, created_at"

type postgresQuoteRepo struct {
	db *pgxpool.Pool
}

func NewPostgresQuoteRepo(db *pgxpool.Pool) quote.Repository {
	return &postgresQuoteRepo{db: db}
}

func scanQuote(row pgx.Row) (*quote.Quote, error) {
	q := &quote.Quote{}
	if err := row.Scan(&q.ID, &q.Text, &q.CharacterName, &q.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("quote", "")
		}
		return nil, apperror.NewInternal("failed to scan quote row", err)
	}
	return q, nil
}

func (r *postgresQuoteRepo) Save(ctx context.Context, q *quote.Quote) error {
	query := `INSERT INTO quotes (id, quote, character_name, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.Exec(ctx, query, q.ID, q.Text, q.CharacterName, q.CreatedAt); err != nil {
		return apperror.NewInternal("failed to save quote", err)
	}
	return nil
}

func (r *postgresQuoteRepo) Update(ctx context.Context, q *quote.Quote) error {
	query := `UPDATE quotes SET quote = $2, character_name = $3 WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, q.ID, q.Text, q.CharacterName)
	if err != nil {
		return apperror.NewInternal("failed to update quote", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("quote", q.ID.String())
	}
	return nil
}

func (r *postgresQuoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "quotes", "quote", id)
}

func (r *postgresQuoteRepo) FindByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	q, err := scanQuote(r.db.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("quote", id.String())
	}
	return q, err
}

func (r *postgresQuoteRepo) List(ctx context.Context) ([]*quote.Quote, error) {
	sql, args, err := psql.Select(quoteColumns).From("quotes").OrderBy("created_at ASC").ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list quotes query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query quotes", err)
	}
	defer rows.Close()

	quotes := make([]*quote.Quote, 0)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating quote rows", err)
	}
	return quotes, nil
}

func (r *postgresQuoteRepo) Random(ctx context.Context) (*quote.Quote, error) {
	return scanQuote(r.db.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes ORDER BY random() LIMIT 1`))
}
