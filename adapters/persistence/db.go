package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syedmaroof/portfolio-api/internal/config"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func NewPostgresPool(cfg config.Config, log logger.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid database dsn: %w", err)
	}
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("do not create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	log.Info("Connect PostgreSQL successfully.")
	return pool, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// nextDisplayOrder appends after the current last row, so gaps left by
// deletes never produce duplicates.
func nextDisplayOrder(ctx context.Context, db *pgxpool.Pool, table string) (int, error) {
	query, args, err := psql.Select("COALESCE(MAX(display_order), 0) + 1").From(table).ToSql()
	if err != nil {
		return 0, apperror.NewInternal("failed to build display order query", err)
	}
	var next int
	if err := db.QueryRow(ctx, query, args...).Scan(&next); err != nil {
		return 0, apperror.NewInternal("failed to read display order of "+table, err)
	}
	return next, nil
}

// reorder rewrites display_order to the 1-based position of each id. Either
// every row moves or none does.
func reorder(ctx context.Context, db *pgxpool.Pool, table, resource string, ids []uuid.UUID) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin reorder transaction", err)
	}
	defer tx.Rollback(ctx)

	for i, id := range ids {
		query, args, err := psql.Update(table).
			Set("display_order", i+1).
			Where(sq.Eq{"id": id}).
			ToSql()
		if err != nil {
			return apperror.NewInternal("failed to build reorder query", err)
		}
		cmdTag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return apperror.NewInternal("failed to reorder "+table, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperror.NewNotFound(resource, id.String())
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit reorder", err)
	}
	return nil
}

func deleteByID(ctx context.Context, db *pgxpool.Pool, table, resource string, id uuid.UUID) error {
	query, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build delete query", err)
	}
	cmdTag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return apperror.NewInternal("failed to delete "+resource, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound(resource, id.String())
	}
	return nil
}
