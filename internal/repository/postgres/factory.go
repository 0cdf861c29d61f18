package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
	repo "github.com/baharkarakas/mini-linkedin/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the part of pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func NewStore(pool *pgxpool.Pool) repo.Store {
	return repo.Store{
		Users: NewUsers(pool),
		Posts: NewPosts(pool),
		Close: pool.Close,
	}
}

const uniqueViolation = "23505"

// mapErr translates driver errors into apperr kinds.
func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %w", op, apperr.ErrConflict)
		case "22P02": // invalid_text_representation, e.g. a non-uuid id
			return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: db error: %w", op, err)
}
