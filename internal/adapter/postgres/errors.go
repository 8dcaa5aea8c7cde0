package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/citext/internal/domain"
	"github.com/heartmarshall/citext/pkg/citext/pgxtext"
)

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity and its key. context.DeadlineExceeded and context.Canceled are not
// mapped; they pass through.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	prefix := entity
	if s := fmt.Sprint(key); s != "" {
		prefix += " " + s
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	if errors.Is(err, pgxtext.ErrNotInstalled) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrExtensionMissing)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrAlreadyExists)
		case "42704": // undefined_object, e.g. type "citext" does not exist
			return fmt.Errorf("%s: %w: %s", prefix, domain.ErrExtensionMissing, pgErr.Message)
		}
	}

	return fmt.Errorf("%s: %w", prefix, err)
}
