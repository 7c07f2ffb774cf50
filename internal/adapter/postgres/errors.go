package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/topiclog/internal/domain"
)

// mapError converts pgx/pgconn errors to domain errors.
// Context errors pass through when the caller's ctx is done. When only the
// per-operation deadline fired (slow server, exhausted pool) the error is
// reported as domain.ErrStorageUnavailable.
func mapError(ctx context.Context, err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		if ctx.Err() != nil {
			return fmt.Errorf("%s %v: %w", entity, key, err)
		}
		return fmt.Errorf("%s %v: %w: %w", entity, key, domain.ErrStorageUnavailable, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
		case "23514", "23502": // check_violation, not_null_violation
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrValidation)
		}
		// Class 22 (data exception): the value itself was rejected, e.g.
		// 22021 invalid byte sequence for UTF-8.
		if sqlStateClass(pgErr.Code) == "22" {
			return fmt.Errorf("%s %v: %w: %s", entity, key, domain.ErrValidation, pgErr.Message)
		}
	}

	// Connection failures, admin shutdown, resource exhaustion and anything
	// unexpected: the engine cannot serve the request.
	return fmt.Errorf("%s %v: %w: %w", entity, key, domain.ErrStorageUnavailable, err)
}

// sqlStateClass returns the two-character SQLSTATE class of code.
func sqlStateClass(code string) string {
	if len(code) < 2 {
		return ""
	}
	return code[:2]
}
