package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
)

// PostgreSQL error codes the ledger reacts to.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeSerialization       = "40001"
	codeDeadlock            = "40P01"
)

// MapError converts pgx/pgconn errors to domain errors. entity and id are
// only used to give the wrapped error some context. Constraint violations
// keep the *pgconn.PgError in the chain for IsUniqueViolation.
// Serialization failures and deadlocks become ErrConflict so the caller may
// retry. Context errors are not mapped.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %v: %w: %w", entity, id, domain.ErrAlreadyExists, err)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %v: %w: %w", entity, id, domain.ErrNotFound, err)
		case codeCheckViolation:
			return fmt.Errorf("%s %v: %w: %w", entity, id, domain.ErrValidation, err)
		case codeSerialization, codeDeadlock:
			return fmt.Errorf("%s %v: %w: %w", entity, id, domain.ErrConflict, err)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, id, err)
}

// IsUniqueViolation reports whether err is a unique_violation on the named
// constraint (any constraint when name is empty).
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
