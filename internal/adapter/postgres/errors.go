package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

// sqlStateSentinels maps the SQLSTATE codes the schema can raise to the
// domain sentinel the services match on.
var sqlStateSentinels = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation: user_badges, active participation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation: counts, ratings, point amounts
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

// MapError wraps a driver error with the entity and ID it concerns and
// attaches the matching domain sentinel. Unknown errors, including context
// cancellation, keep their original chain.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := sqlStateSentinels[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s %s (%s): %w", entity, id, pgErr.ConstraintName, sentinel)
			}
			return fmt.Errorf("%s %s: %w", entity, id, sentinel)
		}
	}
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
