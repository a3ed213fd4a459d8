// Package badge implements the Badge repository using PostgreSQL.
package badge

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

const existsSQL = `SELECT EXISTS(SELECT 1 FROM user_badges WHERE user_id = $1 AND badge_type = $2)`

// Repo provides badge persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new badge repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Exists reports whether the user already holds the badge type.
func (r *Repo) Exists(ctx context.Context, userID uuid.UUID, badgeType domain.BadgeType) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, existsSQL, userID, string(badgeType)).
		Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "user_badge", userID)
	}
	return exists, nil
}

// Award inserts the badge unless the (user, type) pair already exists.
// Returns false when another writer got there first.
func (r *Repo) Award(ctx context.Context, b *domain.Badge) (bool, error) {
	n, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().
			Insert("user_badges").
			Columns("id", "user_id", "badge_type", "acquired_at").
			Values(b.ID, b.UserID, string(b.Type), b.AcquiredAt).
			Suffix("ON CONFLICT (user_id, badge_type) DO NOTHING"),
	)
	if err != nil {
		return false, postgres.MapError(err, "user_badge", b.UserID)
	}
	return n == 1, nil
}

// ListByUser returns every badge the user holds, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Badge, error) {
	sql, args, err := postgres.Builder().
		Select("id", "user_id", "badge_type AS type", "acquired_at").
		From("user_badges").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("acquired_at", "badge_type").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	badges := make([]domain.Badge, 0)
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &badges, sql, args...); err != nil {
		return nil, fmt.Errorf("list user_badges: %w", err)
	}
	return badges, nil
}
