// Package point implements the append-only point ledger using PostgreSQL.
package point

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

const countByUserSQL = `SELECT count(*) FROM point_history WHERE user_id = $1`

// Repo provides point ledger persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new point ledger repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append writes one ledger entry.
func (r *Repo) Append(ctx context.Context, e *domain.PointEntry) error {
	_, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().
			Insert("point_history").
			Columns("id", "user_id", "amount", "type", "reason", "created_at").
			Values(e.ID, e.UserID, e.Amount, string(e.Type), e.Reason, e.CreatedAt),
	)
	if err != nil {
		return postgres.MapError(err, "point_history", e.ID)
	}
	return nil
}

// ListByUser returns a page of the user's ledger, newest first, and the total entry count.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.PointEntry, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, countByUserSQL, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count point_history: %w", err)
	}

	sql, args, err := postgres.Builder().
		Select("id", "user_id", "amount", "type", "reason", "created_at").
		From("point_history").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build sql: %w", err)
	}

	entries := make([]domain.PointEntry, 0)
	if err := pgxscan.Select(ctx, q, &entries, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list point_history: %w", err)
	}
	return entries, total, nil
}
