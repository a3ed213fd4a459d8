// Package reputation implements the append-only reputation history using PostgreSQL.
package reputation

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

const countByUserSQL = `SELECT count(*) FROM reputation_history WHERE user_id = $1`

// Repo provides reputation history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reputation history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append writes one history row.
func (r *Repo) Append(ctx context.Context, h *domain.ReputationHistory) error {
	_, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().
			Insert("reputation_history").
			Columns("id", "user_id", "delta", "previous_score", "new_score", "reason", "review_id", "created_at").
			Values(h.ID, h.UserID, h.Delta, h.Previous, h.New, h.Reason, h.ReviewID, h.CreatedAt),
	)
	if err != nil {
		return postgres.MapError(err, "reputation_history", h.ID)
	}
	return nil
}

// ListByUser returns a page of the user's history, newest first, and the total row count.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.ReputationHistory, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, countByUserSQL, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reputation_history: %w", err)
	}

	sql, args, err := postgres.Builder().
		Select("id", "user_id", "delta", "previous_score", "new_score", "reason", "review_id", "created_at").
		From("reputation_history").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build sql: %w", err)
	}

	var rows []historyRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list reputation_history: %w", err)
	}

	history := make([]domain.ReputationHistory, len(rows))
	for i, row := range rows {
		history[i] = row.toDomain()
	}
	return history, total, nil
}

// historyRow mirrors a reputation_history row.
type historyRow struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	Delta         decimal.Decimal `db:"delta"`
	PreviousScore decimal.Decimal `db:"previous_score"`
	NewScore      decimal.Decimal `db:"new_score"`
	Reason        string          `db:"reason"`
	ReviewID      *uuid.UUID      `db:"review_id"`
	CreatedAt     time.Time       `db:"created_at"`
}

func (r historyRow) toDomain() domain.ReputationHistory {
	return domain.ReputationHistory{
		ID:        r.ID,
		UserID:    r.UserID,
		Delta:     r.Delta,
		Previous:  r.PreviousScore,
		New:       r.NewScore,
		Reason:    r.Reason,
		ReviewID:  r.ReviewID,
		CreatedAt: r.CreatedAt,
	}
}
