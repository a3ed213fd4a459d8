// Package groupbuy implements the GroupBuy repository using PostgreSQL.
// Headcount and status changes are version-checked; a stale version yields
// domain.ErrConflict.
package groupbuy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

const table = "group_buys"

var columns = []string{
	"id", "host_id", "title", "status", "target_count", "current_count",
	"deadline", "version", "created_at", "updated_at",
}

// Repo provides group buy persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new group buy repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a group buy by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.GroupBuy, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var gb domain.GroupBuy
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &gb, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("group_buy %s: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "group_buy", id)
	}
	return &gb, nil
}

// CountByHostAndStatus counts the host's group buys in any of the given states.
func (r *Repo) CountByHostAndStatus(ctx context.Context, hostID uuid.UUID, statuses ...domain.GroupBuyStatus) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"host_id": hostID, "status": statusStrings(statuses)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build sql: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "group_buy host", hostID)
	}
	return count, nil
}

// ListParticipantIDs returns the users holding an active participation.
func (r *Repo) ListParticipantIDs(ctx context.Context, groupBuyID uuid.UUID) ([]uuid.UUID, error) {
	sql, args, err := postgres.Builder().
		Select("user_id").
		From("participations").
		Where(squirrel.Eq{"group_buy_id": groupBuyID, "cancelled_at": nil}).
		OrderBy("created_at", "user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	ids := make([]uuid.UUID, 0)
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, sql, args...); err != nil {
		return nil, fmt.Errorf("list participants of group_buy %s: %w", groupBuyID, err)
	}
	return ids, nil
}

// ListDeadlineApproaching returns group buys in one of statuses whose deadline
// lies in (from, to].
func (r *Repo) ListDeadlineApproaching(ctx context.Context, from, to time.Time, statuses ...domain.GroupBuyStatus) ([]domain.GroupBuy, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Gt{"deadline": from}).
		Where(squirrel.LtOrEq{"deadline": to}).
		Where(squirrel.Eq{"status": statusStrings(statuses)}).
		OrderBy("deadline", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	items := make([]domain.GroupBuy, 0)
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list group_buys by deadline: %w", err)
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new group buy.
func (r *Repo) Create(ctx context.Context, gb *domain.GroupBuy) error {
	_, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().
			Insert(table).
			Columns("id", "host_id", "title", "status", "target_count", "current_count",
				"deadline", "version", "created_at", "updated_at").
			Values(gb.ID, gb.HostID, gb.Title, string(gb.Status), gb.TargetCount, gb.CurrentCount,
				gb.Deadline, gb.Version, gb.CreatedAt, gb.UpdatedAt),
	)
	if err != nil {
		return postgres.MapError(err, "group_buy", gb.ID)
	}
	return nil
}

// IncrementParticipants adds one participant if the row still carries
// expectedVersion. Reaching the target moves the status to COMPLETED.
// Returns the updated row.
func (r *Repo) IncrementParticipants(ctx context.Context, id uuid.UUID, expectedVersion int64) (*domain.GroupBuy, error) {
	return r.updateVersioned(ctx, id, expectedVersion, postgres.Builder().
		Update(table).
		Set("current_count", squirrel.Expr("current_count + 1")).
		Set("status", squirrel.Expr(
			"CASE WHEN current_count + 1 >= target_count THEN ? ELSE status END",
			string(domain.GroupBuyStatusCompleted),
		)))
}

// DecrementParticipants removes one participant if the row still carries expectedVersion.
func (r *Repo) DecrementParticipants(ctx context.Context, id uuid.UUID, expectedVersion int64) (*domain.GroupBuy, error) {
	return r.updateVersioned(ctx, id, expectedVersion, postgres.Builder().
		Update(table).
		Set("current_count", squirrel.Expr("GREATEST(current_count - 1, 0)")))
}

func (r *Repo) updateVersioned(ctx context.Context, id uuid.UUID, expectedVersion int64, b squirrel.UpdateBuilder) (*domain.GroupBuy, error) {
	sql, args, err := b.
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "version": expectedVersion}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var gb domain.GroupBuy
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &gb, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("group_buy %s version %d: %w", id, expectedVersion, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "group_buy", id)
	}
	return &gb, nil
}

// UpdateStatus moves the group buy to status if the row still carries
// expectedVersion. Returns the updated row.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.GroupBuyStatus, expectedVersion int64) (*domain.GroupBuy, error) {
	return r.updateVersioned(ctx, id, expectedVersion, postgres.Builder().
		Update(table).
		Set("status", string(status)))
}

func statusStrings(statuses []domain.GroupBuyStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
