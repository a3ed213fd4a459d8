// Package notification implements the Notification repository using PostgreSQL.
// Notifications are soft-deleted; every read and mutation ignores deleted rows.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

const table = "notifications"

var columns = []string{
	"id", "recipient_id", "actor_id", "type", "content", "url",
	"related_type", "related_id", "is_read", "created_at", "deleted_at",
}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a live notification owned by recipientID.
func (r *Repo) GetByID(ctx context.Context, recipientID, id uuid.UUID) (*domain.Notification, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "recipient_id": recipientID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var n domain.Notification
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "notification", id)
	}

	return &n, nil
}

// List returns the recipient's notifications, newest first, with the total
// count matching the filter.
func (r *Repo) List(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	where := filterWhere(filter)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build sql: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build sql: %w", err)
	}

	items := make([]domain.Notification, 0)
	if err := pgxscan.Select(ctx, q, &items, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}

	return items, total, nil
}

// CountUnread returns the number of live, unread notifications for a recipient.
func (r *Repo) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	read := false
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(filterWhere(domain.NotificationFilter{RecipientID: recipientID, Read: &read})).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build sql: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}

	return count, nil
}

func filterWhere(f domain.NotificationFilter) squirrel.And {
	where := squirrel.And{
		squirrel.Eq{"recipient_id": f.RecipientID},
		squirrel.Eq{"deleted_at": nil},
	}
	if f.Read != nil {
		where = append(where, squirrel.Eq{"is_read": *f.Read})
	}
	return where
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new notification.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) error {
	_, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().
			Insert(table).
			Columns("id", "recipient_id", "actor_id", "type", "content", "url",
				"related_type", "related_id", "is_read", "created_at").
			Values(n.ID, n.RecipientID, n.ActorID, string(n.Type), n.Content, n.URL,
				string(n.RelatedType), n.RelatedID, n.IsRead, n.CreatedAt),
	)
	if err != nil {
		return postgres.MapError(err, "notification", n.ID)
	}
	return nil
}

// MarkRead flags one notification as read. Marking an already-read
// notification is not an error; a missing or foreign one is ErrNotFound.
func (r *Repo) MarkRead(ctx context.Context, recipientID, id uuid.UUID) error {
	n, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().
			Update(table).
			Set("is_read", true).
			Where(squirrel.Eq{"id": id, "recipient_id": recipientID, "deleted_at": nil}),
	)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if n == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkAllRead flags every unread notification of the recipient as read and
// returns how many changed.
func (r *Repo) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int, error) {
	n, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().
			Update(table).
			Set("is_read", true).
			Where(squirrel.Eq{"recipient_id": recipientID, "deleted_at": nil, "is_read": false}),
	)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return int(n), nil
}

// SoftDelete hides one notification. A missing or foreign one is ErrNotFound.
func (r *Repo) SoftDelete(ctx context.Context, recipientID, id uuid.UUID) error {
	n, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().
			Update(table).
			Set("deleted_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": id, "recipient_id": recipientID, "deleted_at": nil}),
	)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if n == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SoftDeleteAll hides every live notification of the recipient.
func (r *Repo) SoftDeleteAll(ctx context.Context, recipientID uuid.UUID) (int, error) {
	n, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().
			Update(table).
			Set("deleted_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"recipient_id": recipientID, "deleted_at": nil}),
	)
	if err != nil {
		return 0, fmt.Errorf("delete all notifications: %w", err)
	}
	return int(n), nil
}

// SoftDeleteReadBefore hides read notifications created before threshold,
// across all recipients. Used by the retention sweep.
func (r *Repo) SoftDeleteReadBefore(ctx context.Context, threshold time.Time) (int, error) {
	n, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().
			Update(table).
			Set("deleted_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"is_read": true, "deleted_at": nil}).
			Where(squirrel.Lt{"created_at": threshold}),
	)
	if err != nil {
		return 0, fmt.Errorf("retention sweep: %w", err)
	}
	return int(n), nil
}
