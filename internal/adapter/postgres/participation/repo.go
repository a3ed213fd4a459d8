// Package participation implements the Participation repository using PostgreSQL.
// Cancelled participations are kept so lifetime counts include them.
package participation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

const (
	createSQL = `
INSERT INTO participations (id, user_id, group_buy_id, quantity, delivery_method, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	getActiveSQL = `
SELECT id, user_id, group_buy_id, quantity, delivery_method, cancelled_at, created_at
FROM participations
WHERE user_id = $1 AND group_buy_id = $2 AND cancelled_at IS NULL`

	cancelSQL = `
UPDATE participations SET cancelled_at = now()
WHERE id = $1 AND cancelled_at IS NULL`

	countByUserSQL = `SELECT count(*) FROM participations WHERE user_id = $1`
)

// Repo provides participation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new participation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts an active participation.
// Returns domain.ErrAlreadyExists if the user already has one for the group buy.
func (r *Repo) Create(ctx context.Context, p *domain.Participation) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		p.ID, p.UserID, p.GroupBuyID, p.Quantity, string(p.DeliveryMethod), p.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "participation", p.ID)
	}
	return nil
}

// GetActive returns the user's live participation in the group buy.
func (r *Repo) GetActive(ctx context.Context, userID, groupBuyID uuid.UUID) (*domain.Participation, error) {
	var (
		p      domain.Participation
		method string
	)
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getActiveSQL, userID, groupBuyID).Scan(
		&p.ID, &p.UserID, &p.GroupBuyID, &p.Quantity, &method, &p.CancelledAt, &p.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "participation of group_buy", groupBuyID)
	}
	p.DeliveryMethod = domain.DeliveryMethod(method)
	return &p, nil
}

// Cancel marks an active participation as cancelled.
func (r *Repo) Cancel(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, cancelSQL, id)
	if err != nil {
		return postgres.MapError(err, "participation", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("participation %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountByUser returns the user's lifetime participation count, cancelled included.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "participations of user", userID)
	}
	return count, nil
}
