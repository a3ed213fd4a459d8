// Package user implements the User repository using PostgreSQL.
// Only the fields the event core reads or mutates are covered.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

const (
	createSQL = `
INSERT INTO users (id, email, nickname, reputation, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	getByIDSQL = `
SELECT id, email, nickname, reputation, reputation_version, point_balance, created_at, updated_at
FROM users
WHERE id = $1`

	updateReputationSQL = `
UPDATE users
SET reputation = $2, reputation_version = reputation_version + 1, updated_at = now()
WHERE id = $1 AND reputation_version = $3`

	addPointsSQL = `
UPDATE users
SET point_balance = point_balance + $2, updated_at = now()
WHERE id = $1`
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var u domain.User
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id).Scan(
		&u.ID, &u.Email, &u.Nickname, &u.Reputation, &u.ReputationVersion,
		&u.PointBalance, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user. A zero Reputation is stored as the default score.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	if u.Reputation.IsZero() {
		u.Reputation = domain.DefaultReputation
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		u.ID, u.Email, u.Nickname, u.Reputation, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "user", u.ID)
	}
	return nil
}

// UpdateReputation stores score if the row still carries expectedVersion.
// Returns domain.ErrConflict when another writer moved the version on.
func (r *Repo) UpdateReputation(ctx context.Context, id uuid.UUID, score decimal.Decimal, expectedVersion int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateReputationSQL, id, score, expectedVersion)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s reputation version %d: %w", id, expectedVersion, domain.ErrConflict)
	}
	return nil
}

// AddPoints adjusts the cached point balance by amount.
func (r *Repo) AddPoints(ctx context.Context, id uuid.UUID, amount int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, addPointsSQL, id, amount)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
