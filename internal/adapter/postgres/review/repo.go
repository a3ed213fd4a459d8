// Package review implements the Review repository using PostgreSQL.
package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

const (
	createSQL = `
INSERT INTO reviews (id, group_buy_id, reviewer_id, host_id, rating, content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	getByIDSQL = `
SELECT id, group_buy_id, reviewer_id, host_id, rating, content, created_at, updated_at
FROM reviews
WHERE id = $1`

	updateSQL = `
UPDATE reviews SET rating = $2, content = $3, updated_at = $4
WHERE id = $1`

	deleteSQL = `DELETE FROM reviews WHERE id = $1`

	countByReviewerSQL = `SELECT count(*) FROM reviews WHERE reviewer_id = $1`

	hostStatsSQL = `SELECT count(*), COALESCE(sum(rating), 0) FROM reviews WHERE host_id = $1`
)

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a review by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var rv domain.Review
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id).Scan(
		&rv.ID, &rv.GroupBuyID, &rv.ReviewerID, &rv.HostID, &rv.Rating, &rv.Content, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "review", id)
	}
	return &rv, nil
}

// CountByReviewer returns how many reviews the user has written.
func (r *Repo) CountByReviewer(ctx context.Context, reviewerID uuid.UUID) (int, error) {
	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countByReviewerSQL, reviewerID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "reviews of user", reviewerID)
	}
	return count, nil
}

// HostStats aggregates every review the host has received.
func (r *Repo) HostStats(ctx context.Context, hostID uuid.UUID) (domain.HostReviewStats, error) {
	var stats domain.HostReviewStats
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, hostStatsSQL, hostID).Scan(&stats.Count, &stats.RatingSum); err != nil {
		return domain.HostReviewStats{}, postgres.MapError(err, "reviews of host", hostID)
	}
	return stats, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a review. One review per (group buy, reviewer).
func (r *Repo) Create(ctx context.Context, rv *domain.Review) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		rv.ID, rv.GroupBuyID, rv.ReviewerID, rv.HostID, rv.Rating, rv.Content, rv.CreatedAt, rv.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "review", rv.ID)
	}
	return nil
}

// Update stores the review's rating and content.
func (r *Repo) Update(ctx context.Context, rv *domain.Review) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateSQL, rv.ID, rv.Rating, rv.Content, rv.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "review", rv.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", rv.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a review.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "review", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
