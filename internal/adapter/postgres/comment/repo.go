// Package comment implements the Comment and Post lookups using PostgreSQL.
package comment

import (
	"context"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

const (
	createSQL = `
INSERT INTO comments (id, author_id, group_buy_id, post_id, parent_id, content, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	getByIDSQL = `
SELECT id, author_id, group_buy_id, post_id, parent_id, content, created_at
FROM comments
WHERE id = $1`

	getPostByIDSQL = `SELECT id, author_id, title, created_at FROM posts WHERE id = $1`
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a comment.
// A parent, group buy or post that does not exist yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		c.ID, c.AuthorID, c.GroupBuyID, c.PostID, c.ParentID, c.Content, c.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "comment", c.ID)
	}
	return nil
}

// GetByID returns a comment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var c domain.Comment
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id).Scan(
		&c.ID, &c.AuthorID, &c.GroupBuyID, &c.PostID, &c.ParentID, &c.Content, &c.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return &c, nil
}

// GetPostByID returns a post by primary key.
func (r *Repo) GetPostByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var p domain.Post
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getPostByIDSQL, id).Scan(
		&p.ID, &p.AuthorID, &p.Title, &p.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}
	return &p, nil
}
