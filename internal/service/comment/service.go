// Package comment is the write path for comments on group buys and posts.
package comment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

const maxContentLength = 1000

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	GetPostByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
}

type groupBuyReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GroupBuy, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(ctx context.Context, ev domain.Event)
}

// Service creates comments and replies.
type Service struct {
	comments  commentRepo
	groupBuys groupBuyReader
	tx        txManager
	bus       publisher
	log       *slog.Logger
}

// NewService creates a new comment service.
func NewService(log *slog.Logger, comments commentRepo, groupBuys groupBuyReader, tx txManager, bus publisher) *Service {
	return &Service{
		comments:  comments,
		groupBuys: groupBuys,
		tx:        tx,
		bus:       bus,
		log:       log.With("service", "comment"),
	}
}
