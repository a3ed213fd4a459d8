// Package review is the write path for host reviews.
package review

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

const (
	MinRating        = 1
	MaxRating        = 5
	maxContentLength = 2000
)

type reviewRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	Create(ctx context.Context, rv *domain.Review) error
	Update(ctx context.Context, rv *domain.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type groupBuyReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GroupBuy, error)
}

type participationReader interface {
	GetActive(ctx context.Context, userID, groupBuyID uuid.UUID) (*domain.Participation, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(ctx context.Context, ev domain.Event)
}

// Service creates, edits and removes reviews.
type Service struct {
	reviews        reviewRepo
	groupBuys      groupBuyReader
	participations participationReader
	tx             txManager
	bus            publisher
	log            *slog.Logger
}

// NewService creates a new review service.
func NewService(
	log *slog.Logger,
	reviews reviewRepo,
	groupBuys groupBuyReader,
	participations participationReader,
	tx txManager,
	bus publisher,
) *Service {
	return &Service{
		reviews:        reviews,
		groupBuys:      groupBuys,
		participations: participations,
		tx:             tx,
		bus:            bus,
		log:            log.With("service", "review"),
	}
}
