// Package groupbuy is the write path for group buys and participations.
// Every change publishes its domain event inside the same transaction.
package groupbuy

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

// MaxCountRetries bounds re-attempts of a lost headcount or status update.
const MaxCountRetries = 5

type groupBuyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GroupBuy, error)
	Create(ctx context.Context, gb *domain.GroupBuy) error
	IncrementParticipants(ctx context.Context, id uuid.UUID, expectedVersion int64) (*domain.GroupBuy, error)
	DecrementParticipants(ctx context.Context, id uuid.UUID, expectedVersion int64) (*domain.GroupBuy, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.GroupBuyStatus, expectedVersion int64) (*domain.GroupBuy, error)
}

type participationRepo interface {
	Create(ctx context.Context, p *domain.Participation) error
	GetActive(ctx context.Context, userID, groupBuyID uuid.UUID) (*domain.Participation, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(ctx context.Context, ev domain.Event)
}

// Service creates group buys and manages participation.
type Service struct {
	groupBuys      groupBuyRepo
	participations participationRepo
	tx             txManager
	bus            publisher
	log            *slog.Logger
}

// NewService creates a new group buy service.
func NewService(
	log *slog.Logger,
	groupBuys groupBuyRepo,
	participations participationRepo,
	tx txManager,
	bus publisher,
) *Service {
	return &Service{
		groupBuys:      groupBuys,
		participations: participations,
		tx:             tx,
		bus:            bus,
		log:            log.With("service", "groupbuy"),
	}
}
