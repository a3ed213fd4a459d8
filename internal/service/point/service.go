// Package point maintains the append-only point ledger and each user's
// balance counter.
package point

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Reward amounts and the reasons recorded with them.
const (
	GroupBuyCreatedReward = 50
	JoinReward            = 10
	ReviewReward          = 20

	ReasonGroupBuyCreated = "group buy created"
	ReasonJoined          = "joined group buy"
	ReasonReviewWritten   = "review written"
)

type pointRepo interface {
	Append(ctx context.Context, e *domain.PointEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.PointEntry, int, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	AddPoints(ctx context.Context, id uuid.UUID, amount int64) error
}

// Service grants points for events and exposes a user's ledger.
type Service struct {
	points pointRepo
	users  userRepo
	log    *slog.Logger
}

// NewService creates a new point service.
func NewService(log *slog.Logger, points pointRepo, users userRepo) *Service {
	return &Service{
		points: points,
		users:  users,
		log:    log.With("service", "point"),
	}
}

// Kinds lists the events that earn points.
func Kinds() []domain.EventKind {
	return []domain.EventKind{
		domain.EventGroupBuyCreated,
		domain.EventParticipationCreated,
		domain.EventReviewCreated,
	}
}
