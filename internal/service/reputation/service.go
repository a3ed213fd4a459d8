// Package reputation adjusts hosts' reputation scores from review events and
// records every change in an append-only history.
package reputation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateReputation(ctx context.Context, id uuid.UUID, score decimal.Decimal, expectedVersion int64) error
}

type historyRepo interface {
	Append(ctx context.Context, h *domain.ReputationHistory) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.ReputationHistory, int, error)
}

// Service applies rating deltas and serves reputation history.
type Service struct {
	users      userRepo
	history    historyRepo
	maxRetries int
	log        *slog.Logger
}

// NewService creates a new reputation service. maxRetries is the number of
// re-attempts after a lost optimistic update.
func NewService(log *slog.Logger, users userRepo, history historyRepo, maxRetries int) *Service {
	return &Service{
		users:      users,
		history:    history,
		maxRetries: maxRetries,
		log:        log.With("service", "reputation"),
	}
}

// Kinds lists the events that move reputation.
func Kinds() []domain.EventKind {
	return []domain.EventKind{
		domain.EventReviewCreated,
		domain.EventReviewUpdated,
		domain.EventReviewDeleted,
	}
}
