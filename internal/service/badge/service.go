// Package badge awards one-time achievement badges from domain events.
package badge

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

// Award thresholds.
const (
	TenParticipationsMin = 10
	ReviewerMin          = 5
	PopularHostMinCount  = 10
)

// PopularHostMinAverage is the lowest mean rating that still counts as popular.
var PopularHostMinAverage = decimal.RequireFromString("4.5")

type badgeRepo interface {
	Exists(ctx context.Context, userID uuid.UUID, badgeType domain.BadgeType) (bool, error)
	Award(ctx context.Context, b *domain.Badge) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Badge, error)
}

type groupBuyCounter interface {
	CountByHostAndStatus(ctx context.Context, hostID uuid.UUID, statuses ...domain.GroupBuyStatus) (int, error)
}

type participationCounter interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type reviewCounter interface {
	CountByReviewer(ctx context.Context, reviewerID uuid.UUID) (int, error)
	HostStats(ctx context.Context, hostID uuid.UUID) (domain.HostReviewStats, error)
}

// Service evaluates badge rules and lists awarded badges.
type Service struct {
	badges         badgeRepo
	groupBuys      groupBuyCounter
	participations participationCounter
	reviews        reviewCounter
	log            *slog.Logger
}

// NewService creates a new badge service.
func NewService(
	log *slog.Logger,
	badges badgeRepo,
	groupBuys groupBuyCounter,
	participations participationCounter,
	reviews reviewCounter,
) *Service {
	return &Service{
		badges:         badges,
		groupBuys:      groupBuys,
		participations: participations,
		reviews:        reviews,
		log:            log.With("service", "badge"),
	}
}

// Kinds lists the events the evaluator reacts to.
func Kinds() []domain.EventKind {
	return []domain.EventKind{
		domain.EventGroupBuyCreated,
		domain.EventParticipationCreated,
		domain.EventReviewCreated,
	}
}
