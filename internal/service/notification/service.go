// Package notification turns domain events into user notifications and
// serves the owning user's notification inbox.
package notification

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

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, recipientID, id uuid.UUID) (*domain.Notification, error)
	List(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, int, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, recipientID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int, error)
	SoftDelete(ctx context.Context, recipientID, id uuid.UUID) error
	SoftDeleteAll(ctx context.Context, recipientID uuid.UUID) (int, error)
}

type userReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type groupBuyReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GroupBuy, error)
	ListParticipantIDs(ctx context.Context, groupBuyID uuid.UUID) ([]uuid.UUID, error)
}

// Service creates notifications from events and exposes the read side.
type Service struct {
	notifications notificationRepo
	users         userReader
	groupBuys     groupBuyReader
	log           *slog.Logger
}

// NewService creates a new notification service.
func NewService(
	log *slog.Logger,
	notifications notificationRepo,
	users userReader,
	groupBuys groupBuyReader,
) *Service {
	return &Service{
		notifications: notifications,
		users:         users,
		groupBuys:     groupBuys,
		log:           log.With("service", "notification"),
	}
}

// Kinds lists the events the dispatcher reacts to.
func Kinds() []domain.EventKind {
	return []domain.EventKind{
		domain.EventParticipationCreated,
		domain.EventParticipationCancelled,
		domain.EventReviewCreated,
		domain.EventCommentCreated,
		domain.EventGroupBuyDeadlineApproaching,
		domain.EventGroupBuyCompleted,
	}
}
