package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
	"github.com/heartmarshall/groupbuy-backend/pkg/ctxutil"
)

// List returns a page of the current user's notifications, newest first,
// and the total matching the filter.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Notification, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	items, total, err := s.notifications.List(ctx, domain.NotificationFilter{
		RecipientID: userID,
		Read:        input.Read,
		Limit:       limit,
		Offset:      input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}

	return items, total, nil
}

// Get returns one of the current user's live notifications. Another user's
// notification reads as not found.
func (s *Service) Get(ctx context.Context, input ItemInput) (*domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	n, err := s.notifications.GetByID(ctx, userID, input.NotificationID)
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

// UnreadCount returns how many unread notifications the current user has.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	count, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marks one of the current user's notifications as read.
func (s *Service) MarkRead(ctx context.Context, input ItemInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.notifications.MarkRead(ctx, userID, input.NotificationID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks every notification of the current user as read.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return n, nil
}

// Delete removes one of the current user's notifications.
func (s *Service) Delete(ctx context.Context, input ItemInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.notifications.SoftDelete(ctx, userID, input.NotificationID); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	s.log.InfoContext(ctx, "notification deleted",
		slog.String("user_id", userID.String()),
		slog.String("notification_id", input.NotificationID.String()),
	)
	return nil
}

// DeleteAll removes every notification of the current user.
func (s *Service) DeleteAll(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.notifications.SoftDeleteAll(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("delete all notifications: %w", err)
	}

	s.log.InfoContext(ctx, "all notifications deleted",
		slog.String("user_id", userID.String()),
		slog.Int("deleted_count", n),
	)
	return n, nil
}
