package point

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

// Handle appends one EARN entry for a rewarded event and bumps the user's
// balance. Both writes share the handler's transaction.
func (s *Service) Handle(ctx context.Context, ev domain.Event) error {
	var (
		userID uuid.UUID
		amount int64
		reason string
	)
	switch p := ev.Payload.(type) {
	case domain.GroupBuyCreated:
		userID, amount, reason = p.HostID, GroupBuyCreatedReward, ReasonGroupBuyCreated
	case domain.ParticipationCreated:
		userID, amount, reason = p.UserID, JoinReward, ReasonJoined
	case domain.ReviewCreated:
		userID, amount, reason = p.ReviewerID, ReviewReward, ReasonReviewWritten
	default:
		return nil
	}

	entry := &domain.PointEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		Type:      domain.PointEarn,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.points.Append(ctx, entry); err != nil {
		return fmt.Errorf("append point entry: %w", err)
	}
	if err := s.users.AddPoints(ctx, userID, amount); err != nil {
		return fmt.Errorf("add points: %w", err)
	}

	s.log.InfoContext(ctx, "points granted",
		slog.String("user_id", userID.String()),
		slog.Int64("amount", amount),
		slog.String("reason", reason),
	)
	return nil
}
