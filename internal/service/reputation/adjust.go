package reputation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

// Handle applies the reputation change carried by a review event.
// Created and deleted reviews always write a history row, even for a
// neutral rating. Updates apply the difference between the new and old
// deltas and are skipped when it is zero.
func (s *Service) Handle(ctx context.Context, ev domain.Event) error {
	switch p := ev.Payload.(type) {
	case domain.ReviewCreated:
		delta, err := DeltaForRating(p.Rating)
		if err != nil {
			return err
		}
		return s.adjust(ctx, p.HostID, delta, domain.ReputationReasonReview, p.ReviewID)

	case domain.ReviewUpdated:
		oldDelta, err := DeltaForRating(p.OldRating)
		if err != nil {
			return err
		}
		newDelta, err := DeltaForRating(p.NewRating)
		if err != nil {
			return err
		}
		net := newDelta.Sub(oldDelta)
		if net.IsZero() {
			return nil
		}
		return s.adjust(ctx, p.HostID, net, domain.ReputationReasonReviewUpdated, p.ReviewID)

	case domain.ReviewDeleted:
		delta, err := DeltaForRating(p.Rating)
		if err != nil {
			return err
		}
		return s.adjust(ctx, p.HostID, delta.Neg(), domain.ReputationReasonReviewDeleted, p.ReviewID)
	}
	return nil
}

// adjust runs a version-checked read-modify-write of the user's score and
// appends the history row once the write wins.
func (s *Service) adjust(ctx context.Context, userID uuid.UUID, delta decimal.Decimal, reason string, reviewID uuid.UUID) error {
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		previous := user.Reputation
		next := previous.Add(delta)

		err = s.users.UpdateReputation(ctx, userID, next, user.ReputationVersion)
		if errors.Is(err, domain.ErrConflict) {
			s.log.DebugContext(ctx, "reputation update lost, retrying",
				slog.String("user_id", userID.String()),
				slog.Int("attempt", attempt+1),
			)
			continue
		}
		if err != nil {
			return fmt.Errorf("update reputation: %w", err)
		}

		if err := s.history.Append(ctx, &domain.ReputationHistory{
			ID:        uuid.New(),
			UserID:    userID,
			Delta:     delta,
			Previous:  previous,
			New:       next,
			Reason:    reason,
			ReviewID:  &reviewID,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return fmt.Errorf("append reputation history: %w", err)
		}

		s.log.InfoContext(ctx, "reputation adjusted",
			slog.String("user_id", userID.String()),
			slog.String("delta", delta.String()),
			slog.String("new", next.String()),
			slog.String("reason", reason),
		)
		return nil
	}

	return fmt.Errorf("adjust reputation of %s after %d attempts: %w", userID, s.maxRetries+1, domain.ErrRetriesExhausted)
}
