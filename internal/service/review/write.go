package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
	"github.com/heartmarshall/groupbuy-backend/pkg/ctxutil"
)

// Create reviews the host of a closed or completed group buy the current
// user took part in.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Review, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var rv *domain.Review
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		gb, err := s.groupBuys.GetByID(txCtx, input.GroupBuyID)
		if err != nil {
			return fmt.Errorf("get group buy: %w", err)
		}
		if gb.HostID == userID {
			return fmt.Errorf("review own group buy: %w", domain.ErrForbidden)
		}
		if !gb.Status.Reviewable() {
			return domain.NewValidationError("group_buy_id", "not closed yet")
		}

		if _, err := s.participations.GetActive(txCtx, userID, gb.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("not a participant: %w", domain.ErrForbidden)
			}
			return fmt.Errorf("get participation: %w", err)
		}

		now := time.Now().UTC()
		rv = &domain.Review{
			ID:         uuid.New(),
			GroupBuyID: gb.ID,
			ReviewerID: userID,
			HostID:     gb.HostID,
			Rating:     input.Rating,
			Content:    input.Content,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.reviews.Create(txCtx, rv); err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		s.bus.Publish(txCtx, domain.NewEvent(domain.ReviewCreated{
			ReviewID:   rv.ID,
			ReviewerID: userID,
			HostID:     gb.HostID,
			GroupBuyID: gb.ID,
			Rating:     rv.Rating,
		}))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review created",
		slog.String("review_id", rv.ID.String()),
		slog.Int("rating", rv.Rating),
	)
	return rv, nil
}

// Update changes the rating and content of the current user's review.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Review, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var rv *domain.Review
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		rv, err = s.owned(txCtx, userID, input.ReviewID)
		if err != nil {
			return err
		}

		oldRating := rv.Rating
		rv.Rating = input.Rating
		rv.Content = input.Content
		rv.UpdatedAt = time.Now().UTC()
		if err := s.reviews.Update(txCtx, rv); err != nil {
			return fmt.Errorf("update review: %w", err)
		}

		s.bus.Publish(txCtx, domain.NewEvent(domain.ReviewUpdated{
			ReviewID:   rv.ID,
			ReviewerID: userID,
			HostID:     rv.HostID,
			OldRating:  oldRating,
			NewRating:  rv.Rating,
		}))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rv, nil
}

// Delete removes the current user's review.
func (s *Service) Delete(ctx context.Context, reviewID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if reviewID == uuid.Nil {
		return domain.NewValidationError("review_id", "required")
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rv, err := s.owned(txCtx, userID, reviewID)
		if err != nil {
			return err
		}
		if err := s.reviews.Delete(txCtx, rv.ID); err != nil {
			return fmt.Errorf("delete review: %w", err)
		}

		s.bus.Publish(txCtx, domain.NewEvent(domain.ReviewDeleted{
			ReviewID: rv.ID,
			HostID:   rv.HostID,
			Rating:   rv.Rating,
		}))
		return nil
	})
}

func (s *Service) owned(ctx context.Context, userID, reviewID uuid.UUID) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	// Someone else's review reads as missing.
	if rv.ReviewerID != userID {
		return nil, fmt.Errorf("review %s: %w", reviewID, domain.ErrNotFound)
	}
	return rv, nil
}
