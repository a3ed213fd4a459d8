package groupbuy

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

// Join adds the current user to a group buy. The headcount update is
// version-checked so concurrent joins can never overshoot the target.
// Reaching the target completes the group buy.
func (s *Service) Join(ctx context.Context, input JoinInput) (*domain.Participation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := &domain.Participation{
		ID:             uuid.New(),
		UserID:         userID,
		GroupBuyID:     input.GroupBuyID,
		Quantity:       input.Quantity,
		DeliveryMethod: input.DeliveryMethod,
		CreatedAt:      time.Now().UTC(),
	}

	var completed bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.participations.Create(txCtx, p); err != nil {
			return fmt.Errorf("create participation: %w", err)
		}

		updated, err := s.updateVersioned(txCtx, input.GroupBuyID, func(gb *domain.GroupBuy) (*domain.GroupBuy, error) {
			if !gb.Status.AcceptsParticipants() || gb.IsFull() {
				return nil, domain.NewValidationError("group_buy_id", "not accepting participants")
			}
			return s.groupBuys.IncrementParticipants(txCtx, gb.ID, gb.Version)
		})
		if err != nil {
			return err
		}

		s.bus.Publish(txCtx, domain.NewEvent(domain.ParticipationCreated{UserID: userID, GroupBuyID: updated.ID}))
		if updated.Status == domain.GroupBuyStatusCompleted {
			completed = true
			s.bus.Publish(txCtx, domain.NewEvent(domain.GroupBuyCompleted{GroupBuyID: updated.ID}))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "participation created",
		slog.String("group_buy_id", input.GroupBuyID.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("completed", completed),
	)
	return p, nil
}

// CancelParticipation withdraws the current user from a group buy that is
// still accepting participants.
func (s *Service) CancelParticipation(ctx context.Context, groupBuyID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if groupBuyID == uuid.Nil {
		return domain.NewValidationError("group_buy_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.participations.GetActive(txCtx, userID, groupBuyID)
		if err != nil {
			return fmt.Errorf("get participation: %w", err)
		}
		if err := s.participations.Cancel(txCtx, p.ID); err != nil {
			return fmt.Errorf("cancel participation: %w", err)
		}

		if _, err := s.updateVersioned(txCtx, groupBuyID, func(gb *domain.GroupBuy) (*domain.GroupBuy, error) {
			if !gb.Status.AcceptsParticipants() {
				return nil, domain.NewValidationError("group_buy_id", "no longer accepts cancellations")
			}
			return s.groupBuys.DecrementParticipants(txCtx, gb.ID, gb.Version)
		}); err != nil {
			return err
		}

		s.bus.Publish(txCtx, domain.NewEvent(domain.ParticipationCancelled{UserID: userID, GroupBuyID: groupBuyID}))
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "participation cancelled",
		slog.String("group_buy_id", groupBuyID.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}

// updateVersioned re-reads the group buy and applies change until the
// version-checked write wins or retries run out.
func (s *Service) updateVersioned(
	ctx context.Context,
	groupBuyID uuid.UUID,
	change func(gb *domain.GroupBuy) (*domain.GroupBuy, error),
) (*domain.GroupBuy, error) {
	for attempt := 0; attempt <= MaxCountRetries; attempt++ {
		gb, err := s.groupBuys.GetByID(ctx, groupBuyID)
		if err != nil {
			return nil, fmt.Errorf("get group buy: %w", err)
		}

		updated, err := change(gb)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("update group buy: %w", err)
		}
		return updated, nil
	}
	return nil, fmt.Errorf("update group buy %s: %w", groupBuyID, domain.ErrRetriesExhausted)
}
