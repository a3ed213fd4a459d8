package badge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

// rule decides whether userID qualifies for a badge right now.
type rule struct {
	badge    domain.BadgeType
	userID   uuid.UUID
	eligible func(ctx context.Context) (bool, error)
}

// Handle evaluates every rule triggered by ev. Rules run independently:
// a failing rule does not stop the others and the errors are joined.
func (s *Service) Handle(ctx context.Context, ev domain.Event) error {
	var errs []error
	for _, r := range s.rulesFor(ev) {
		if err := s.evaluate(ctx, r); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.badge, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Service) rulesFor(ev domain.Event) []rule {
	switch p := ev.Payload.(type) {
	case domain.GroupBuyCreated:
		return []rule{{
			badge:  domain.BadgeFirstGroupBuy,
			userID: p.HostID,
			eligible: func(ctx context.Context) (bool, error) {
				n, err := s.groupBuys.CountByHostAndStatus(ctx, p.HostID, domain.GroupBuyStatusOpen)
				return n == 1, err
			},
		}}

	case domain.ParticipationCreated:
		return []rule{{
			badge:  domain.BadgeTenParticipations,
			userID: p.UserID,
			eligible: func(ctx context.Context) (bool, error) {
				n, err := s.participations.CountByUser(ctx, p.UserID)
				return n >= TenParticipationsMin, err
			},
		}}

	case domain.ReviewCreated:
		return []rule{
			{
				badge:  domain.BadgeReviewer,
				userID: p.ReviewerID,
				eligible: func(ctx context.Context) (bool, error) {
					n, err := s.reviews.CountByReviewer(ctx, p.ReviewerID)
					return n >= ReviewerMin, err
				},
			},
			{
				badge:  domain.BadgePopularHost,
				userID: p.HostID,
				eligible: func(ctx context.Context) (bool, error) {
					st, err := s.reviews.HostStats(ctx, p.HostID)
					if err != nil {
						return false, err
					}
					return st.Count >= PopularHostMinCount && st.Average().GreaterThanOrEqual(PopularHostMinAverage), nil
				},
			},
		}
	}
	return nil
}

func (s *Service) evaluate(ctx context.Context, r rule) error {
	held, err := s.badges.Exists(ctx, r.userID, r.badge)
	if err != nil {
		return fmt.Errorf("check badge: %w", err)
	}
	if held {
		return nil
	}

	ok, err := r.eligible(ctx)
	if err != nil {
		return fmt.Errorf("evaluate rule: %w", err)
	}
	if !ok {
		return nil
	}

	awarded, err := s.badges.Award(ctx, &domain.Badge{
		ID:         uuid.New(),
		UserID:     r.userID,
		Type:       r.badge,
		AcquiredAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("award badge: %w", err)
	}
	// A concurrent evaluation may have won the insert.
	if !awarded {
		return nil
	}

	s.log.InfoContext(ctx, "badge awarded",
		slog.String("user_id", r.userID.String()),
		slog.String("badge", r.badge.String()),
	)
	return nil
}
