package scanner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

// ScanDeadlines publishes one GroupBuyDeadlineApproaching event for every
// open or closing-soon group buy whose deadline falls within the window.
// Repeated runs inside the same window publish again.
func (s *Scanner) ScanDeadlines(ctx context.Context) (int, error) {
	now := s.now().UTC()
	to := now.Add(s.opts.DeadlineWindow)

	gbs, err := s.groupBuys.ListDeadlineApproaching(ctx, now, to,
		domain.GroupBuyStatusOpen, domain.GroupBuyStatusClosingSoon)
	if err != nil {
		s.log.ErrorContext(ctx, "deadline scan failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("list approaching deadlines: %w", err)
	}

	for _, gb := range gbs {
		s.bus.Publish(ctx, domain.NewEvent(domain.GroupBuyDeadlineApproaching{GroupBuyID: gb.ID}))
	}

	s.log.InfoContext(ctx, "deadline scan completed",
		slog.Int("published", len(gbs)),
		slog.Time("window_end", to),
	)
	return len(gbs), nil
}

// SweepRetention soft-deletes read notifications older than the retention
// period. Finding nothing to delete is not an error.
func (s *Scanner) SweepRetention(ctx context.Context) (int, error) {
	threshold := s.now().UTC().AddDate(0, 0, -s.opts.RetentionDays)

	n, err := s.notifications.SoftDeleteReadBefore(ctx, threshold)
	if err != nil {
		s.log.ErrorContext(ctx, "retention sweep failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		return 0, fmt.Errorf("sweep read notifications: %w", err)
	}

	if n == 0 {
		s.log.InfoContext(ctx, "retention sweep found nothing to delete", slog.Time("threshold", threshold))
		return 0, nil
	}

	s.log.InfoContext(ctx, "retention sweep completed",
		slog.Int("deleted", n),
		slog.Time("threshold", threshold),
	)
	return n, nil
}
