package groupbuy

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
	"github.com/heartmarshall/groupbuy-backend/pkg/ctxutil"
)

// Create opens a group buy hosted by the current user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.GroupBuy, error) {
	hostID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now().UTC()
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	gb := &domain.GroupBuy{
		ID:          uuid.New(),
		HostID:      hostID,
		Title:       input.Title,
		Status:      domain.GroupBuyStatusOpen,
		TargetCount: input.TargetCount,
		Deadline:    input.Deadline.UTC(),
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.groupBuys.Create(txCtx, gb); err != nil {
			return fmt.Errorf("create group buy: %w", err)
		}
		s.bus.Publish(txCtx, domain.NewEvent(domain.GroupBuyCreated{GroupBuyID: gb.ID, HostID: hostID}))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "group buy created",
		slog.String("group_buy_id", gb.ID.String()),
		slog.String("host_id", hostID.String()),
	)
	return gb, nil
}
