package groupbuy

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
	"github.com/heartmarshall/groupbuy-backend/pkg/ctxutil"
)

// Close stops a group buy from accepting participants. Only the host may
// close it, and only while it is still open. A closed group buy can be reviewed.
func (s *Service) Close(ctx context.Context, groupBuyID uuid.UUID) (*domain.GroupBuy, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if groupBuyID == uuid.Nil {
		return nil, domain.NewValidationError("group_buy_id", "required")
	}

	var closed *domain.GroupBuy
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		updated, err := s.updateVersioned(txCtx, groupBuyID, func(gb *domain.GroupBuy) (*domain.GroupBuy, error) {
			if gb.HostID != userID {
				return nil, domain.ErrForbidden
			}
			if !gb.Status.AcceptsParticipants() {
				return nil, domain.NewValidationError("group_buy_id", "already closed")
			}
			return s.groupBuys.UpdateStatus(txCtx, gb.ID, domain.GroupBuyStatusClosed, gb.Version)
		})
		closed = updated
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "group buy closed",
		slog.String("group_buy_id", groupBuyID.String()),
		slog.String("host_id", userID.String()),
	)
	return closed, nil
}
