package badge

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

// ListByUser returns the badges a user holds, oldest first.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Badge, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	badges, err := s.badges.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	return badges, nil
}
