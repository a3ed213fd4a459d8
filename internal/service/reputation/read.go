package reputation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

// HistoryInput selects a page of a user's reputation history.
type HistoryInput struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// History returns a user's reputation changes, newest first, and the total.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.ReputationHistory, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	items, total, err := s.history.ListByUser(ctx, input.UserID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list reputation history: %w", err)
	}
	return items, total, nil
}
