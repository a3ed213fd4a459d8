package point

import (
	"context"
	"fmt"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
	"github.com/heartmarshall/groupbuy-backend/pkg/ctxutil"
)

// LedgerInput holds pagination for the current user's ledger.
type LedgerInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i LedgerInput) Validate() error {
	var errs []domain.FieldError
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

// Ledger is one page of entries plus the running balance.
type Ledger struct {
	Entries []domain.PointEntry
	Total   int
	Balance int64
}

// Ledger returns the current user's point entries, newest first.
func (s *Service) Ledger(ctx context.Context, input LedgerInput) (*Ledger, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	entries, total, err := s.points.ListByUser(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list point entries: %w", err)
	}

	return &Ledger{Entries: entries, Total: total, Balance: user.PointBalance}, nil
}
