package notification

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

// ListInput holds the parameters for listing the current user's notifications.
// Read nil lists both read and unread.
type ListInput struct {
	Read   *bool
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ItemInput identifies one notification of the current user.
type ItemInput struct {
	NotificationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ItemInput) Validate() error {
	if i.NotificationID == uuid.Nil {
		return domain.NewValidationError("notification_id", "required")
	}
	return nil
}
