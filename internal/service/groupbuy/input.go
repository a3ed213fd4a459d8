package groupbuy

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

const (
	maxTitleLength = 200
	minTarget      = 2
	maxTarget      = 1000
	maxQuantity    = 100
)

// CreateInput holds the parameters for opening a group buy.
type CreateInput struct {
	Title       string
	TargetCount int
	Deadline    time.Time
}

// Validate checks all fields against now and collects all errors.
func (i CreateInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(i.Title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.TargetCount < minTarget || i.TargetCount > maxTarget {
		errs = append(errs, domain.FieldError{Field: "target_count", Message: "must be between 2 and 1000"})
	}
	if !i.Deadline.After(now) {
		errs = append(errs, domain.FieldError{Field: "deadline", Message: "must be in the future"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// JoinInput holds the parameters for joining a group buy.
type JoinInput struct {
	GroupBuyID     uuid.UUID
	Quantity       int
	DeliveryMethod domain.DeliveryMethod
}

// Validate checks all fields and collects all errors.
func (i JoinInput) Validate() error {
	var errs []domain.FieldError

	if i.GroupBuyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_buy_id", Message: "required"})
	}
	if i.Quantity < 1 || i.Quantity > maxQuantity {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be between 1 and 100"})
	}
	if !i.DeliveryMethod.IsValid() {
		errs = append(errs, domain.FieldError{Field: "delivery_method", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
