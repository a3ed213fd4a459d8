package review

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

// CreateInput holds the parameters for reviewing a group buy's host.
type CreateInput struct {
	GroupBuyID uuid.UUID
	Rating     int
	Content    string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if i.GroupBuyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_buy_id", Message: "required"})
	}
	errs = append(errs, validateBody(i.Rating, i.Content)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for editing a review.
type UpdateInput struct {
	ReviewID uuid.UUID
	Rating   int
	Content  string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ReviewID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "review_id", Message: "required"})
	}
	errs = append(errs, validateBody(i.Rating, i.Content)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateBody(rating int, content string) []domain.FieldError {
	var errs []domain.FieldError
	if rating < MinRating || rating > MaxRating {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}
	return errs
}
