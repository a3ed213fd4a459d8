package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultReputation is the score every new user starts with.
var DefaultReputation = decimal.RequireFromString("36.5")

// Reasons recorded on reputation history rows.
const (
	ReputationReasonReview        = "review"
	ReputationReasonReviewUpdated = "review_updated"
	ReputationReasonReviewDeleted = "review_deleted"
)

// ReputationHistory is one append-only change of a user's reputation.
type ReputationHistory struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Delta     decimal.Decimal
	Previous  decimal.Decimal
	New       decimal.Decimal
	Reason    string
	ReviewID  *uuid.UUID
	CreatedAt time.Time
}
