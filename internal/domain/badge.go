package domain

import (
	"time"

	"github.com/google/uuid"
)

// BadgeType is a one-time achievement.
type BadgeType string

const (
	BadgeFirstGroupBuy     BadgeType = "FIRST_GROUP_BUY"
	BadgeTenParticipations BadgeType = "TEN_PARTICIPATIONS"
	BadgeReviewer          BadgeType = "REVIEWER"
	BadgePopularHost       BadgeType = "POPULAR_HOST"
)

func (b BadgeType) String() string { return string(b) }

func (b BadgeType) IsValid() bool {
	switch b {
	case BadgeFirstGroupBuy, BadgeTenParticipations, BadgeReviewer, BadgePopularHost:
		return true
	}
	return false
}

// Badge records that a user holds a badge type. (UserID, Type) is unique.
type Badge struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Type       BadgeType
	AcquiredAt time.Time
}
