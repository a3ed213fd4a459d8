package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GroupBuyStatus is the lifecycle state of a group buy.
type GroupBuyStatus string

const (
	GroupBuyStatusOpen        GroupBuyStatus = "OPEN"
	GroupBuyStatusClosingSoon GroupBuyStatus = "CLOSING_SOON"
	GroupBuyStatusClosed      GroupBuyStatus = "CLOSED"
	GroupBuyStatusCompleted   GroupBuyStatus = "COMPLETED"
	GroupBuyStatusCancelled   GroupBuyStatus = "CANCELLED"
)

func (s GroupBuyStatus) String() string { return string(s) }

func (s GroupBuyStatus) IsValid() bool {
	switch s {
	case GroupBuyStatusOpen, GroupBuyStatusClosingSoon, GroupBuyStatusClosed, GroupBuyStatusCompleted, GroupBuyStatusCancelled:
		return true
	}
	return false
}

// AcceptsParticipants reports whether users may still join.
func (s GroupBuyStatus) AcceptsParticipants() bool {
	return s == GroupBuyStatusOpen || s == GroupBuyStatusClosingSoon
}

// Reviewable reports whether participants may review the host.
func (s GroupBuyStatus) Reviewable() bool {
	return s == GroupBuyStatusClosed || s == GroupBuyStatusCompleted
}

// GroupBuy is a host-created, time-bounded collective purchase.
// CurrentCount is guarded by Version.
type GroupBuy struct {
	ID           uuid.UUID
	HostID       uuid.UUID
	Title        string
	Status       GroupBuyStatus
	TargetCount  int
	CurrentCount int
	Deadline     time.Time
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsFull reports whether the target headcount has been reached.
func (g *GroupBuy) IsFull() bool {
	return g.CurrentCount >= g.TargetCount
}

// DeliveryMethod is how a participant receives the goods.
type DeliveryMethod string

const (
	DeliveryPickup DeliveryMethod = "PICKUP"
	DeliveryParcel DeliveryMethod = "PARCEL"
)

func (d DeliveryMethod) IsValid() bool {
	return d == DeliveryPickup || d == DeliveryParcel
}

// Participation is a user's commitment to a group buy.
type Participation struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	GroupBuyID     uuid.UUID
	Quantity       int
	DeliveryMethod DeliveryMethod
	CancelledAt    *time.Time
	CreatedAt      time.Time
}

// Review is a participant's rating of a host for one group buy.
type Review struct {
	ID         uuid.UUID
	GroupBuyID uuid.UUID
	ReviewerID uuid.UUID
	HostID     uuid.UUID
	Rating     int
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HostReviewStats aggregates the reviews a host has received.
type HostReviewStats struct {
	Count     int
	RatingSum int
}

// Average returns the exact mean rating, zero when there are no reviews.
func (s HostReviewStats) Average() decimal.Decimal {
	if s.Count == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.RatingSum)).Div(decimal.NewFromInt(int64(s.Count)))
}

// Post is a community board post.
type Post struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Title     string
	CreatedAt time.Time
}

// Comment belongs to either a group buy or a post; ParentID marks a reply.
type Comment struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	GroupBuyID *uuid.UUID
	PostID     *uuid.UUID
	ParentID   *uuid.UUID
	Content    string
	CreatedAt  time.Time
}
