package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind identifies one kind of committed primary-domain fact.
type EventKind string

const (
	EventGroupBuyCreated             EventKind = "GROUP_BUY_CREATED"
	EventParticipationCreated        EventKind = "PARTICIPATION_CREATED"
	EventParticipationCancelled      EventKind = "PARTICIPATION_CANCELLED"
	EventReviewCreated               EventKind = "REVIEW_CREATED"
	EventReviewUpdated               EventKind = "REVIEW_UPDATED"
	EventReviewDeleted               EventKind = "REVIEW_DELETED"
	EventCommentCreated              EventKind = "COMMENT_CREATED"
	EventGroupBuyDeadlineApproaching EventKind = "GROUP_BUY_DEADLINE_APPROACHING"
	EventGroupBuyCompleted           EventKind = "GROUP_BUY_COMPLETED"
)

func (k EventKind) String() string { return string(k) }

func (k EventKind) IsValid() bool {
	switch k {
	case EventGroupBuyCreated, EventParticipationCreated, EventParticipationCancelled,
		EventReviewCreated, EventReviewUpdated, EventReviewDeleted, EventCommentCreated,
		EventGroupBuyDeadlineApproaching, EventGroupBuyCompleted:
		return true
	}
	return false
}

// AllEventKinds returns every kind in the catalog.
func AllEventKinds() []EventKind {
	return []EventKind{
		EventGroupBuyCreated,
		EventParticipationCreated,
		EventParticipationCancelled,
		EventReviewCreated,
		EventReviewUpdated,
		EventReviewDeleted,
		EventCommentCreated,
		EventGroupBuyDeadlineApproaching,
		EventGroupBuyCompleted,
	}
}

// Payload is the kind-specific body of an Event. The set of implementations
// is closed to this package.
type Payload interface {
	Kind() EventKind
	payload()
}

// Event is an immutable fact about a committed change.
type Event struct {
	ID         uuid.UUID
	OccurredAt time.Time
	Payload    Payload
}

// NewEvent wraps a payload with a fresh ID and the current UTC time.
func NewEvent(p Payload) Event {
	return Event{
		ID:         uuid.New(),
		OccurredAt: time.Now().UTC(),
		Payload:    p,
	}
}

// Kind returns the kind of the payload, or "" for an empty event.
func (e Event) Kind() EventKind {
	if e.Payload == nil {
		return ""
	}
	return e.Payload.Kind()
}

// ActorID returns the user whose action produced the event.
// System-generated events return uuid.Nil.
func (e Event) ActorID() uuid.UUID {
	switch p := e.Payload.(type) {
	case GroupBuyCreated:
		return p.HostID
	case ParticipationCreated:
		return p.UserID
	case ParticipationCancelled:
		return p.UserID
	case ReviewCreated:
		return p.ReviewerID
	case ReviewUpdated:
		return p.ReviewerID
	case CommentCreated:
		return p.AuthorID
	}
	return uuid.Nil
}

// GroupBuyCreated is raised when a host opens a new group buy.
type GroupBuyCreated struct {
	GroupBuyID uuid.UUID
	HostID     uuid.UUID
}

// ParticipationCreated is raised when a user joins a group buy.
type ParticipationCreated struct {
	UserID     uuid.UUID
	GroupBuyID uuid.UUID
}

// ParticipationCancelled is raised when a user withdraws from a group buy.
type ParticipationCancelled struct {
	UserID     uuid.UUID
	GroupBuyID uuid.UUID
}

// ReviewCreated is raised when a participant reviews a host.
type ReviewCreated struct {
	ReviewID   uuid.UUID
	ReviewerID uuid.UUID
	HostID     uuid.UUID
	GroupBuyID uuid.UUID
	Rating     int
}

// ReviewUpdated is raised when a reviewer changes the rating of a review.
type ReviewUpdated struct {
	ReviewID   uuid.UUID
	ReviewerID uuid.UUID
	HostID     uuid.UUID
	OldRating  int
	NewRating  int
}

// ReviewDeleted is raised when a review is removed.
type ReviewDeleted struct {
	ReviewID uuid.UUID
	HostID   uuid.UUID
	Rating   int
}

// CommentCreated is raised for a new comment. Exactly one of ParentAuthorID
// (reply), GroupBuyHostID (top-level on a group buy) or PostAuthorID
// (top-level on a post) is expected to be set.
type CommentCreated struct {
	CommentID      uuid.UUID
	AuthorID       uuid.UUID
	ParentAuthorID *uuid.UUID
	GroupBuyHostID *uuid.UUID
	PostAuthorID   *uuid.UUID
}

// GroupBuyDeadlineApproaching is synthesized by the deadline scanner.
type GroupBuyDeadlineApproaching struct {
	GroupBuyID uuid.UUID
}

// GroupBuyCompleted is raised when a group buy reaches its target headcount.
type GroupBuyCompleted struct {
	GroupBuyID uuid.UUID
}

func (GroupBuyCreated) Kind() EventKind             { return EventGroupBuyCreated }
func (ParticipationCreated) Kind() EventKind        { return EventParticipationCreated }
func (ParticipationCancelled) Kind() EventKind      { return EventParticipationCancelled }
func (ReviewCreated) Kind() EventKind               { return EventReviewCreated }
func (ReviewUpdated) Kind() EventKind               { return EventReviewUpdated }
func (ReviewDeleted) Kind() EventKind               { return EventReviewDeleted }
func (CommentCreated) Kind() EventKind              { return EventCommentCreated }
func (GroupBuyDeadlineApproaching) Kind() EventKind { return EventGroupBuyDeadlineApproaching }
func (GroupBuyCompleted) Kind() EventKind           { return EventGroupBuyCompleted }

func (GroupBuyCreated) payload()             {}
func (ParticipationCreated) payload()        {}
func (ParticipationCancelled) payload()      {}
func (ReviewCreated) payload()               {}
func (ReviewUpdated) payload()               {}
func (ReviewDeleted) payload()               {}
func (CommentCreated) payload()              {}
func (GroupBuyDeadlineApproaching) payload() {}
func (GroupBuyCompleted) payload()           {}
