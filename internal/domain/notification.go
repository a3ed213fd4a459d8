package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags a notification with the event that produced it.
type NotificationType string

const (
	NotificationJoin      NotificationType = "JOIN"
	NotificationCancel    NotificationType = "CANCEL"
	NotificationReview    NotificationType = "REVIEW"
	NotificationReply     NotificationType = "REPLY"
	NotificationComment   NotificationType = "COMMENT"
	NotificationDeadline  NotificationType = "DEADLINE"
	NotificationCompleted NotificationType = "COMPLETED"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationJoin, NotificationCancel, NotificationReview, NotificationReply,
		NotificationComment, NotificationDeadline, NotificationCompleted:
		return true
	}
	return false
}

// EntityType names the kind of entity a notification points at.
type EntityType string

const (
	EntityGroupBuy EntityType = "GROUP_BUY"
	EntityReview   EntityType = "REVIEW"
	EntityComment  EntityType = "COMMENT"
	EntityPost     EntityType = "POST"
	EntityUser     EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

// Notification is a message delivered to exactly one recipient.
type Notification struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	ActorID     *uuid.UUID
	Type        NotificationType
	Content     string
	URL         *string
	RelatedType EntityType
	RelatedID   uuid.UUID
	IsRead      bool
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

// NotificationFilter selects a page of a recipient's live notifications.
// Read nil means both read and unread.
type NotificationFilter struct {
	RecipientID uuid.UUID
	Read        *bool
	Limit       int
	Offset      int
}
