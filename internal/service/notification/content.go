package notification

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

// Template selects the wording of a notification.
type Template int

const (
	TemplateJoin Template = iota + 1
	TemplateCancel
	TemplateReview
	TemplateReply
	TemplateCommentOnGroupBuy
	TemplateCommentOnPost
	TemplateDeadline
	TemplateCompleted
)

// Type returns the notification type recorded for the template.
func (t Template) Type() domain.NotificationType {
	switch t {
	case TemplateJoin:
		return domain.NotificationJoin
	case TemplateCancel:
		return domain.NotificationCancel
	case TemplateReview:
		return domain.NotificationReview
	case TemplateReply:
		return domain.NotificationReply
	case TemplateCommentOnGroupBuy, TemplateCommentOnPost:
		return domain.NotificationComment
	case TemplateDeadline:
		return domain.NotificationDeadline
	case TemplateCompleted:
		return domain.NotificationCompleted
	}
	return ""
}

// Content renders the notification text. actorName is ignored by the
// system templates.
func Content(t Template, actorName string) string {
	switch t {
	case TemplateJoin:
		return actorName + " joined your group buy."
	case TemplateCancel:
		return actorName + " cancelled their participation."
	case TemplateReview:
		return actorName + " left a review for your group buy."
	case TemplateReply:
		return actorName + " replied to your comment."
	case TemplateCommentOnGroupBuy:
		return actorName + " commented on your group buy."
	case TemplateCommentOnPost:
		return actorName + " commented on your post."
	case TemplateDeadline:
		return "A group buy you favorited is closing soon."
	case TemplateCompleted:
		return "A group buy you joined reached its goal."
	}
	return ""
}

// TargetURL returns the browsable path of the related entity.
// Comments have no page of their own and yield nil.
func TargetURL(entity domain.EntityType, id uuid.UUID) *string {
	var prefix string
	switch entity {
	case domain.EntityGroupBuy:
		prefix = "/group-buys/"
	case domain.EntityReview:
		prefix = "/reviews/"
	case domain.EntityPost:
		prefix = "/posts/"
	case domain.EntityUser:
		prefix = "/users/"
	default:
		return nil
	}
	url := prefix + id.String()
	return &url
}
