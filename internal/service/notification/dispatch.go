package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
)

// delivery is the resolved fan-out of one event.
type delivery struct {
	recipients []uuid.UUID
	actorID    uuid.UUID // uuid.Nil for system events
	template   Template
	related    domain.EntityType
	relatedID  uuid.UUID
}

// Handle creates the notifications ev calls for. A user is never notified
// of their own action, and a reply notifies only the parent comment's author.
func (s *Service) Handle(ctx context.Context, ev domain.Event) error {
	d, err := s.resolve(ctx, ev)
	if err != nil {
		return err
	}
	if d == nil {
		return nil
	}
	return s.deliver(ctx, *d)
}

func (s *Service) resolve(ctx context.Context, ev domain.Event) (*delivery, error) {
	switch p := ev.Payload.(type) {
	case domain.ParticipationCreated:
		return s.toHost(ctx, p.GroupBuyID, p.UserID, TemplateJoin)

	case domain.ParticipationCancelled:
		return s.toHost(ctx, p.GroupBuyID, p.UserID, TemplateCancel)

	case domain.ReviewCreated:
		return &delivery{
			recipients: []uuid.UUID{p.HostID},
			actorID:    p.ReviewerID,
			template:   TemplateReview,
			related:    domain.EntityReview,
			relatedID:  p.ReviewID,
		}, nil

	case domain.CommentCreated:
		d := &delivery{actorID: p.AuthorID, related: domain.EntityComment, relatedID: p.CommentID}
		switch {
		case p.ParentAuthorID != nil:
			d.recipients, d.template = []uuid.UUID{*p.ParentAuthorID}, TemplateReply
		case p.GroupBuyHostID != nil:
			d.recipients, d.template = []uuid.UUID{*p.GroupBuyHostID}, TemplateCommentOnGroupBuy
		case p.PostAuthorID != nil:
			d.recipients, d.template = []uuid.UUID{*p.PostAuthorID}, TemplateCommentOnPost
		default:
			return nil, nil
		}
		return d, nil

	case domain.GroupBuyDeadlineApproaching:
		return s.toParticipants(ctx, p.GroupBuyID, TemplateDeadline)

	case domain.GroupBuyCompleted:
		return s.toParticipants(ctx, p.GroupBuyID, TemplateCompleted)
	}

	return nil, nil
}

func (s *Service) toHost(ctx context.Context, groupBuyID, actorID uuid.UUID, t Template) (*delivery, error) {
	gb, err := s.groupBuys.GetByID(ctx, groupBuyID)
	if err != nil {
		return nil, fmt.Errorf("resolve host: %w", err)
	}
	return &delivery{
		recipients: []uuid.UUID{gb.HostID},
		actorID:    actorID,
		template:   t,
		related:    domain.EntityGroupBuy,
		relatedID:  gb.ID,
	}, nil
}

func (s *Service) toParticipants(ctx context.Context, groupBuyID uuid.UUID, t Template) (*delivery, error) {
	ids, err := s.groupBuys.ListParticipantIDs(ctx, groupBuyID)
	if err != nil {
		return nil, fmt.Errorf("resolve participants: %w", err)
	}
	return &delivery{
		recipients: ids,
		template:   t,
		related:    domain.EntityGroupBuy,
		relatedID:  groupBuyID,
	}, nil
}

func (s *Service) deliver(ctx context.Context, d delivery) error {
	recipients := make([]uuid.UUID, 0, len(d.recipients))
	seen := make(map[uuid.UUID]bool, len(d.recipients))
	for _, r := range d.recipients {
		if r == uuid.Nil || r == d.actorID || seen[r] {
			continue
		}
		seen[r] = true
		recipients = append(recipients, r)
	}
	if len(recipients) == 0 {
		s.log.DebugContext(ctx, "no recipients after self-suppression",
			slog.String("type", d.template.Type().String()),
		)
		return nil
	}

	var (
		actor     *uuid.UUID
		actorName string
	)
	if d.actorID != uuid.Nil {
		u, err := s.users.GetByID(ctx, d.actorID)
		if err != nil {
			return fmt.Errorf("resolve actor: %w", err)
		}
		actor, actorName = &u.ID, u.Nickname
	}

	now := time.Now().UTC()
	content := Content(d.template, actorName)
	url := TargetURL(d.related, d.relatedID)

	for _, r := range recipients {
		n := &domain.Notification{
			ID:          uuid.New(),
			RecipientID: r,
			ActorID:     actor,
			Type:        d.template.Type(),
			Content:     content,
			URL:         url,
			RelatedType: d.related,
			RelatedID:   d.relatedID,
			CreatedAt:   now,
		}
		if err := s.notifications.Create(ctx, n); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}
	}

	s.log.InfoContext(ctx, "notifications created",
		slog.String("type", d.template.Type().String()),
		slog.Int("count", len(recipients)),
	)

	return nil
}
