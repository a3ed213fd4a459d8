package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
	"github.com/heartmarshall/groupbuy-backend/pkg/ctxutil"
)

// CreateInput holds the parameters for a comment. Exactly one of GroupBuyID
// and PostID is set; ParentID makes it a reply within the same thread.
type CreateInput struct {
	GroupBuyID *uuid.UUID
	PostID     *uuid.UUID
	ParentID   *uuid.UUID
	Content    string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if (i.GroupBuyID == nil) == (i.PostID == nil) {
		errs = append(errs, domain.FieldError{Field: "target", Message: "exactly one of group_buy_id and post_id is required"})
	}
	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if utf8.RuneCountInString(content) > maxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Create stores a comment by the current user and publishes CommentCreated
// with exactly one notification target resolved: the parent's author for a
// reply, otherwise the group buy's host or the post's author.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := &domain.Comment{
		ID:         uuid.New(),
		AuthorID:   userID,
		GroupBuyID: input.GroupBuyID,
		PostID:     input.PostID,
		ParentID:   input.ParentID,
		Content:    strings.TrimSpace(input.Content),
		CreatedAt:  time.Now().UTC(),
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ev := domain.CommentCreated{CommentID: c.ID, AuthorID: userID}

		switch {
		case input.ParentID != nil:
			parent, err := s.comments.GetByID(txCtx, *input.ParentID)
			if err != nil {
				return fmt.Errorf("get parent comment: %w", err)
			}
			if !sameThread(parent, input) {
				return domain.NewValidationError("parent_id", "belongs to another thread")
			}
			ev.ParentAuthorID = &parent.AuthorID

		case input.GroupBuyID != nil:
			gb, err := s.groupBuys.GetByID(txCtx, *input.GroupBuyID)
			if err != nil {
				return fmt.Errorf("get group buy: %w", err)
			}
			ev.GroupBuyHostID = &gb.HostID

		default:
			post, err := s.comments.GetPostByID(txCtx, *input.PostID)
			if err != nil {
				return fmt.Errorf("get post: %w", err)
			}
			ev.PostAuthorID = &post.AuthorID
		}

		if err := s.comments.Create(txCtx, c); err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		s.bus.Publish(txCtx, domain.NewEvent(ev))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("comment_id", c.ID.String()),
		slog.Bool("reply", c.ParentID != nil),
	)
	return c, nil
}

func sameThread(parent *domain.Comment, input CreateInput) bool {
	if input.GroupBuyID != nil {
		return parent.GroupBuyID != nil && *parent.GroupBuyID == *input.GroupBuyID
	}
	return parent.PostID != nil && *parent.PostID == *input.PostID
}
