// Package ctxutil carries the acting user and the event being dispatched
// through context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey  ctxKey = "user_id"
	eventIDKey ctxKey = "event_id"
)

// WithUserID records the user on whose behalf the call runs.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx returns the acting user. A missing value, a value of the
// wrong type and uuid.Nil all report false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return idFromCtx(ctx, userIDKey)
}

// WithEventID marks the context as belonging to the dispatch of one event.
func WithEventID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, eventIDKey, id)
}

// EventIDFromCtx returns the ID of the event being dispatched, or uuid.Nil.
func EventIDFromCtx(ctx context.Context) uuid.UUID {
	id, _ := idFromCtx(ctx, eventIDKey)
	return id
}

func idFromCtx(ctx context.Context, key ctxKey) (uuid.UUID, bool) {
	id, ok := ctx.Value(key).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
