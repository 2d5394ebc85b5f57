package middleware

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const ctxUserID contextKey = "user_id"

// WithUserID returns a context carrying the authenticated user id. Exposed so
// handler tests can seed requests without running the auth middleware.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxUserID, userID)
}

// UserIDFromContext extracts the authenticated user id, or uuid.Nil when the
// request never passed the auth middleware.
func UserIDFromContext(ctx context.Context) uuid.UUID {
	if ctx == nil {
		return uuid.Nil
	}
	if v, ok := ctx.Value(ctxUserID).(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}
