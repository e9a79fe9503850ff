package context

import (
	"context"

	"github.com/google/uuid"
)

// KeyActor is the key for storing the authenticated user ID in context.
const KeyActor ContextKey = "actor"

// WithActor returns a new context carrying the authenticated user ID.
func WithActor(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyActor, userID)
}

// GetActor extracts the authenticated user ID from context.Context.
func GetActor(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeyActor).(uuid.UUID)

	return id, ok
}
