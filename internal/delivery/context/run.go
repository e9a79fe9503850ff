package context

import (
	"context"

	"github.com/google/uuid"
)

// KeyRunID is the key for storing the active fixture run in context.
const KeyRunID ContextKey = "run_id"

// WithRunID returns a new context tied to a fixture run.
func WithRunID(ctx context.Context, runID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyRunID, runID)
}

// GetRunID returns the fixture run the context belongs to.
func GetRunID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeyRunID).(uuid.UUID)

	return id, ok
}
