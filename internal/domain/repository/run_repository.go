package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// RunRepository stores the fixture run ledger. It is not cleared by a reset.
type RunRepository interface {
	// Create records a new run.
	Create(ctx context.Context, run *entity.Run) error

	// Update overwrites a recorded run.
	Update(ctx context.Context, run *entity.Run) error

	// Latest returns the most recently started run, or ErrRecordNotFound.
	Latest(ctx context.Context) (*entity.Run, error)

	// LatestSucceeded returns the most recent run with status done, or ErrRecordNotFound.
	LatestSucceeded(ctx context.Context) (*entity.Run, error)
}
