// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// GenerateOptions overrides the configured seed settings for a single run.
// Zero values fall back to configuration.
type GenerateOptions struct {
	// Seed fixes the PRNG; zero uses the configured seed, and a zero configured seed picks a time-based one.
	Seed uint64
	// Workers bounds parallel inserts within one entity type.
	Workers int
	// Atomic runs reset and build inside one store transaction.
	Atomic bool
}

// --- Output DTOs ---

// RunReport is the terminal summary of a fixture run.
type RunReport struct {
	Run      *entity.Run   `json:"run"`
	Duration time.Duration `json:"durationNs"`
}

// ResetReport lists how many records each kind lost during a reset.
type ResetReport struct {
	Removed            map[entity.Kind]int64 `json:"removed"`
	DroppedConstraints []string              `json:"droppedConstraints"`
}

// FixtureUsecase generates the catalog dataset and exposes the run ledger.
type FixtureUsecase interface {
	// Generate resets the store and rebuilds the whole dataset.
	// A failed run returns its report together with a *errors.RunError.
	Generate(ctx context.Context, opts GenerateOptions) (*RunReport, error)

	// Reset clears every managed kind and drops stale constraints.
	Reset(ctx context.Context) (*ResetReport, error)

	// LatestRun returns the most recent ledger entry regardless of status.
	LatestRun(ctx context.Context) (*entity.Run, error)

	// CurrentRun returns the run that produced the current dataset.
	CurrentRun(ctx context.Context) (*entity.Run, error)
}
