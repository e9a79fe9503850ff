package memory

import (
	"context"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

// RunRepository keeps the fixture run ledger in memory.
type RunRepository struct {
	mu   sync.RWMutex
	runs []*entity.Run
}

// NewRunRepository creates an empty ledger.
func NewRunRepository() *RunRepository {
	return &RunRepository{}
}

// Create implements repository.RunRepository.
func (r *RunRepository) Create(_ context.Context, run *entity.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs = append(r.runs, cloneRun(run))

	return nil
}

// Update implements repository.RunRepository.
func (r *RunRepository) Update(_ context.Context, run *entity.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.runs {
		if existing.ID == run.ID {
			r.runs[i] = cloneRun(run)

			return nil
		}
	}

	return errors.Wrapf(repository.ErrRecordNotFound, "run %s", run.ID)
}

// Latest implements repository.RunRepository.
func (r *RunRepository) Latest(_ context.Context) (*entity.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.runs) == 0 {
		return nil, repository.ErrRecordNotFound
	}

	return cloneRun(r.runs[len(r.runs)-1]), nil
}

// LatestSucceeded implements repository.RunRepository.
func (r *RunRepository) LatestSucceeded(_ context.Context) (*entity.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.runs) - 1; i >= 0; i-- {
		if r.runs[i].Status == entity.RunStatusDone {
			return cloneRun(r.runs[i]), nil
		}
	}

	return nil, repository.ErrRecordNotFound
}

func cloneRun(run *entity.Run) *entity.Run {
	cp := *run
	cp.Counts = make(map[entity.Kind]int64, len(run.Counts))
	for k, v := range run.Counts {
		cp.Counts[k] = v
	}
	if run.FinishedAt != nil {
		at := *run.FinishedAt
		cp.FinishedAt = &at
	}

	return &cp
}
