package memory

import (
	"context"
	"sync"

	"storefront/internal/domain/repository"
)

// transactionManager runs callbacks against a snapshot-and-restore boundary.
// Transactions are serialized; writes made outside a transaction while one is
// open are lost if it rolls back.
type transactionManager struct {
	mu    sync.Mutex
	store *Store
}

type repositoryFactory struct {
	store *Store
}

// NewEntityStore returns the store itself.
func (f *repositoryFactory) NewEntityStore() repository.EntityStore {
	return f.store
}

// NewTransactionManager builds a TransactionManager over store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn and restores the store's previous rows and constraints if fn
// fails or panics.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	saved := tm.store.snapshot()
	defer func() {
		if r := recover(); r != nil {
			tm.store.restore(saved)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		tm.store.restore(saved)

		return err
	}

	return nil
}
