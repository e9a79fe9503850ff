package mongo

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// sessionTransactionManager runs callbacks inside a multi-document transaction.
// The deployment must be a replica set or sharded cluster.
type sessionTransactionManager struct {
	db     *mongo.Database
	hasher service.PasswordHasher
}

type sessionRepositoryFactory struct {
	db      *mongo.Database
	session mongo.Session
	hasher  service.PasswordHasher
}

// NewEntityStore creates an entity store bound to the session.
func (f *sessionRepositoryFactory) NewEntityStore() repository.EntityStore {
	return newEntityStore(f.db, f.session, f.hasher)
}

// NewTransactionManager is the constructor for sessionTransactionManager.
func NewTransactionManager(db *mongo.Database, hasher service.PasswordHasher) repository.TransactionManager {
	return &sessionTransactionManager{db: db, hasher: hasher}
}

// Execute runs fn in a transaction; the driver retries fn on transient errors.
func (tm *sessionTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	session, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	factory := &sessionRepositoryFactory{db: tm.db, session: session, hasher: tm.hasher}
	_, err = session.WithTransaction(ctx, func(mongo.SessionContext) (any, error) {
		return nil, fn(factory)
	})

	return err
}
