// Package persistence selects the entity store backend from configuration.
package persistence

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/mongo"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the store provider
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Hasher service.PasswordHasher
}

// Stores is the set of repositories backed by the configured driver.
type Stores struct {
	fx.Out

	Entities  repository.EntityStore
	TxManager repository.TransactionManager
	Runs      repository.RunRepository
}

// New builds the repositories for config.Store.Driver.
func New(params Params) (Stores, error) {
	driver := params.Config.Store.Driver
	params.Logger.Info("Selecting entity store", slog.String("driver", driver))

	switch driver {
	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Stores{}, err
		}

		return Stores{
			Entities:  postgres.NewEntityStore(db, params.Hasher),
			TxManager: postgres.NewTransactionManager(db, params.Hasher),
			Runs:      postgres.NewRunRepository(db),
		}, nil
	case config.StoreDriverMongo:
		db, err := mongo.New(mongo.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Stores{}, err
		}

		return Stores{
			Entities:  mongo.NewEntityStore(db, params.Hasher),
			TxManager: mongo.NewTransactionManager(db, params.Hasher),
			Runs:      mongo.NewRunRepository(db),
		}, nil
	case config.StoreDriverMemory:
		store := memory.NewStore(params.Hasher)

		return Stores{
			Entities:  store,
			TxManager: memory.NewTransactionManager(store),
			Runs:      memory.NewRunRepository(),
		}, nil
	default:
		return Stores{}, errors.Errorf("unknown store driver %q", driver)
	}
}
