package main

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/pubsub"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// withApp starts a container holding the stores and usecases, populates
// targets, runs fn and stops the container again.
func withApp(ctx context.Context, fn func() error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			persistence.New,
			pubsub.NewEventPublisher,
			auth.NewBcryptHasher,
			impl.LoadCatalog,
			impl.NewFixtureService,
			impl.NewExportService,
		),
		fx.Populate(targets...),
	)

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn()

	stopCtx, stopCancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return runErr
}
