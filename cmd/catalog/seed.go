package main

import (
	"context"

	"storefront/internal/usecase"
)

func runSeed(ctx context.Context, seed uint64, workers int, atomic bool) error {
	var fixtureUC usecase.FixtureUsecase

	return withApp(ctx, func() error {
		report, err := fixtureUC.Generate(ctx, usecase.GenerateOptions{
			Seed:    seed,
			Workers: workers,
			Atomic:  atomic,
		})
		// A failed run still carries a report worth printing.
		if report != nil {
			if printErr := printJSON(report); printErr != nil && err == nil {
				return printErr
			}
		}

		return err
	}, &fixtureUC)
}

func runReset(ctx context.Context) error {
	var fixtureUC usecase.FixtureUsecase

	return withApp(ctx, func() error {
		report, err := fixtureUC.Reset(ctx)
		if err != nil {
			return err
		}

		return printJSON(report)
	}, &fixtureUC)
}
