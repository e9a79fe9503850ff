// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/fixture"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// fixtureService implements the FixtureUsecase interface.
type fixtureService struct {
	store     repository.EntityStore
	txManager repository.TransactionManager
	runs      repository.RunRepository
	publisher service.EventPublisher
	catalog   *fixture.Catalog
	seed      config.SeedConfig
	logger    *slog.Logger
	now       func() time.Time
}

// FixtureServiceParams holds dependencies for FixtureService, injected by Fx.
type FixtureServiceParams struct {
	fx.In

	Store     repository.EntityStore
	TxManager repository.TransactionManager
	Runs      repository.RunRepository
	Publisher service.EventPublisher
	Catalog   *fixture.Catalog
	Config    *config.Config
	Logger    *slog.Logger
}

// NewFixtureService is the constructor for fixtureService.
func NewFixtureService(params FixtureServiceParams) usecase.FixtureUsecase {
	var seed config.SeedConfig
	if params.Config != nil && params.Config.Seed != nil {
		seed = *params.Config.Seed
	}

	return &fixtureService{
		store:     params.Store,
		txManager: params.TxManager,
		runs:      params.Runs,
		publisher: params.Publisher,
		catalog:   params.Catalog,
		seed:      seed,
		logger:    params.Logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// LoadCatalog provides the template catalog configured by seed.catalogPath.
func LoadCatalog(cfg *config.Config) (*fixture.Catalog, error) {
	if cfg.Seed == nil || cfg.Seed.CatalogPath == "" {
		return fixture.DefaultCatalog(), nil
	}

	return fixture.LoadCatalog(cfg.Seed.CatalogPath)
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *fixtureService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Generate runs Reset, then Build, Reconcile, Derive and Verify per kind, then reports.
func (srv *fixtureService) Generate(ctx context.Context, opts usecase.GenerateOptions) (*usecase.RunReport, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = srv.seed.RandomSeed
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = srv.seed.Workers
	}
	atomic := opts.Atomic || srv.seed.Atomic
	if atomic {
		// A transaction is bound to one connection; writes inside it are serialized.
		workers = 1
	}

	draw := fixture.NewDraw(seed)
	plan := fixture.Plan{
		Categories: srv.seed.Counts.Categories,
		Products:   srv.seed.Counts.Products,
		Users:      srv.seed.Counts.Users,
		Reviews:    srv.seed.Counts.Reviews,
		Orders:     srv.seed.Counts.Orders,
	}

	run := &entity.Run{
		ID:        uuid.New(),
		Status:    entity.RunStatusRunning,
		Stage:     entity.StageIdle,
		Counts:    make(map[entity.Kind]int64),
		Seed:      draw.Seed(),
		StartedAt: srv.now(),
	}
	if err := srv.runs.Create(ctx, run); err != nil {
		return nil, errors.Wrap(err, "failed to record fixture run")
	}

	logger := srv.log(ctx).With(slog.String("runID", run.ID.String()), slog.Uint64("seed", run.Seed))
	if actor, ok := deliverycontext.GetActor(ctx); ok {
		logger = logger.With(slog.String("actor", actor.String()))
	}
	ctx = deliverycontext.WithLogger(deliverycontext.WithRunID(ctx, run.ID), logger)
	logger.Info("Fixture run started", slog.Int("workers", workers), slog.Bool("atomic", atomic))

	p := &pipeline{
		run:         run,
		generator:   fixture.NewGenerator(srv.catalog, plan, draw, srv.now),
		graph:       fixture.NewGraph(),
		constraints: srv.seed.StaleConstraints,
		workers:     workers,
		logger:      logger,
		checkpoint: func(ctx context.Context) {
			if err := srv.runs.Update(ctx, run); err != nil {
				logger.Warn("Failed to checkpoint fixture run", slog.Any("error", err))
			}
		},
	}

	started := time.Now()
	var runErr error
	if atomic {
		runErr = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return p.execute(ctx, repoFactory.NewEntityStore())
		})
		if runErr != nil {
			// Rolled back: nothing from this run is committed.
			run.LastCommitted = ""
			if re, ok := errors.AsType[*domainerrors.RunError](runErr); ok {
				re.LastCommitted = ""
			}
		}
	} else {
		runErr = p.execute(ctx, srv.store)
	}

	report := srv.report(context.WithoutCancel(ctx), logger, run, time.Since(started), runErr)
	if runErr != nil {
		return report, runErr
	}

	return report, nil
}

// report closes the run in the ledger, logs the terminal status line and publishes the outcome.
// Nothing here can fail the run.
func (srv *fixtureService) report(ctx context.Context, logger *slog.Logger, run *entity.Run, elapsed time.Duration, runErr error) *usecase.RunReport {
	if runErr == nil {
		run.Stage = entity.StageReporting
	}
	for _, kind := range entity.Kinds() {
		n, err := srv.store.Count(ctx, kind)
		if err != nil {
			logger.Warn("Failed to count records", slog.String("kind", kind.String()), slog.Any("error", err))

			continue
		}
		run.Counts[kind] = n
	}

	if runErr != nil {
		run.Error = runErr.Error()
		run.Finish(entity.RunStatusFailed, srv.now())
	} else {
		run.Kind = ""
		run.Finish(entity.RunStatusDone, srv.now())
	}
	if err := srv.runs.Update(ctx, run); err != nil {
		logger.Error("Failed to close fixture run", slog.Any("error", err))
	}

	attrs := []any{
		slog.String("status", string(run.Status)),
		slog.String("elapsed", util.FormatDuration(elapsed)),
	}
	for _, kind := range entity.Kinds() {
		attrs = append(attrs, slog.Int64(kind.String(), run.Counts[kind]))
	}
	if runErr != nil {
		attrs = append(attrs,
			slog.String("stage", string(deriveFailedStage(runErr))),
			slog.String("kind", run.Kind.String()),
			slog.String("lastCommitted", run.LastCommitted.String()),
			slog.String("origin", errors.Origin(runErr)),
			slog.Any("error", runErr),
		)
		logger.Error("Fixture run failed", attrs...)
	} else {
		logger.Info("Fixture run done", attrs...)
	}

	srv.publish(ctx, logger, run, elapsed)

	return &usecase.RunReport{Run: run, Duration: elapsed}
}

func (srv *fixtureService) publish(ctx context.Context, logger *slog.Logger, run *entity.Run, elapsed time.Duration) {
	if srv.publisher == nil {
		return
	}

	counts := make(map[string]int64, len(run.Counts))
	for kind, n := range run.Counts {
		counts[kind.String()] = n
	}
	event := &service.RunEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		RunID:         run.ID.String(),
		Status:        string(run.Status),
		Stage:         string(run.Stage),
		LastCommitted: run.LastCommitted.String(),
		Error:         run.Error,
		Seed:          run.Seed,
		Counts:        counts,
		DurationMs:    elapsed.Milliseconds(),
	}
	if err := srv.publisher.PublishRunEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish run event", slog.Any("error", err))
	}
}

// Reset clears every managed kind without recording a run.
func (srv *fixtureService) Reset(ctx context.Context) (*usecase.ResetReport, error) {
	p := &pipeline{
		run:         &entity.Run{Counts: make(map[entity.Kind]int64)},
		constraints: srv.seed.StaleConstraints,
		logger:      srv.log(ctx),
	}

	return p.reset(ctx, srv.store)
}

// LatestRun implements usecase.FixtureUsecase.
func (srv *fixtureService) LatestRun(ctx context.Context) (*entity.Run, error) {
	run, err := srv.runs.Latest(ctx)
	if err != nil {
		return nil, mapRunLookupError(err)
	}

	return run, nil
}

// CurrentRun implements usecase.FixtureUsecase.
func (srv *fixtureService) CurrentRun(ctx context.Context) (*entity.Run, error) {
	run, err := srv.runs.LatestSucceeded(ctx)
	if err != nil {
		return nil, mapRunLookupError(err)
	}

	return run, nil
}

func mapRunLookupError(err error) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domainerrors.ErrRunNotFound
	}

	return errors.Wrap(err, "failed to load fixture run")
}

// deriveFailedStage returns the stage recorded on a RunError.
func deriveFailedStage(err error) entity.Stage {
	if re, ok := errors.AsType[*domainerrors.RunError](err); ok {
		return entity.Stage(re.Stage)
	}

	return entity.StageFailed
}
