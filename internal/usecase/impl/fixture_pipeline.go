package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/fixture"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// pipeline drives one fixture run through its stages. It is not safe for
// concurrent use; parallelism happens inside a stage.
type pipeline struct {
	run         *entity.Run
	generator   *fixture.Generator
	graph       *fixture.Graph
	constraints []config.StaleConstraint
	workers     int
	logger      *slog.Logger
	checkpoint  func(ctx context.Context)
}

// execute resets the store, then builds every kind in dependency order.
func (p *pipeline) execute(ctx context.Context, store repository.EntityStore) error {
	if _, err := p.reset(ctx, store); err != nil {
		return err
	}

	for _, kind := range entity.Kinds() {
		p.run.Kind = kind
		if err := ctx.Err(); err != nil {
			return p.fail(domainerrors.ErrInternalError, errors.WithStack(err))
		}

		if err := p.build(ctx, store, kind); err != nil {
			return err
		}
		if err := p.reconcile(ctx, store, kind); err != nil {
			return err
		}
		if kind == entity.KindOrderItem {
			if err := p.derive(ctx, store); err != nil {
				return err
			}
		}
		if err := p.verify(ctx, store, kind); err != nil {
			return err
		}

		p.run.LastCommitted = kind
		if p.checkpoint != nil {
			p.checkpoint(ctx)
		}
	}

	return nil
}

// reset drops the configured stale constraints and clears every kind, children first.
func (p *pipeline) reset(ctx context.Context, store repository.EntityStore) (*usecase.ResetReport, error) {
	started := p.enter(entity.StageResetting)
	report := &usecase.ResetReport{
		Removed:            make(map[entity.Kind]int64),
		DroppedConstraints: []string{},
	}

	for _, c := range p.constraints {
		kind, ok := entity.ParseKind(c.Kind)
		if !ok {
			return nil, p.fail(domainerrors.ErrResetFailure, errors.Wrapf(repository.ErrUnknownKind, "stale constraint %s on %q", c.Name, c.Kind))
		}
		err := store.DropConstraint(ctx, kind, c.Name)
		if errors.Is(err, repository.ErrConstraintNotFound) {
			p.logger.Debug("Stale constraint already absent", slog.String("kind", kind.String()), slog.String("constraint", c.Name))

			continue
		}
		if err != nil {
			return nil, p.fail(domainerrors.ErrResetFailure, err)
		}
		report.DroppedConstraints = append(report.DroppedConstraints, kind.String()+"."+c.Name)
		p.logger.Info("Dropped stale constraint", slog.String("kind", kind.String()), slog.String("constraint", c.Name))
	}

	kinds := entity.Kinds()
	var total int64
	for i := len(kinds) - 1; i >= 0; i-- {
		kind := kinds[i]
		n, err := store.DeleteAll(ctx, kind)
		if err != nil {
			p.run.Kind = kind

			return nil, p.fail(domainerrors.ErrResetFailure, err)
		}
		report.Removed[kind] = n
		total += n
	}

	p.done(started, "", total)

	return report, nil
}

// build plans the records of kind, checks them against the committed graph and inserts them.
func (p *pipeline) build(ctx context.Context, store repository.EntityStore, kind entity.Kind) error {
	started := p.enter(entity.StageBuilding)

	records, err := p.generator.Build(kind, p.graph)
	if err != nil {
		if errors.Is(err, fixture.ErrMissingDependency) {
			return p.fail(domainerrors.ErrDependencyViolation, err)
		}

		return p.fail(domainerrors.ErrInternalError, err)
	}

	for _, rec := range records {
		if err := p.graph.Resolve(rec); err != nil {
			return p.fail(domainerrors.ErrDependencyViolation, err)
		}
		if err := entity.Validate(rec); err != nil {
			return p.fail(domainerrors.ErrInvalidRecord, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for _, rec := range records {
		g.Go(func() error {
			if _, err := store.Insert(gctx, rec); err != nil {
				return errors.Wrapf(err, "insert %s", kind)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, repository.ErrDanglingReference) {
			return p.fail(domainerrors.ErrDependencyViolation, err)
		}

		return p.fail(domainerrors.ErrInternalError, err)
	}

	p.graph.Commit(kind, records)
	p.done(started, kind, int64(len(records)))

	return nil
}

// reconcile writes the back-references that the children of kind imply on their parents.
func (p *pipeline) reconcile(ctx context.Context, store repository.EntityStore, kind entity.Kind) error {
	var (
		parents []entity.Record
		field   entity.Field
	)

	started := p.enter(entity.StageReconciling)
	switch kind {
	case entity.KindProfile:
		users := p.index(entity.KindUser)
		for _, profile := range fixture.Of[*entity.Profile](p.graph, entity.KindProfile) {
			user, ok := users[profile.UserID].(*entity.User)
			if !ok {
				return p.fail(domainerrors.ErrReconciliationGap, errors.Errorf("profile %s has no user %s", profile.ID, profile.UserID))
			}
			id := profile.ID
			user.ProfileID = &id
			parents = append(parents, user)
		}
		field = entity.FieldProfile
	case entity.KindReview:
		products := p.index(entity.KindProduct)
		seen := make(map[uuid.UUID]bool)
		for _, review := range fixture.Of[*entity.Review](p.graph, entity.KindReview) {
			product, ok := products[review.ProductID].(*entity.Product)
			if !ok {
				return p.fail(domainerrors.ErrReconciliationGap, errors.Errorf("review %s has no product %s", review.ID, review.ProductID))
			}
			product.ReviewIDs = appendUnique(product.ReviewIDs, review.ID)
			if !seen[product.ID] {
				seen[product.ID] = true
				parents = append(parents, product)
			}
		}
		field = entity.FieldReviews
	case entity.KindOrder:
		users := p.index(entity.KindUser)
		seen := make(map[uuid.UUID]bool)
		for _, order := range fixture.Of[*entity.Order](p.graph, entity.KindOrder) {
			user, ok := users[order.UserID].(*entity.User)
			if !ok {
				return p.fail(domainerrors.ErrReconciliationGap, errors.Errorf("order %s has no user %s", order.ID, order.UserID))
			}
			user.OrderIDs = append(user.OrderIDs, order.ID)
			if !seen[user.ID] {
				seen[user.ID] = true
				parents = append(parents, user)
			}
		}
		field = entity.FieldOrders
	case entity.KindOrderItem:
		orders := p.index(entity.KindOrder)
		seen := make(map[uuid.UUID]bool)
		for _, item := range fixture.Of[*entity.OrderItem](p.graph, entity.KindOrderItem) {
			order, ok := orders[item.OrderID].(*entity.Order)
			if !ok {
				return p.fail(domainerrors.ErrReconciliationGap, errors.Errorf("item %s has no order %s", item.ID, item.OrderID))
			}
			order.ItemIDs = append(order.ItemIDs, item.ID)
			if !seen[order.ID] {
				seen[order.ID] = true
				parents = append(parents, order)
			}
		}
		field = entity.FieldItems
	default:
		return nil
	}

	if err := p.update(ctx, store, parents, field); err != nil {
		return p.fail(domainerrors.ErrReconciliationGap, err)
	}
	p.done(started, kind, int64(len(parents)))

	return nil
}

// derive recomputes every order total from its items.
func (p *pipeline) derive(ctx context.Context, store repository.EntityStore) error {
	started := p.enter(entity.StageDeriving)

	items := fixture.Of[*entity.OrderItem](p.graph, entity.KindOrderItem)
	byOrder := make(map[uuid.UUID][]*entity.OrderItem)
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}

	orders := p.graph.Records(entity.KindOrder)
	for _, rec := range orders {
		order, _ := rec.(*entity.Order)
		order.TotalPrice = entity.ItemsTotal(order.ID, byOrder[order.ID])
	}
	if err := p.update(ctx, store, orders, entity.FieldTotalPrice); err != nil {
		return p.fail(domainerrors.ErrDerivedValueMismatch, err)
	}
	p.done(started, entity.KindOrder, int64(len(orders)))

	return nil
}

func (p *pipeline) update(ctx context.Context, store repository.EntityStore, records []entity.Record, field entity.Field) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for _, rec := range records {
		g.Go(func() error {
			if err := store.Update(gctx, rec, field); err != nil {
				return errors.Wrapf(err, "update %s %s.%s", rec.Kind(), rec.Identity(), field)
			}

			return nil
		})
	}

	return g.Wait()
}

// index maps the committed records of kind by identifier.
func (p *pipeline) index(kind entity.Kind) map[uuid.UUID]entity.Record {
	recs := p.graph.Records(kind)
	out := make(map[uuid.UUID]entity.Record, len(recs))
	for _, rec := range recs {
		out[rec.Identity()] = rec
	}

	return out
}

func (p *pipeline) enter(stage entity.Stage) time.Time {
	p.run.Stage = stage

	return time.Now()
}

func (p *pipeline) done(started time.Time, kind entity.Kind, count int64) {
	p.logger.Info("Stage completed",
		slog.String("stage", string(p.run.Stage)),
		slog.String("kind", kind.String()),
		slog.Int64("count", count),
		slog.Duration("elapsed", time.Since(started)),
	)
}

func (p *pipeline) fail(class *domainerrors.BaseError, err error) error {
	return domainerrors.NewRunError(class, string(p.run.Stage), p.run.Kind.String(), p.run.LastCommitted.String(), err)
}

func appendUnique(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}

	return append(ids, id)
}
