package impl

import (
	"context"
	"slices"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/fixture"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/memory"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixtureHarness struct {
	service   usecase.FixtureUsecase
	store     *memory.Store
	runs      *memory.RunRepository
	publisher *mockSvc.MockEventPublisher
}

func newFixtureHarness(t *testing.T, seed config.SeedConfig, opts ...memory.Option) *fixtureHarness {
	t.Helper()

	store := memory.NewStore(auth.NewBcryptHasherWithCost(bcrypt.MinCost), opts...)
	h := &fixtureHarness{
		store:     store,
		runs:      memory.NewRunRepository(),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	h.service = h.build(store, seed)

	return h
}

// build wires the service over an arbitrary entity store sharing the harness ledger.
func (h *fixtureHarness) build(store repository.EntityStore, seed config.SeedConfig) usecase.FixtureUsecase {
	if seed.Workers == 0 {
		seed.Workers = 4
	}

	return NewFixtureService(FixtureServiceParams{
		Store:     store,
		TxManager: memory.NewTransactionManager(h.store),
		Runs:      h.runs,
		Publisher: h.publisher,
		Catalog:   fixture.DefaultCatalog(),
		Config:    &config.Config{Seed: &seed},
		Logger:    newDiscardLogger(),
	})
}

func (h *fixtureHarness) expectPublish() {
	h.publisher.EXPECT().PublishRunEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (h *fixtureHarness) count(t *testing.T, kind entity.Kind) int64 {
	t.Helper()

	n, err := h.store.Count(context.Background(), kind)
	require.NoError(t, err)

	return n
}

// failingStore rejects inserts of one kind.
type failingStore struct {
	repository.EntityStore
	kind entity.Kind
}

func (s *failingStore) Insert(ctx context.Context, rec entity.Record) (uuid.UUID, error) {
	if rec.Kind() == s.kind {
		return uuid.Nil, errors.New("connection reset by peer")
	}

	return s.EntityStore.Insert(ctx, rec)
}

// droppingStore acknowledges updates of one field without writing them.
type droppingStore struct {
	repository.EntityStore
	field entity.Field
}

func (s *droppingStore) Update(ctx context.Context, rec entity.Record, fields ...entity.Field) error {
	if slices.Contains(fields, s.field) {
		return nil
	}

	return s.EntityStore.Update(ctx, rec, fields...)
}

func TestFixtureService_GenerateBuildsDefaultDataset(t *testing.T) {
	h := newFixtureHarness(t, config.SeedConfig{RandomSeed: 42})
	h.publisher.EXPECT().
		PublishRunEvent(mock.Anything, mock.MatchedBy(func(e *service.RunEvent) bool {
			return e.Status == string(entity.RunStatusDone) && e.Seed == 42 && e.Counts["users"] == 8
		})).
		Return(nil).
		Once()

	report, err := h.service.Generate(context.Background(), usecase.GenerateOptions{})
	require.NoError(t, err)
	require.NotNil(t, report)

	run := report.Run
	assert.Equal(t, entity.RunStatusDone, run.Status)
	assert.Equal(t, entity.StageDone, run.Stage)
	assert.Equal(t, entity.KindTask, run.LastCommitted)
	assert.Equal(t, uint64(42), run.Seed)
	assert.NotNil(t, run.FinishedAt)

	want := map[entity.Kind]int64{
		entity.KindCategory: 6,
		entity.KindProduct:  15,
		entity.KindUser:     8,
		entity.KindProfile:  8,
		entity.KindReview:   20,
		entity.KindOrder:    15,
		entity.KindTask:     40,
	}
	for kind, n := range want {
		assert.Equal(t, n, run.Counts[kind], kind.String())
		assert.Equal(t, n, h.count(t, kind), kind.String())
	}
	items := run.Counts[entity.KindOrderItem]
	assert.GreaterOrEqual(t, items, int64(15*fixture.ItemsMin))
	assert.LessOrEqual(t, items, int64(15*fixture.ItemsMax))
}

func TestFixtureService_GenerateReconcilesBackReferences(t *testing.T) {
	h := newFixtureHarness(t, config.SeedConfig{RandomSeed: 7, Workers: 1})
	h.expectPublish()
	ctx := context.Background()

	_, err := h.service.Generate(ctx, usecase.GenerateOptions{})
	require.NoError(t, err)

	users, err := repository.FindAllAs[*entity.User](ctx, h.store, entity.KindUser)
	require.NoError(t, err)
	profiles, err := repository.FindAllAs[*entity.Profile](ctx, h.store, entity.KindProfile)
	require.NoError(t, err)
	orders, err := repository.FindAllAs[*entity.Order](ctx, h.store, entity.KindOrder)
	require.NoError(t, err)
	items, err := repository.FindAllAs[*entity.OrderItem](ctx, h.store, entity.KindOrderItem)
	require.NoError(t, err)
	products, err := repository.FindAllAs[*entity.Product](ctx, h.store, entity.KindProduct)
	require.NoError(t, err)
	reviews, err := repository.FindAllAs[*entity.Review](ctx, h.store, entity.KindReview)
	require.NoError(t, err)
	tasks, err := repository.FindAllAs[*entity.Task](ctx, h.store, entity.KindTask)
	require.NoError(t, err)

	profileOwner := make(map[uuid.UUID]uuid.UUID)
	for _, p := range profiles {
		profileOwner[p.ID] = p.UserID
	}
	// One worker keeps the stored order equal to creation order.
	ordersOf := make(map[uuid.UUID][]uuid.UUID)
	for _, o := range orders {
		ordersOf[o.UserID] = append(ordersOf[o.UserID], o.ID)
	}
	for _, u := range users {
		require.NotNil(t, u.ProfileID, u.Username)
		assert.Equal(t, u.ID, profileOwner[*u.ProfileID])
		if want := ordersOf[u.ID]; len(want) > 0 {
			assert.Equal(t, want, u.OrderIDs, u.Username)
		} else {
			assert.Empty(t, u.OrderIDs, u.Username)
		}
		assert.Empty(t, u.Password)
		assert.NotEmpty(t, u.PasswordHash)
	}

	reviewsOf := make(map[uuid.UUID][]uuid.UUID)
	for _, r := range reviews {
		assert.GreaterOrEqual(t, r.Rating, fixture.RatingMin)
		assert.LessOrEqual(t, r.Rating, fixture.RatingMax)
		reviewsOf[r.ProductID] = append(reviewsOf[r.ProductID], r.ID)
	}
	for _, p := range products {
		assert.ElementsMatch(t, reviewsOf[p.ID], p.ReviewIDs, p.Name)
	}

	itemsOf := make(map[uuid.UUID][]uuid.UUID)
	for _, i := range items {
		itemsOf[i.OrderID] = append(itemsOf[i.OrderID], i.ID)
	}
	for _, o := range orders {
		assert.Equal(t, itemsOf[o.ID], o.ItemIDs)
		assert.True(t, entity.ItemsTotal(o.ID, items).Equal(o.TotalPrice), "order %s total %s", o.ID, o.TotalPrice)
		assert.True(t, o.TotalPrice.IsPositive())
	}

	for _, task := range tasks {
		assert.Equal(t, task.Status == entity.TaskStatusCompleted, task.CompletedAt != nil, task.Title)
	}
}

func TestFixtureService_GenerateDetectsDroppedUpdates(t *testing.T) {
	tests := []struct {
		name          string
		field         entity.Field
		class         *domainerrors.BaseError
		stage         entity.Stage
		kind          entity.Kind
		lastCommitted entity.Kind
	}{
		{
			name:          "product reviews",
			field:         entity.FieldReviews,
			class:         domainerrors.ErrReconciliationGap,
			stage:         entity.StageVerifying,
			kind:          entity.KindReview,
			lastCommitted: entity.KindProfile,
		},
		{
			name:          "user orders",
			field:         entity.FieldOrders,
			class:         domainerrors.ErrReconciliationGap,
			stage:         entity.StageVerifying,
			kind:          entity.KindOrder,
			lastCommitted: entity.KindReview,
		},
		{
			name:          "order totals",
			field:         entity.FieldTotalPrice,
			class:         domainerrors.ErrDerivedValueMismatch,
			stage:         entity.StageDeriving,
			kind:          entity.KindOrderItem,
			lastCommitted: entity.KindOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFixtureHarness(t, config.SeedConfig{RandomSeed: 21})
			h.expectPublish()
			svc := h.build(&droppingStore{EntityStore: h.store, field: tt.field}, config.SeedConfig{RandomSeed: 21})

			report, err := svc.Generate(context.Background(), usecase.GenerateOptions{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.class)

			runErr, ok := errors.AsType[*domainerrors.RunError](err)
			require.True(t, ok)
			assert.Equal(t, string(tt.stage), runErr.Stage)
			assert.Equal(t, tt.kind.String(), runErr.Kind)
			assert.Equal(t, tt.lastCommitted.String(), runErr.LastCommitted)

			assert.Equal(t, entity.RunStatusFailed, report.Run.Status)
			assert.Equal(t, tt.lastCommitted, report.Run.LastCommitted)
		})
	}
}

func TestFixtureService_GenerateScopesContextToRun(t *testing.T) {
	h := newFixtureHarness(t, config.SeedConfig{RandomSeed: 19})
	var (
		runID  uuid.UUID
		scoped bool
	)
	h.publisher.EXPECT().
		PublishRunEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.RunEvent) error {
			runID, _ = deliverycontext.GetRunID(ctx)
			scoped = deliverycontext.GetLogger(ctx) != nil

			return nil
		}).
		Once()

	report, err := h.service.Generate(context.Background(), usecase.GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, report.Run.ID, runID)
	assert.True(t, scoped)
}

func TestFixtureService_GenerateIsReproducible(t *testing.T) {
	snapshot := func() (ratings []int, quantities []int, loyalty []int, completed []bool) {
		h := newFixtureHarness(t, config.SeedConfig{RandomSeed: 1234, Workers: 1})
		h.expectPublish()
		ctx := context.Background()

		_, err := h.service.Generate(ctx, usecase.GenerateOptions{})
		require.NoError(t, err)

		reviews, err := repository.FindAllAs[*entity.Review](ctx, h.store, entity.KindReview)
		require.NoError(t, err)
		for _, r := range reviews {
			ratings = append(ratings, r.Rating)
		}
		items, err := repository.FindAllAs[*entity.OrderItem](ctx, h.store, entity.KindOrderItem)
		require.NoError(t, err)
		for _, i := range items {
			quantities = append(quantities, i.Quantity)
		}
		profiles, err := repository.FindAllAs[*entity.Profile](ctx, h.store, entity.KindProfile)
		require.NoError(t, err)
		for _, p := range profiles {
			loyalty = append(loyalty, p.LoyaltyPoints)
		}
		tasks, err := repository.FindAllAs[*entity.Task](ctx, h.store, entity.KindTask)
		require.NoError(t, err)
		for _, task := range tasks {
			completed = append(completed, task.Status == entity.TaskStatusCompleted)
		}

		return ratings, quantities, loyalty, completed
	}

	r1, q1, l1, c1 := snapshot()
	r2, q2, l2, c2 := snapshot()

	assert.Equal(t, r1, r2)
	assert.Equal(t, q1, q2)
	assert.Equal(t, l1, l2)
	assert.Equal(t, c1, c2)
}

func TestFixtureService_GenerateReplacesPreviousDataset(t *testing.T) {
	h := newFixtureHarness(t, config.SeedConfig{RandomSeed: 3})
	h.expectPublish()
	ctx := context.Background()

	_, err := h.service.Generate(ctx, usecase.GenerateOptions{})
	require.NoError(t, err)
	_, err = h.service.Generate(ctx, usecase.GenerateOptions{Seed: 4})
	require.NoError(t, err)

	assert.Equal(t, int64(6), h.count(t, entity.KindCategory))
	assert.Equal(t, int64(8), h.count(t, entity.KindUser))
	assert.Equal(t, int64(40), h.count(t, entity.KindTask))
}

func TestFixtureService_GenerateDropsStaleConstraint(t *testing.T) {
	staleProfileIndex := memory.WithUniqueConstraint(entity.KindUser, "profile_1", func(rec entity.Record) (string, bool) {
		user, _ := rec.(*entity.User)
		if user.ProfileID == nil {
			return "null", true
		}

		return user.ProfileID.String(), true
	})

	t.Run("without cleanup the second user collides", func(t *testing.T) {
		h := newFixtureHarness(t, config.SeedConfig{RandomSeed: 9}, staleProfileIndex)
		h.expectPublish()

		report, err := h.service.Generate(context.Background(), usecase.GenerateOptions{})
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrDuplicateKey)
		assert.Equal(t, entity.RunStatusFailed, report.Run.Status)
		assert.Equal(t, entity.KindUser, report.Run.Kind)
		assert.Equal(t, entity.KindProduct, report.Run.LastCommitted)
	})

	t.Run("configured stale constraint is dropped on reset", func(t *testing.T) {
		h := newFixtureHarness(t, config.SeedConfig{
			RandomSeed:       9,
			StaleConstraints: []config.StaleConstraint{{Kind: "users", Name: "profile_1"}},
		}, staleProfileIndex)
		h.expectPublish()

		report, err := h.service.Generate(context.Background(), usecase.GenerateOptions{})
		require.NoError(t, err)
		assert.Equal(t, entity.RunStatusDone, report.Run.Status)
		assert.Equal(t, int64(8), h.count(t, entity.KindUser))
	})
}

func TestFixtureService_GenerateStopsAtFailingKind(t *testing.T) {
	h := newFixtureHarness(t, config.SeedConfig{RandomSeed: 5})
	h.publisher.EXPECT().
		PublishRunEvent(mock.Anything, mock.MatchedBy(func(e *service.RunEvent) bool {
			return e.Status == string(entity.RunStatusFailed) && e.LastCommitted == "reviews"
		})).
		Return(errors.New("topic unavailable")).
		Once()
	svc := h.build(&failingStore{EntityStore: h.store, kind: entity.KindOrder}, config.SeedConfig{RandomSeed: 5})

	report, err := svc.Generate(context.Background(), usecase.GenerateOptions{})
	require.Error(t, err)

	runErr, ok := errors.AsType[*domainerrors.RunError](err)
	require.True(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	assert.Equal(t, string(entity.StageBuilding), runErr.Stage)
	assert.Equal(t, "orders", runErr.Kind)
	assert.Equal(t, "reviews", runErr.LastCommitted)

	assert.Equal(t, entity.RunStatusFailed, report.Run.Status)
	assert.Equal(t, entity.StageFailed, report.Run.Stage)
	assert.Equal(t, entity.KindReview, report.Run.LastCommitted)
	assert.Contains(t, report.Run.Error, "connection reset by peer")
	assert.Equal(t, int64(20), report.Run.Counts[entity.KindReview])
	assert.Zero(t, report.Run.Counts[entity.KindOrder])
	assert.Zero(t, h.count(t, entity.KindOrder))
}

func TestFixtureService_AtomicRunRollsBack(t *testing.T) {
	staleProfileIndex := memory.WithUniqueConstraint(entity.KindUser, "profile_1", func(rec entity.Record) (string, bool) {
		user, _ := rec.(*entity.User)

		return "null", user.ProfileID == nil
	})
	h := newFixtureHarness(t, config.SeedConfig{RandomSeed: 11}, staleProfileIndex)
	h.expectPublish()
	ctx := context.Background()

	_, err := h.store.Insert(ctx, &entity.Category{Name: "Existing"})
	require.NoError(t, err)

	report, err := h.service.Generate(ctx, usecase.GenerateOptions{Atomic: true})
	require.Error(t, err)

	runErr, ok := errors.AsType[*domainerrors.RunError](err)
	require.True(t, ok)
	assert.Empty(t, runErr.LastCommitted)
	assert.Empty(t, report.Run.LastCommitted)
	assert.Equal(t, entity.RunStatusFailed, report.Run.Status)

	categories, err := repository.FindAllAs[*entity.Category](ctx, h.store, entity.KindCategory)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Existing", categories[0].Name)
	assert.Zero(t, h.count(t, entity.KindProduct))
}

func TestFixtureService_GenerateHonoursCancellation(t *testing.T) {
	h := newFixtureHarness(t, config.SeedConfig{RandomSeed: 2})
	h.expectPublish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := h.service.Generate(ctx, usecase.GenerateOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResetFailure)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, entity.RunStatusFailed, report.Run.Status)
}

func TestFixtureService_Reset(t *testing.T) {
	h := newFixtureHarness(t, config.SeedConfig{RandomSeed: 8})
	h.expectPublish()
	ctx := context.Background()

	report, err := h.service.Reset(ctx)
	require.NoError(t, err)
	for _, kind := range entity.Kinds() {
		assert.Zero(t, report.Removed[kind], kind.String())
	}

	_, err = h.service.Generate(ctx, usecase.GenerateOptions{})
	require.NoError(t, err)

	report, err = h.service.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), report.Removed[entity.KindCategory])
	assert.Equal(t, int64(40), report.Removed[entity.KindTask])
	assert.Empty(t, report.DroppedConstraints)
	for _, kind := range entity.Kinds() {
		assert.Zero(t, h.count(t, kind), kind.String())
	}

	report, err = h.service.Reset(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Removed[entity.KindUser])
}

func TestFixtureService_ResetTwiceThenGenerate(t *testing.T) {
	h := newFixtureHarness(t, config.SeedConfig{RandomSeed: 17})
	h.expectPublish()
	ctx := context.Background()

	_, err := h.service.Generate(ctx, usecase.GenerateOptions{})
	require.NoError(t, err)
	_, err = h.service.Reset(ctx)
	require.NoError(t, err)
	_, err = h.service.Reset(ctx)
	require.NoError(t, err)

	report, err := h.service.Generate(ctx, usecase.GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, entity.RunStatusDone, report.Run.Status)

	want := map[entity.Kind]int64{
		entity.KindCategory: 6,
		entity.KindProduct:  15,
		entity.KindUser:     8,
		entity.KindProfile:  8,
		entity.KindReview:   20,
		entity.KindOrder:    15,
		entity.KindTask:     40,
	}
	for kind, n := range want {
		assert.Equal(t, n, h.count(t, kind), kind.String())
	}
}

func TestFixtureService_RunLedger(t *testing.T) {
	h := newFixtureHarness(t, config.SeedConfig{RandomSeed: 13})
	h.expectPublish()
	ctx := context.Background()

	_, err := h.service.CurrentRun(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrRunNotFound)
	_, err = h.service.LatestRun(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrRunNotFound)

	done, err := h.service.Generate(ctx, usecase.GenerateOptions{})
	require.NoError(t, err)

	failing := h.build(&failingStore{EntityStore: h.store, kind: entity.KindTask}, config.SeedConfig{RandomSeed: 13})
	failed, err := failing.Generate(ctx, usecase.GenerateOptions{})
	require.Error(t, err)

	latest, err := h.service.LatestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, failed.Run.ID, latest.ID)
	assert.Equal(t, entity.RunStatusFailed, latest.Status)
	assert.Equal(t, entity.KindOrderItem, latest.LastCommitted)

	current, err := h.service.CurrentRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, done.Run.ID, current.ID)
}
