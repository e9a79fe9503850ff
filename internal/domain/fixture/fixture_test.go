package fixture_test

import (
	"path/filepath"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/fixture"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw_DeterministicForSeed(t *testing.T) {
	first := fixture.NewDraw(42)
	second := fixture.NewDraw(42)

	for range 50 {
		assert.Equal(t, first.Between(0, 1000), second.Between(0, 1000))
	}
	assert.Equal(t, uint64(42), first.Seed())
}

func TestDraw_ZeroSeedIsReplaced(t *testing.T) {
	assert.NotZero(t, fixture.NewDraw(0).Seed())
}

func TestDraw_BoundsAreClosed(t *testing.T) {
	draw := fixture.NewDraw(7)
	seen := map[string]map[int]bool{"rating": {}, "quantity": {}, "items": {}}

	for range 2000 {
		rating := draw.Rating()
		quantity := draw.Quantity()
		items := draw.ItemCount()
		loyalty := draw.Loyalty()

		require.GreaterOrEqual(t, rating, fixture.RatingMin)
		require.LessOrEqual(t, rating, fixture.RatingMax)
		require.GreaterOrEqual(t, quantity, fixture.QuantityMin)
		require.LessOrEqual(t, quantity, fixture.QuantityMax)
		require.GreaterOrEqual(t, items, fixture.ItemsMin)
		require.LessOrEqual(t, items, fixture.ItemsMax)
		require.GreaterOrEqual(t, loyalty, fixture.LoyaltyMin)
		require.LessOrEqual(t, loyalty, fixture.LoyaltyMax)

		seen["rating"][rating] = true
		seen["quantity"][quantity] = true
		seen["items"][items] = true
	}

	// every endpoint is reachable
	assert.Len(t, seen["rating"], fixture.RatingMax-fixture.RatingMin+1)
	assert.Len(t, seen["quantity"], fixture.QuantityMax-fixture.QuantityMin+1)
	assert.Len(t, seen["items"], fixture.ItemsMax-fixture.ItemsMin+1)
}

func TestDraw_BetweenDegenerate(t *testing.T) {
	draw := fixture.NewDraw(1)
	assert.Equal(t, 5, draw.Between(5, 3))
	assert.Equal(t, 4, draw.Between(4, 4))
}

func TestCycleHelpers(t *testing.T) {
	table := []string{"a", "b", "c"}

	assert.Equal(t, "a", fixture.Pick(table, 0))
	assert.Equal(t, "c", fixture.Pick(table, 5))
	assert.Equal(t, 0, fixture.Cycle(3, 0))

	assert.Equal(t, "Makeup", fixture.UniqueName("Makeup", 1, 6))
	assert.Equal(t, "Makeup-2", fixture.UniqueName("Makeup", 7, 6))
	assert.Equal(t, "Makeup-3", fixture.UniqueName("Makeup", 13, 6))

	assert.Equal(t, "alice.martin@email.com", fixture.UniqueEmail("alice.martin@email.com", 0, 8))
	assert.Equal(t, "alice.martin+2@email.com", fixture.UniqueEmail("alice.martin@email.com", 8, 8))

	first, last := fixture.SplitUsername("gabrielle_simon")
	assert.Equal(t, "gabrielle", first)
	assert.Equal(t, "simon", last)
}

func TestDefaultCatalog(t *testing.T) {
	catalog := fixture.DefaultCatalog()
	require.NoError(t, catalog.Validate())

	assert.Len(t, catalog.Categories, 6)
	assert.Len(t, catalog.Products, 15)
	assert.Len(t, catalog.Users, 8)
	assert.Len(t, catalog.Tasks, 5)

	plan := fixture.DefaultPlan(catalog)
	tasks, ok := plan.Expected(entity.KindTask, catalog)
	assert.True(t, ok)
	assert.Equal(t, 40, tasks)

	_, ok = plan.Expected(entity.KindOrderItem, catalog)
	assert.False(t, ok)
}

func TestCatalog_ValidateRejectsEmptyTables(t *testing.T) {
	catalog := fixture.DefaultCatalog()
	catalog.ReviewComments = nil

	assert.ErrorIs(t, catalog.Validate(), fixture.ErrEmptyTable)

	catalog = fixture.DefaultCatalog()
	catalog.Products[0].Price = decimal.Zero
	assert.Error(t, catalog.Validate())
}

func TestLoadCatalog_OverridesTables(t *testing.T) {
	catalog, err := fixture.LoadCatalog(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)

	require.Len(t, catalog.Categories, 2)
	assert.Equal(t, "Tools", catalog.Categories[1].Name)

	require.Len(t, catalog.Products, 2)
	assert.Equal(t, "24.9", catalog.Products[0].Price.String())
	assert.Equal(t, "6.5", catalog.Products[1].Price.String())
	assert.Equal(t, []string{"Works well"}, catalog.ReviewComments)

	// tables absent from the file keep their defaults
	assert.Len(t, catalog.Users, 8)
	assert.Len(t, catalog.Tasks, 5)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := fixture.LoadCatalog(filepath.Join("testdata", "absent.yaml"))
	assert.Error(t, err)
}

// commitAll plans kind, assigns identifiers the way a store would and commits it.
func commitAll(t *testing.T, gen *fixture.Generator, graph *fixture.Graph, kind entity.Kind) []entity.Record {
	t.Helper()

	recs, err := gen.Build(kind, graph)
	require.NoError(t, err)
	for _, rec := range recs {
		require.NoError(t, graph.Resolve(rec), "%s references must resolve", kind)
		rec.Stamp(uuid.New(), time.Now())
	}
	graph.Commit(kind, recs)

	return recs
}

func TestGenerator_DefaultDatasetShape(t *testing.T) {
	completedAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	catalog := fixture.DefaultCatalog()
	gen := fixture.NewGenerator(catalog, fixture.Plan{}, fixture.NewDraw(99), func() time.Time { return completedAt })
	graph := fixture.NewGraph()

	counts := map[entity.Kind]int{}
	for _, kind := range entity.Kinds() {
		counts[kind] = len(commitAll(t, gen, graph, kind))
	}

	assert.Equal(t, 6, counts[entity.KindCategory])
	assert.Equal(t, 15, counts[entity.KindProduct])
	assert.Equal(t, 8, counts[entity.KindUser])
	assert.Equal(t, 8, counts[entity.KindProfile])
	assert.Equal(t, 20, counts[entity.KindReview])
	assert.Equal(t, 15, counts[entity.KindOrder])
	assert.Equal(t, 40, counts[entity.KindTask])
	assert.GreaterOrEqual(t, counts[entity.KindOrderItem], 15*fixture.ItemsMin)
	assert.LessOrEqual(t, counts[entity.KindOrderItem], 15*fixture.ItemsMax)

	products := fixture.Of[*entity.Product](graph, entity.KindProduct)
	categories := graph.Records(entity.KindCategory)
	for i, product := range products {
		assert.Equal(t, []uuid.UUID{categories[i%6].Identity()}, product.CategoryIDs)
	}

	items := fixture.Of[*entity.OrderItem](graph, entity.KindOrderItem)
	productByID := map[uuid.UUID]*entity.Product{}
	for _, p := range products {
		productByID[p.ID] = p
	}
	perOrder := map[uuid.UUID]int{}
	for _, item := range items {
		assert.True(t, item.Price.Equal(productByID[item.ProductID].Price), "price is a snapshot of the product price")
		perOrder[item.OrderID]++
	}
	for _, n := range perOrder {
		assert.GreaterOrEqual(t, n, fixture.ItemsMin)
		assert.LessOrEqual(t, n, fixture.ItemsMax)
	}

	for _, task := range fixture.Of[*entity.Task](graph, entity.KindTask) {
		assert.True(t, task.Consistent())
		assert.Equal(t, task.Rewards.Points/10, task.Rewards.DiscountPoints)
		if task.CompletedAt != nil {
			assert.Equal(t, completedAt, *task.CompletedAt)
		}
	}

	orders := fixture.Of[*entity.Order](graph, entity.KindOrder)
	assert.Equal(t, time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC), orders[1].CreatedAt)
	assert.False(t, orders[0].IsPaid)
	assert.True(t, orders[1].IsPaid)
	assert.Equal(t, entity.OrderStatusShipped, orders[2].Status)
	assert.Equal(t, entity.PaymentBankTransfer, orders[2].PaymentMethod)
}

func TestGenerator_SameSeedSameDataset(t *testing.T) {
	build := func() []int {
		gen := fixture.NewGenerator(fixture.DefaultCatalog(), fixture.Plan{}, fixture.NewDraw(1234), nil)
		graph := fixture.NewGraph()
		for _, kind := range entity.Kinds()[:6] {
			commitAll(t, gen, graph, kind)
		}
		items, err := gen.Build(entity.KindOrderItem, graph)
		require.NoError(t, err)

		quantities := make([]int, 0, len(items))
		for _, rec := range items {
			item, ok := rec.(*entity.OrderItem)
			require.True(t, ok)
			quantities = append(quantities, item.Quantity)
		}

		return quantities
	}

	assert.Equal(t, build(), build())
}

func TestGenerator_CyclesPastTemplates(t *testing.T) {
	plan := fixture.Plan{Categories: 8, Users: 10}
	gen := fixture.NewGenerator(fixture.DefaultCatalog(), plan, fixture.NewDraw(5), nil)
	graph := fixture.NewGraph()

	categories := commitAll(t, gen, graph, entity.KindCategory)
	users := commitAll(t, gen, graph, entity.KindUser)

	require.Len(t, categories, 8)
	cat, ok := categories[6].(*entity.Category)
	require.True(t, ok)
	assert.Equal(t, "Face Care-2", cat.Name)

	require.Len(t, users, 10)
	user, ok := users[9].(*entity.User)
	require.True(t, ok)
	assert.Equal(t, "bob_dupont-2", user.Username)
	assert.Equal(t, "bob.dupont+2@email.com", user.Email)
}

func TestGenerator_MissingDependency(t *testing.T) {
	gen := fixture.NewGenerator(fixture.DefaultCatalog(), fixture.Plan{}, fixture.NewDraw(5), nil)

	_, err := gen.Build(entity.KindProduct, fixture.NewGraph())
	assert.ErrorIs(t, err, fixture.ErrMissingDependency)
}

func TestGraph_ResolveRejectsUnknownIDs(t *testing.T) {
	graph := fixture.NewGraph()
	review := &entity.Review{UserID: uuid.New(), ProductID: uuid.New(), Rating: 4}

	assert.ErrorIs(t, graph.Resolve(review), fixture.ErrUnresolvedReference)
}
