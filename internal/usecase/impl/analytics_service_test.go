package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type analyticsFixture struct {
	store      *memory.Store
	faceCare   *entity.Category
	makeup     *entity.Category
	cleanser   *entity.Product
	serum      *entity.Product
	lipBalm    *entity.Product
	alice      *entity.User
	bob        *entity.User
	carol      *entity.User
	aliceOrder *entity.Order
}

func newAnalyticsFixture(t *testing.T) *analyticsFixture {
	t.Helper()

	ctx := context.Background()
	store := memory.NewStore(auth.NewBcryptHasherWithCost(bcrypt.MinCost))
	insert := func(rec entity.Record) {
		t.Helper()
		_, err := store.Insert(ctx, rec)
		require.NoError(t, err)
	}
	f := &analyticsFixture{store: store}

	f.faceCare = &entity.Category{Name: "Face Care"}
	f.makeup = &entity.Category{Name: "Makeup"}
	insert(f.faceCare)
	insert(f.makeup)

	f.cleanser = &entity.Product{Name: "Gentle Cleanser", Price: decimal.RequireFromString("10.00"), CategoryIDs: []uuid.UUID{f.faceCare.ID}}
	f.serum = &entity.Product{Name: "Glow Serum", Price: decimal.RequireFromString("20.50"), CategoryIDs: []uuid.UUID{f.faceCare.ID, f.makeup.ID}}
	f.lipBalm = &entity.Product{Name: "Lip Balm", Price: decimal.RequireFromString("5.25"), CategoryIDs: []uuid.UUID{f.makeup.ID}}
	insert(f.cleanser)
	insert(f.serum)
	insert(f.lipBalm)

	newUser := func(name string, created time.Time) *entity.User {
		user := &entity.User{Username: name, Email: name + "@email.com", Password: "password123", Role: entity.RoleCustomer}
		user.CreatedAt = created
		insert(user)

		return user
	}
	f.alice = newUser("alice_martin", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	f.bob = newUser("bob_dupont", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	f.carol = newUser("carol_leroy", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	profile := &entity.Profile{UserID: f.alice.ID}
	insert(profile)
	f.alice.ProfileID = &profile.ID
	require.NoError(t, store.Update(ctx, f.alice, entity.FieldProfile))

	newOrder := func(user *entity.User, total string, created time.Time) *entity.Order {
		order := &entity.Order{UserID: user.ID, TotalPrice: decimal.RequireFromString(total), Status: entity.OrderStatusPending, PaymentMethod: entity.PaymentPayPal}
		order.CreatedAt = created
		insert(order)

		return order
	}
	f.aliceOrder = newOrder(f.alice, "40.50", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	second := newOrder(f.alice, "15.75", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
	bobOrder := newOrder(f.bob, "10.00", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))

	newItem := func(order *entity.Order, product *entity.Product, qty int) {
		insert(&entity.OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: qty, Price: product.Price})
	}
	newItem(f.aliceOrder, f.cleanser, 2)
	newItem(f.aliceOrder, f.serum, 1)
	newItem(second, f.lipBalm, 3)
	newItem(bobOrder, f.cleanser, 1)

	for _, rating := range []int{5, 4, 4} {
		insert(&entity.Review{UserID: f.bob.ID, ProductID: f.serum.ID, Rating: rating})
	}

	return f
}

func newTestAnalyticsService(store *memory.Store) usecase.AnalyticsUsecase {
	return NewAnalyticsService(AnalyticsServiceParams{Store: store, Logger: newDiscardLogger()})
}

func TestAnalyticsService_GlobalStats(t *testing.T) {
	f := newAnalyticsFixture(t)

	stats, err := newTestAnalyticsService(f.store).GlobalStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, int64(3), stats.TotalProducts)
	assert.Equal(t, "66.25", stats.TotalRevenue.StringFixed(2))
	assert.InDelta(t, 4.33, stats.AverageRating, 0.001)
	assert.InDelta(t, 66.67, stats.ConversionRate, 0.001)

	require.Len(t, stats.BestSellers, 3)
	assert.Equal(t, f.cleanser.ID, stats.BestSellers[0].ProductID)
	assert.Equal(t, 3, stats.BestSellers[0].Quantity)
	assert.Equal(t, "30.00", stats.BestSellers[0].Revenue.StringFixed(2))
	assert.Equal(t, "Lip Balm", stats.BestSellers[1].Name)
	assert.Equal(t, "15.75", stats.BestSellers[1].Revenue.StringFixed(2))
	assert.Equal(t, f.serum.ID, stats.BestSellers[2].ProductID)
}

func TestAnalyticsService_GlobalStatsOnEmptyStore(t *testing.T) {
	store := memory.NewStore(auth.NewBcryptHasherWithCost(bcrypt.MinCost))

	stats, err := newTestAnalyticsService(store).GlobalStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalUsers)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.Zero(t, stats.AverageRating)
	assert.Zero(t, stats.ConversionRate)
	assert.Empty(t, stats.BestSellers)
}

func TestAnalyticsService_MonthlyStats(t *testing.T) {
	f := newAnalyticsFixture(t)

	stats, err := newTestAnalyticsService(f.store).MonthlyStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats, 2)
	assert.Equal(t, 2024, stats[0].Year)
	assert.Equal(t, time.January, stats[0].Month)
	assert.Equal(t, int64(2), stats[0].Orders)
	assert.Equal(t, "50.50", stats[0].Revenue.StringFixed(2))
	assert.Equal(t, time.March, stats[1].Month)
	assert.Equal(t, int64(1), stats[1].Orders)
	assert.Equal(t, "15.75", stats[1].Revenue.StringFixed(2))
}

func TestAnalyticsService_CategoryStats(t *testing.T) {
	f := newAnalyticsFixture(t)

	stats, err := newTestAnalyticsService(f.store).CategoryStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats, 2)
	assert.Equal(t, f.faceCare.ID, stats[0].CategoryID)
	assert.Equal(t, 2, stats[0].ProductCount)
	assert.Equal(t, "15.25", stats[0].AveragePrice.StringFixed(2))
	assert.Equal(t, "10.00", stats[0].MinPrice.StringFixed(2))
	assert.Equal(t, "20.50", stats[0].MaxPrice.StringFixed(2))

	assert.Equal(t, "Makeup", stats[1].Name)
	assert.Equal(t, "12.88", stats[1].AveragePrice.StringFixed(2))
	assert.Equal(t, "5.25", stats[1].MinPrice.StringFixed(2))
}

func TestAnalyticsService_UserStats(t *testing.T) {
	f := newAnalyticsFixture(t)

	stats, err := newTestAnalyticsService(f.store).UserStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, []uuid.UUID{f.alice.ID, f.bob.ID}, stats.ActiveUsers)
	assert.Equal(t, int64(1), stats.UsersWithProfile)
	require.Len(t, stats.RecentUsers, 3)
	assert.Equal(t, "carol_leroy", stats.RecentUsers[0].Username)
	assert.Equal(t, "alice_martin", stats.RecentUsers[2].Username)
}
