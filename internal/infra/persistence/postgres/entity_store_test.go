package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared&_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))

	return db
}

func newTestStore(t *testing.T) (*gorm.DB, repository.EntityStore) {
	t.Helper()

	db := newTestDB(t)

	return db, NewEntityStore(db, auth.NewBcryptHasherWithCost(bcrypt.MinCost))
}

type seeded struct {
	category *entity.Category
	product  *entity.Product
	user     *entity.User
}

func seedBasics(t *testing.T, store repository.EntityStore) seeded {
	t.Helper()
	ctx := context.Background()

	category := &entity.Category{Name: "Makeup"}
	_, err := store.Insert(ctx, category)
	require.NoError(t, err)

	product := &entity.Product{
		Name:        "Mascara",
		Price:       decimal.RequireFromString("18.90"),
		Stock:       40,
		CategoryIDs: []uuid.UUID{category.ID},
	}
	_, err = store.Insert(ctx, product)
	require.NoError(t, err)

	user := &entity.User{
		Username: "alice_martin",
		Email:    "alice.martin@email.com",
		Password: "password123",
		Role:     entity.RoleCustomer,
	}
	_, err = store.Insert(ctx, user)
	require.NoError(t, err)

	return seeded{category: category, product: product, user: user}
}

func TestEntityStore_InsertAndFind(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()
	s := seedBasics(t, store)

	rec, err := store.FindByID(ctx, entity.KindProduct, s.product.ID)
	require.NoError(t, err)
	product := rec.(*entity.Product)
	assert.Equal(t, "Mascara", product.Name)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("18.90")))
	assert.Equal(t, []uuid.UUID{s.category.ID}, product.CategoryIDs)

	rec, err = store.FindByID(ctx, entity.KindUser, s.user.ID)
	require.NoError(t, err)
	user := rec.(*entity.User)
	assert.Empty(t, user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))

	_, err = store.FindByID(ctx, entity.KindUser, uuid.New())
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestEntityStore_ProfileRoundTrip(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()
	s := seedBasics(t, store)

	dob := time.Date(1991, 2, 4, 0, 0, 0, 0, time.UTC)
	profile := &entity.Profile{
		UserID:        s.user.ID,
		FirstName:     "Alice",
		DateOfBirth:   dob,
		Gender:        entity.GenderFemale,
		LoyaltyPoints: 120,
		Preferences: entity.Preferences{
			SkinType:           "dry",
			Concerns:           []string{"acne"},
			FavoriteCategories: []uuid.UUID{s.category.ID},
		},
	}
	_, err := store.Insert(ctx, profile)
	require.NoError(t, err)

	rec, err := store.FindByID(ctx, entity.KindProfile, profile.ID)
	require.NoError(t, err)
	got := rec.(*entity.Profile)
	assert.True(t, got.DateOfBirth.Equal(dob))
	assert.Equal(t, profile.Preferences, got.Preferences)
}

func TestEntityStore_InsertRejectsDanglingReferences(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, &entity.Product{
		Name:        "Orphan",
		Price:       decimal.RequireFromString("1"),
		CategoryIDs: []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, repository.ErrDanglingReference)

	_, err = store.Insert(ctx, &entity.Review{UserID: uuid.New(), ProductID: uuid.New(), Rating: 4})
	assert.ErrorIs(t, err, repository.ErrDanglingReference)
}

func TestEntityStore_DuplicateKey(t *testing.T) {
	_, store := newTestStore(t)
	seedBasics(t, store)

	_, err := store.Insert(context.Background(), &entity.Category{Name: "Makeup"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestEntityStore_UpdateWritesNamedColumns(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()
	s := seedBasics(t, store)

	order := &entity.Order{
		UserID:        s.user.ID,
		Status:        entity.OrderStatusPending,
		PaymentMethod: entity.PaymentPayPal,
	}
	_, err := store.Insert(ctx, order)
	require.NoError(t, err)

	item := &entity.OrderItem{OrderID: order.ID, ProductID: s.product.ID, Quantity: 2, Price: s.product.Price}
	_, err = store.Insert(ctx, item)
	require.NoError(t, err)

	patch := &entity.Order{
		ItemIDs:    []uuid.UUID{item.ID},
		TotalPrice: item.Subtotal(),
		Status:     entity.OrderStatusCancelled,
	}
	patch.ID = order.ID
	require.NoError(t, store.Update(ctx, patch, entity.FieldItems, entity.FieldTotalPrice))

	rec, err := store.FindByID(ctx, entity.KindOrder, order.ID)
	require.NoError(t, err)
	got := rec.(*entity.Order)
	assert.Equal(t, []uuid.UUID{item.ID}, got.ItemIDs)
	assert.True(t, got.TotalPrice.Equal(decimal.RequireFromString("37.80")))
	assert.Equal(t, entity.OrderStatusPending, got.Status)

	patch.ItemIDs = []uuid.UUID{uuid.New()}
	assert.ErrorIs(t, store.Update(ctx, patch, entity.FieldItems), repository.ErrDanglingReference)
}

func TestEntityStore_DeleteAllRespectsForeignKeys(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()
	s := seedBasics(t, store)

	_, err := store.Insert(ctx, &entity.Review{UserID: s.user.ID, ProductID: s.product.ID, Rating: 5})
	require.NoError(t, err)

	_, err = store.DeleteAll(ctx, entity.KindUser)
	assert.ErrorIs(t, err, repository.ErrDanglingReference)

	removed, err := store.DeleteAll(ctx, entity.KindReview)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = store.DeleteAll(ctx, entity.KindUser)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	count, err := store.Count(ctx, entity.KindUser)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEntityStore_DropStaleConstraint(t *testing.T) {
	db, store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, db.Exec("CREATE UNIQUE INDEX profile_1 ON users (role)").Error)

	seedBasics(t, store)
	_, err := store.Insert(ctx, &entity.User{Username: "bob", Email: "bob@email.com", Password: "x", Role: entity.RoleCustomer})
	require.ErrorIs(t, err, repository.ErrDuplicateKey)

	require.NoError(t, store.DropConstraint(ctx, entity.KindUser, "profile_1"))
	_, err = store.Insert(ctx, &entity.User{Username: "bob", Email: "bob@email.com", Password: "x", Role: entity.RoleCustomer})
	require.NoError(t, err)

	err = store.DropConstraint(ctx, entity.KindUser, "profile_1")
	assert.ErrorIs(t, err, repository.ErrConstraintNotFound)
}

func TestEntityStore_FindAllInInsertionOrder(t *testing.T) {
	_, store := newTestStore(t)
	ctx := context.Background()

	names := []string{"Skin Care", "Hair Care", "Fragrance", "Body Care"}
	for _, name := range names {
		_, err := store.Insert(ctx, &entity.Category{Name: name})
		require.NoError(t, err)
	}

	categories, err := repository.FindAllAs[*entity.Category](ctx, store, entity.KindCategory)
	require.NoError(t, err)
	require.Len(t, categories, len(names))
	for i, c := range categories {
		assert.Equal(t, names[i], c.Name)
	}
}

func TestTransactionManager_RollsBack(t *testing.T) {
	db, store := newTestStore(t)
	ctx := context.Background()
	tm := NewTransactionManager(db, auth.NewBcryptHasherWithCost(bcrypt.MinCost))

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewEntityStore().Insert(ctx, &entity.Category{Name: "Discarded"}); err != nil {
			return err
		}

		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	count, err := store.Count(ctx, entity.KindCategory)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRunRepository_Ledger(t *testing.T) {
	db := newTestDB(t)
	repo := NewRunRepository(db)
	ctx := context.Background()

	_, err := repo.Latest(ctx)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	started := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	done := &entity.Run{ID: uuid.New(), Status: entity.RunStatusRunning, Stage: entity.StageBuilding, Seed: ^uint64(0), StartedAt: started}
	require.NoError(t, repo.Create(ctx, done))
	done.Counts = map[entity.Kind]int64{entity.KindUser: 8}
	done.Finish(entity.RunStatusDone, started.Add(time.Second))
	require.NoError(t, repo.Update(ctx, done))

	failed := &entity.Run{ID: uuid.New(), Status: entity.RunStatusRunning, Stage: entity.StageBuilding, StartedAt: started.Add(time.Minute)}
	require.NoError(t, repo.Create(ctx, failed))
	failed.LastCommitted = entity.KindUser
	failed.Finish(entity.RunStatusFailed, started.Add(2*time.Minute))
	require.NoError(t, repo.Update(ctx, failed))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, failed.ID, latest.ID)
	assert.Equal(t, entity.KindUser, latest.LastCommitted)

	current, err := repo.LatestSucceeded(ctx)
	require.NoError(t, err)
	assert.Equal(t, done.ID, current.ID)
	assert.Equal(t, ^uint64(0), current.Seed)
	assert.Equal(t, int64(8), current.Counts[entity.KindUser])
}
