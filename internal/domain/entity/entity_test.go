package entity_test

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds_DependencyOrder(t *testing.T) {
	kinds := entity.Kinds()
	require.Len(t, kinds, 8)

	for _, kind := range kinds {
		rec, ok := entity.NewRecord(kind)
		require.True(t, ok, kind)
		for _, ref := range rec.References() {
			assert.Less(t, ref.Kind.Rank(), kind.Rank(), "%s references %s", kind, ref.Kind)
		}
	}

	// mutating the returned slice must not change the order
	kinds[0] = entity.KindTask
	assert.Equal(t, entity.KindCategory, entity.Kinds()[0])
}

func TestReferences_ResolveForwardKinds(t *testing.T) {
	product := &entity.Product{CategoryIDs: []uuid.UUID{uuid.New(), uuid.New()}}
	item := &entity.OrderItem{OrderID: uuid.New(), ProductID: uuid.New()}
	profile := &entity.Profile{UserID: uuid.New(), Preferences: entity.Preferences{FavoriteCategories: []uuid.UUID{uuid.New()}}}

	for _, rec := range []entity.Record{product, item, profile} {
		for _, ref := range rec.References() {
			assert.Less(t, ref.Kind.Rank(), rec.Kind().Rank())
		}
	}
	assert.Len(t, product.References(), 2)
	assert.Len(t, item.References(), 2)
	assert.Len(t, profile.References(), 2)
}

func TestParseKind(t *testing.T) {
	kind, ok := entity.ParseKind("order_items")
	assert.True(t, ok)
	assert.Equal(t, entity.KindOrderItem, kind)

	_, ok = entity.ParseKind("invoices")
	assert.False(t, ok)
}

func TestBase_StampKeepsPresetCreatedAt(t *testing.T) {
	preset := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	order := &entity.Order{}
	order.CreatedAt = preset

	id := uuid.New()
	order.Stamp(id, now)

	assert.Equal(t, id, order.Identity())
	assert.Equal(t, preset, order.CreatedAt)
	assert.Equal(t, now, order.UpdatedAt)
}

func TestClone_IsDeep(t *testing.T) {
	profileID := uuid.New()
	user := &entity.User{ProfileID: &profileID, OrderIDs: []uuid.UUID{uuid.New()}}

	cp, ok := user.Clone().(*entity.User)
	require.True(t, ok)
	cp.OrderIDs[0] = uuid.Nil
	*cp.ProfileID = uuid.Nil

	assert.NotEqual(t, uuid.Nil, user.OrderIDs[0])
	assert.Equal(t, profileID, *user.ProfileID)
}

func TestCopyField(t *testing.T) {
	dst := &entity.Order{Status: entity.OrderStatusPending}
	src := &entity.Order{
		ItemIDs:    []uuid.UUID{uuid.New()},
		TotalPrice: decimal.RequireFromString("12.50"),
		Status:     entity.OrderStatusShipped,
	}

	require.NoError(t, entity.CopyField(dst, src, entity.FieldItems))
	require.NoError(t, entity.CopyField(dst, src, entity.FieldTotalPrice))

	assert.Equal(t, src.ItemIDs, dst.ItemIDs)
	assert.True(t, src.TotalPrice.Equal(dst.TotalPrice))
	assert.Equal(t, entity.OrderStatusPending, dst.Status, "fields outside the patch stay untouched")

	err := entity.CopyField(dst, src, entity.FieldReviews)
	assert.ErrorIs(t, err, entity.ErrFieldNotUpdatable)

	err = entity.CopyField(&entity.User{}, src, entity.FieldOrders)
	assert.ErrorIs(t, err, entity.ErrFieldNotUpdatable)
}

func TestItemsTotal_UsesOwnItemsOnly(t *testing.T) {
	orderID := uuid.New()
	items := []*entity.OrderItem{
		{OrderID: orderID, Quantity: 3, Price: decimal.RequireFromString("0.10")},
		{OrderID: orderID, Quantity: 1, Price: decimal.RequireFromString("45.99")},
		{OrderID: uuid.New(), Quantity: 2, Price: decimal.RequireFromString("100")},
	}

	assert.Equal(t, "46.29", entity.ItemsTotal(orderID, items).StringFixed(2))
	assert.True(t, entity.ItemsTotal(uuid.New(), items).IsZero())
}

func TestValidate(t *testing.T) {
	completedAt := time.Now()

	tests := []struct {
		name    string
		rec     entity.Record
		wantErr bool
	}{
		{
			name: "valid product",
			rec: &entity.Product{
				Name: "Vitamin C Serum", Price: decimal.RequireFromString("45.99"), Stock: 50, Rating: 4.5,
				CategoryIDs: []uuid.UUID{uuid.New()},
			},
		},
		{
			name:    "product without categories",
			rec:     &entity.Product{Name: "Serum", Price: decimal.RequireFromString("1")},
			wantErr: true,
		},
		{
			name:    "product with zero price",
			rec:     &entity.Product{Name: "Serum", Price: decimal.Zero, CategoryIDs: []uuid.UUID{uuid.New()}},
			wantErr: true,
		},
		{
			name:    "review rating out of range",
			rec:     &entity.Review{UserID: uuid.New(), ProductID: uuid.New(), Rating: 6},
			wantErr: true,
		},
		{
			name:    "order item without quantity",
			rec:     &entity.OrderItem{OrderID: uuid.New(), ProductID: uuid.New(), Price: decimal.RequireFromString("3")},
			wantErr: true,
		},
		{
			name:    "review without user",
			rec:     &entity.Review{ProductID: uuid.New(), Rating: 4},
			wantErr: true,
		},
		{
			name: "completed task with timestamp",
			rec:  &entity.Task{UserID: uuid.New(), Title: "Morning routine", Status: entity.TaskStatusCompleted, CompletedAt: &completedAt},
		},
		{
			name:    "completed task without timestamp",
			rec:     &entity.Task{UserID: uuid.New(), Title: "Morning routine", Status: entity.TaskStatusCompleted},
			wantErr: true,
		},
		{
			name:    "pending task with timestamp",
			rec:     &entity.Task{UserID: uuid.New(), Title: "Morning routine", Status: entity.TaskStatusPending, CompletedAt: &completedAt},
			wantErr: true,
		},
		{
			name: "user with plain password",
			rec:  &entity.User{Username: "alice_martin", Email: "alice.martin@email.com", Password: "password123", Role: entity.RoleCustomer},
		},
		{
			name:    "user without credential",
			rec:     &entity.User{Username: "alice_martin", Email: "alice.martin@email.com", Role: entity.RoleCustomer},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.Validate(tt.rec)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTask_Complete(t *testing.T) {
	task := &entity.Task{Status: entity.TaskStatusPending}
	assert.True(t, task.Consistent())

	at := time.Now()
	task.Complete(at)
	assert.Equal(t, entity.TaskStatusCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)
	assert.True(t, task.Consistent())
}
