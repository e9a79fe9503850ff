package mongo

import (
	"reflect"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDocumentRoundTrip(t *testing.T) {
	at := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	profileID := uuid.New()

	records := []entity.Record{
		&entity.Category{
			Base: entity.Base{ID: uuid.New(), CreatedAt: at, UpdatedAt: at},
			Name: "Makeup",
		},
		&entity.Product{
			Base:        entity.Base{ID: uuid.New(), CreatedAt: at, UpdatedAt: at},
			Name:        "Hydrating Serum",
			Price:       decimal.RequireFromString("29.90"),
			Stock:       12,
			CategoryIDs: []uuid.UUID{uuid.New()},
			ReviewIDs:   []uuid.UUID{uuid.New(), uuid.New()},
		},
		&entity.User{
			Base:         entity.Base{ID: uuid.New(), CreatedAt: at, UpdatedAt: at},
			Username:     "alice_martin",
			Email:        "alice.martin@email.com",
			PasswordHash: "hash",
			Role:         entity.RoleAdmin,
			ProfileID:    &profileID,
		},
		&entity.Order{
			Base:          entity.Base{ID: uuid.New(), CreatedAt: at, UpdatedAt: at},
			UserID:        uuid.New(),
			ItemIDs:       []uuid.UUID{uuid.New()},
			TotalPrice:    decimal.RequireFromString("59.80"),
			Status:        entity.OrderStatusShipped,
			PaymentMethod: entity.PaymentCreditCard,
			IsPaid:        true,
		},
	}

	for _, rec := range records {
		t.Run(rec.Kind().String(), func(t *testing.T) {
			doc, err := toDocument(rec)
			require.NoError(t, err)

			raw, err := bson.Marshal(doc)
			require.NoError(t, err)

			id, err := bson.Raw(raw).LookupErr("_id")
			require.NoError(t, err)
			assert.Equal(t, rec.Identity().String(), id.StringValue())
			createdAt, err := bson.Raw(raw).LookupErr("createdAt")
			require.NoError(t, err)
			assert.True(t, at.Equal(createdAt.Time()))

			decoded, err := newDocument(rec.Kind())
			require.NoError(t, err)
			require.NoError(t, bson.Unmarshal(raw, decoded))

			got, err := fromDocument(decoded)
			require.NoError(t, err)
			assert.Equal(t, rec.Identity(), got.Identity())
			assert.Equal(t, baseOf(rec), baseOf(got))
			assert.Equal(t, entity.BackReferences(rec), entity.BackReferences(got))
			assert.Equal(t, rec.References(), got.References())
		})
	}
}

func baseOf(rec entity.Record) entity.Base {
	return reflect.ValueOf(rec).Elem().FieldByName("Base").Interface().(entity.Base)
}

func TestDocumentKeysMatchUpdatableFields(t *testing.T) {
	for _, kind := range entity.Kinds() {
		fields := entity.UpdatableFields(kind)
		if len(fields) == 0 {
			continue
		}

		rec, ok := entity.NewRecord(kind)
		require.True(t, ok)
		doc, err := toDocument(rec)
		require.NoError(t, err)
		raw, err := bson.Marshal(doc)
		require.NoError(t, err)

		var m bson.M
		require.NoError(t, bson.Unmarshal(raw, &m))
		for _, field := range fields {
			assert.Contains(t, m, string(field), "%s.%s", kind, field)
		}
	}
}

func TestDecimalConversion(t *testing.T) {
	d128, err := toDecimal128(decimal.RequireFromString("104.97"))
	require.NoError(t, err)

	p := &idParser{}
	assert.True(t, p.decimal(d128).Equal(decimal.RequireFromString("104.97")))
	assert.NoError(t, p.err)

	p.one("not-a-uuid")
	assert.Error(t, p.err)
}

func TestRunDocRoundTrip(t *testing.T) {
	run := &entity.Run{
		ID:     uuid.New(),
		Status: entity.RunStatusDone,
		Stage:  entity.StageDone,
		Counts: map[entity.Kind]int64{entity.KindTask: 40},
		Seed:   ^uint64(0) - 1,
	}

	got, err := fromRunDoc(toRunDoc(run))
	require.NoError(t, err)
	assert.Equal(t, run.Seed, got.Seed)
	assert.Equal(t, run.Counts, got.Counts)
}
