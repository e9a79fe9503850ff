package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identity and timestamps every stored record shares.
type Base struct {
	ID        uuid.UUID `json:"id"`        // Assigned by the store on insert.
	CreatedAt time.Time `json:"createdAt"` // Kept when preset by the generator, otherwise set on insert.
	UpdatedAt time.Time `json:"updatedAt"` // Refreshed on every write.
}

// Identity returns the record identifier.
func (b *Base) Identity() uuid.UUID {
	return b.ID
}

// Stamp assigns the identifier and insert timestamps.
func (b *Base) Stamp(id uuid.UUID, at time.Time) {
	b.ID = id
	if b.CreatedAt.IsZero() {
		b.CreatedAt = at
	}
	b.UpdatedAt = at
}

// Touch refreshes the update timestamp.
func (b *Base) Touch(at time.Time) {
	b.UpdatedAt = at
}

// Reference is one outgoing foreign reference of a record.
type Reference struct {
	Field string
	Kind  Kind
	ID    uuid.UUID
}

// Record is implemented by every managed entity.
type Record interface {
	Kind() Kind
	Identity() uuid.UUID
	Stamp(id uuid.UUID, at time.Time)
	Touch(at time.Time)
	// References lists forward references that must resolve to existing records.
	// Back-reference collections are not included.
	References() []Reference
	Clone() Record
}

// NewRecord returns an empty record of the given kind.
func NewRecord(kind Kind) (Record, bool) {
	switch kind {
	case KindCategory:
		return &Category{}, true
	case KindProduct:
		return &Product{}, true
	case KindUser:
		return &User{}, true
	case KindProfile:
		return &Profile{}, true
	case KindReview:
		return &Review{}, true
	case KindOrder:
		return &Order{}, true
	case KindOrderItem:
		return &OrderItem{}, true
	case KindTask:
		return &Task{}, true
	default:
		return nil, false
	}
}

func cloneIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return nil
	}
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)

	return out
}

func refs(field string, kind Kind, ids ...uuid.UUID) []Reference {
	out := make([]Reference, 0, len(ids))
	for _, id := range ids {
		out = append(out, Reference{Field: field, Kind: kind, ID: id})
	}

	return out
}
