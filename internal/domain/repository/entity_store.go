// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrRecordNotFound is returned when a record does not exist.
	ErrRecordNotFound = errors.New("record not found")

	// ErrConstraintNotFound is returned by DropConstraint when the constraint is absent.
	// Callers resetting a store treat it as success.
	ErrConstraintNotFound = errors.New("constraint not found")

	// ErrDuplicateKey is returned when a write violates a uniqueness constraint.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrDanglingReference is returned when a record references an identifier that does not exist.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrUnknownKind is returned for kinds the store does not manage.
	ErrUnknownKind = errors.New("unknown kind")
)

// EntityStore is keyed storage for every managed entity kind.
type EntityStore interface {
	// Insert assigns an identifier to rec, stamps it and persists it.
	// The returned identifier may be used as a foreign key once Insert returns.
	// User credentials are hashed before they are written.
	Insert(ctx context.Context, rec entity.Record) (uuid.UUID, error)

	// Update writes only the named fields of rec to the stored record with the same identifier.
	Update(ctx context.Context, rec entity.Record, fields ...entity.Field) error

	// DeleteAll removes every record of kind and returns how many were removed.
	DeleteAll(ctx context.Context, kind entity.Kind) (int64, error)

	// DropConstraint removes a named uniqueness constraint or index from kind.
	// It returns ErrConstraintNotFound when no such constraint exists.
	DropConstraint(ctx context.Context, kind entity.Kind, name string) error

	// FindByID loads a single record.
	FindByID(ctx context.Context, kind entity.Kind, id uuid.UUID) (entity.Record, error)

	// FindAll loads every record of kind in creation order.
	FindAll(ctx context.Context, kind entity.Kind) ([]entity.Record, error)

	// Count returns the number of records of kind.
	Count(ctx context.Context, kind entity.Kind) (int64, error)
}

// FindAllAs loads every record of kind and asserts its concrete type.
func FindAllAs[T entity.Record](ctx context.Context, store EntityStore, kind entity.Kind) ([]T, error) {
	records, err := store.FindAll(ctx, kind)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		typed, ok := rec.(T)
		if !ok {
			return nil, ErrUnknownKind
		}
		out = append(out, typed)
	}

	return out, nil
}
