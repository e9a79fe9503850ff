// Package memory contains an in-process implementation of the persistence layer.
// It enforces the same referential and uniqueness rules as the database stores.
package memory

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// KeyFunc extracts the unique key of a record. ok is false when the record
// does not participate in the constraint.
type KeyFunc func(rec entity.Record) (key string, ok bool)

type uniqueConstraint struct {
	name string
	key  KeyFunc
}

type table struct {
	order []uuid.UUID
	rows  map[uuid.UUID]entity.Record
}

func newTable() *table {
	return &table{rows: make(map[uuid.UUID]entity.Record)}
}

func (t *table) clone() *table {
	cp := &table{
		order: append([]uuid.UUID(nil), t.order...),
		rows:  make(map[uuid.UUID]entity.Record, len(t.rows)),
	}
	for id, rec := range t.rows {
		cp.rows[id] = rec.Clone()
	}

	return cp
}

// Store is an EntityStore backed by maps.
type Store struct {
	mu          sync.RWMutex
	hasher      service.PasswordHasher
	now         func() time.Time
	tables      map[entity.Kind]*table
	constraints map[entity.Kind][]uniqueConstraint
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithUniqueConstraint adds a named uniqueness constraint on kind.
func WithUniqueConstraint(kind entity.Kind, name string, key KeyFunc) Option {
	return func(s *Store) {
		s.constraints[kind] = append(s.constraints[kind], uniqueConstraint{name: name, key: key})
	}
}

// NewStore creates an empty store with the default uniqueness constraints.
func NewStore(hasher service.PasswordHasher, opts ...Option) *Store {
	s := &Store{
		hasher:      hasher,
		now:         time.Now,
		tables:      make(map[entity.Kind]*table),
		constraints: make(map[entity.Kind][]uniqueConstraint),
	}
	for _, kind := range entity.Kinds() {
		s.tables[kind] = newTable()
	}

	WithUniqueConstraint(entity.KindCategory, "idx_categories_name", categoryName)(s)
	WithUniqueConstraint(entity.KindUser, "idx_users_email", userEmail)(s)
	WithUniqueConstraint(entity.KindUser, "idx_users_username", userName)(s)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Insert implements repository.EntityStore.
func (s *Store) Insert(ctx context.Context, rec entity.Record) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, errors.WithStack(err)
	}

	kind := rec.Kind()
	if err := service.SealPassword(s.hasher, rec); err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "generate id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tbl, ok := s.tables[kind]
	if !ok {
		return uuid.Nil, errors.Wrapf(repository.ErrUnknownKind, "%s", kind)
	}
	if err := s.checkReferences(rec.References()); err != nil {
		return uuid.Nil, err
	}

	at := s.now()
	stored := rec.Clone()
	stored.Stamp(id, at)
	if err := s.checkUnique(kind, stored); err != nil {
		return uuid.Nil, err
	}

	tbl.rows[id] = stored
	tbl.order = append(tbl.order, id)
	rec.Stamp(id, at)

	return id, nil
}

// Update implements repository.EntityStore.
func (s *Store) Update(ctx context.Context, rec entity.Record, fields ...entity.Field) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tbl, ok := s.tables[rec.Kind()]
	if !ok {
		return errors.Wrapf(repository.ErrUnknownKind, "%s", rec.Kind())
	}
	current, ok := tbl.rows[rec.Identity()]
	if !ok {
		return errors.Wrapf(repository.ErrRecordNotFound, "%s %s", rec.Kind(), rec.Identity())
	}

	patched := current.Clone()
	for _, field := range fields {
		if err := entity.CopyField(patched, rec, field); err != nil {
			return err
		}
	}
	if err := s.checkReferences(entity.BackReferences(patched)); err != nil {
		return err
	}
	if err := s.checkUnique(rec.Kind(), patched); err != nil {
		return err
	}

	patched.Touch(s.now())
	tbl.rows[rec.Identity()] = patched

	return nil
}

// DeleteAll implements repository.EntityStore.
func (s *Store) DeleteAll(ctx context.Context, kind entity.Kind) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tbl, ok := s.tables[kind]
	if !ok {
		return 0, errors.Wrapf(repository.ErrUnknownKind, "%s", kind)
	}
	removed := int64(len(tbl.rows))
	s.tables[kind] = newTable()

	return removed, nil
}

// DropConstraint implements repository.EntityStore.
func (s *Store) DropConstraint(ctx context.Context, kind entity.Kind, name string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	constraints := s.constraints[kind]
	for i, c := range constraints {
		if c.name == name {
			s.constraints[kind] = append(constraints[:i:i], constraints[i+1:]...)

			return nil
		}
	}

	return errors.Wrapf(repository.ErrConstraintNotFound, "%s on %s", name, kind)
}

// FindByID implements repository.EntityStore.
func (s *Store) FindByID(ctx context.Context, kind entity.Kind, id uuid.UUID) (entity.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tbl, ok := s.tables[kind]
	if !ok {
		return nil, errors.Wrapf(repository.ErrUnknownKind, "%s", kind)
	}
	rec, ok := tbl.rows[id]
	if !ok {
		return nil, errors.Wrapf(repository.ErrRecordNotFound, "%s %s", kind, id)
	}

	return rec.Clone(), nil
}

// FindAll implements repository.EntityStore.
func (s *Store) FindAll(ctx context.Context, kind entity.Kind) ([]entity.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tbl, ok := s.tables[kind]
	if !ok {
		return nil, errors.Wrapf(repository.ErrUnknownKind, "%s", kind)
	}
	out := make([]entity.Record, 0, len(tbl.order))
	for _, id := range tbl.order {
		out = append(out, tbl.rows[id].Clone())
	}

	return out, nil
}

// Count implements repository.EntityStore.
func (s *Store) Count(ctx context.Context, kind entity.Kind) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tbl, ok := s.tables[kind]
	if !ok {
		return 0, errors.Wrapf(repository.ErrUnknownKind, "%s", kind)
	}

	return int64(len(tbl.rows)), nil
}

func (s *Store) checkReferences(refs []entity.Reference) error {
	for _, ref := range refs {
		tbl, ok := s.tables[ref.Kind]
		if !ok {
			return errors.Wrapf(repository.ErrUnknownKind, "%s", ref.Kind)
		}
		if _, ok := tbl.rows[ref.ID]; !ok {
			return errors.Wrapf(repository.ErrDanglingReference, "%s -> %s %s", ref.Field, ref.Kind, ref.ID)
		}
	}

	return nil
}

func (s *Store) checkUnique(kind entity.Kind, candidate entity.Record) error {
	for _, c := range s.constraints[kind] {
		key, ok := c.key(candidate)
		if !ok {
			continue
		}
		for id, existing := range s.tables[kind].rows {
			if id == candidate.Identity() {
				continue
			}
			if other, ok := c.key(existing); ok && other == key {
				return errors.Wrapf(repository.ErrDuplicateKey, "%s: %q", c.name, key)
			}
		}
	}

	return nil
}

// state is a point-in-time copy of the store's rows and constraints.
type state struct {
	tables      map[entity.Kind]*table
	constraints map[entity.Kind][]uniqueConstraint
}

func (s *Store) snapshot() state {
	s.mu.RLock()
	defer s.mu.RUnlock()

	saved := state{
		tables:      make(map[entity.Kind]*table, len(s.tables)),
		constraints: make(map[entity.Kind][]uniqueConstraint, len(s.constraints)),
	}
	for kind, tbl := range s.tables {
		saved.tables[kind] = tbl.clone()
	}
	for kind, cs := range s.constraints {
		saved.constraints[kind] = append([]uniqueConstraint(nil), cs...)
	}

	return saved
}

func (s *Store) restore(saved state) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tables = saved.tables
	s.constraints = saved.constraints
}

func categoryName(rec entity.Record) (string, bool) {
	c, ok := rec.(*entity.Category)
	if !ok {
		return "", false
	}

	return c.Name, true
}

func userEmail(rec entity.Record) (string, bool) {
	u, ok := rec.(*entity.User)
	if !ok {
		return "", false
	}

	return u.Email, true
}

func userName(rec entity.Record) (string, bool) {
	u, ok := rec.(*entity.User)
	if !ok {
		return "", false
	}

	return u.Username, true
}
