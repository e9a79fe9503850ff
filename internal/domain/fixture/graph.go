package fixture

import (
	"sync"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUnresolvedReference is returned when a planned record points at an
// identifier that no committed record carries.
var ErrUnresolvedReference = errors.New("unresolved reference")

// Graph holds the records a run has materialized so far, per kind in plan order.
type Graph struct {
	mu      sync.RWMutex
	records map[entity.Kind][]entity.Record
	ids     map[entity.Kind]map[uuid.UUID]struct{}
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		records: make(map[entity.Kind][]entity.Record),
		ids:     make(map[entity.Kind]map[uuid.UUID]struct{}),
	}
}

// Commit records the acknowledged records of kind. Records must carry their
// store-assigned identifiers.
func (g *Graph) Commit(kind entity.Kind, recs []entity.Record) {
	g.mu.Lock()
	defer g.mu.Unlock()

	set, ok := g.ids[kind]
	if !ok {
		set = make(map[uuid.UUID]struct{}, len(recs))
		g.ids[kind] = set
	}
	for _, rec := range recs {
		set[rec.Identity()] = struct{}{}
	}
	g.records[kind] = append(g.records[kind], recs...)
}

// Records returns the committed records of kind in plan order.
func (g *Graph) Records(kind entity.Kind) []entity.Record {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]entity.Record, len(g.records[kind]))
	copy(out, g.records[kind])

	return out
}

// Count returns how many records of kind are committed.
func (g *Graph) Count(kind entity.Kind) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.records[kind])
}

// Has reports whether id is a committed record of kind.
func (g *Graph) Has(kind entity.Kind, id uuid.UUID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.ids[kind][id]

	return ok
}

// Resolve checks that every forward reference of rec points at a committed record.
func (g *Graph) Resolve(rec entity.Record) error {
	for _, ref := range rec.References() {
		if !g.Has(ref.Kind, ref.ID) {
			return errors.Wrapf(ErrUnresolvedReference, "%s.%s -> %s %s", rec.Kind(), ref.Field, ref.Kind, ref.ID)
		}
	}

	return nil
}

// Of returns the committed records of kind asserted to T.
func Of[T entity.Record](g *Graph, kind entity.Kind) []T {
	recs := g.Records(kind)
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		if typed, ok := rec.(T); ok {
			out = append(out, typed)
		}
	}

	return out
}
