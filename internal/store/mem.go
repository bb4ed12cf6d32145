package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Compile-time assertions: *MemStore satisfies Store and Seeder.
var (
	_ Store  = (*MemStore)(nil)
	_ Seeder = (*MemStore)(nil)
)

// MemStore implements the store boundary using Go maps. Thread-safe via
// sync.RWMutex.
type MemStore struct {
	mu    sync.RWMutex
	nodes map[int64]Node
	rels  []Relationship
}

// NewMemStore returns an initialized MemStore ready for use.
func NewMemStore() *MemStore {
	return &MemStore{nodes: make(map[int64]Node)}
}

// InitSchema is a no-op for the in-memory store.
func (m *MemStore) InitSchema(_ context.Context) error {
	return nil
}

// AddNode stores a node keyed by its native identifier.
func (m *MemStore) AddNode(_ context.Context, n Node) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes[n.ID] = n
	return nil
}

// AddRelationship appends a relationship. Both endpoints must already be
// present so that scans always yield complete triples.
func (m *MemStore) AddRelationship(_ context.Context, r Relationship) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.nodes[r.StartID]; !ok {
		return fmt.Errorf("memstore: relationship %d: unknown start node %d", r.ID, r.StartID)
	}
	if _, ok := m.nodes[r.EndID]; !ok {
		return fmt.Errorf("memstore: relationship %d: unknown end node %d", r.ID, r.EndID)
	}
	m.rels = append(m.rels, r)
	return nil
}

// EdgeTriples replays every relationship with its endpoint nodes in a
// deterministic order (by relationship id).
func (m *MemStore) EdgeTriples(ctx context.Context, fn func(Triple) error) error {
	m.mu.RLock()
	rels := make([]Relationship, len(m.rels))
	copy(rels, m.rels)
	m.mu.RUnlock()

	sort.Slice(rels, func(i, j int) bool { return rels[i].ID < rels[j].ID })

	for _, r := range rels {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.mu.RLock()
		start := m.nodes[r.StartID]
		end := m.nodes[r.EndID]
		m.mu.RUnlock()
		if err := fn(Triple{Start: start, Rel: r, End: end}); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error {
	return nil
}
