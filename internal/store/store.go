// Package store defines the property-graph store boundary. Implementations:
// Neo4jStore (production), KuzuStore (embedded, cgo), MemStore (testing and
// the demo seed path). All store access goes through these interfaces.
package store

import (
	"context"
	"io"
)

// Node is a store-level node record: native identifier, labels, and the
// raw property map.
type Node struct {
	ID     int64
	Labels []string
	Props  map[string]any
}

// Relationship is a store-level relationship record. StartID and EndID are
// the native identifiers of the endpoints as carried on the relationship
// itself, so endpoint resolution never depends on the node objects of the
// result row.
type Relationship struct {
	ID      int64
	Type    string
	StartID int64
	EndID   int64
	Props   map[string]any
}

// Triple is one directed relationship together with both endpoint nodes,
// as produced by the full-graph traversal.
type Triple struct {
	Start Node
	Rel   Relationship
	End   Node
}

// Store is the read boundary of the property-graph store.
type Store interface {
	io.Closer

	// EdgeTriples runs one traversal logically equivalent to
	// MATCH (n)-[r]->(m) RETURN n, r, m and invokes fn once per
	// relationship, in one pass over the full result set. Any store
	// session acquired for the scan is released on every exit path.
	// An error from fn aborts the scan and is returned unchanged.
	EdgeTriples(ctx context.Context, fn func(Triple) error) error
}

// Seeder is the optional write surface used to load fixture data. The
// Neo4j backend does not implement it: production graphs already exist.
type Seeder interface {
	InitSchema(ctx context.Context) error
	AddNode(ctx context.Context, n Node) error
	AddRelationship(ctx context.Context, r Relationship) error
}
