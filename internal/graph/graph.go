// Package graph holds the in-memory attributed graph shared by ingestion,
// the analytic stages, and the metrics engine. Graphs are built once per
// query, read many times, and discarded; there are no removal operations.
package graph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrVertexNotFound is returned by AddEdge when an endpoint identity is
// absent from the graph. Hitting it means the caller inserted an edge
// before its endpoints, which is a traversal-ordering defect.
var ErrVertexNotFound = errors.New("vertex not found")

// Vertex is a node in the attributed graph. ID is the store's native node
// identifier and is immutable once the vertex is created. Type is a small
// categorical tag (0 = untagged). Attributes are the node's numeric
// properties flattened to ints; their order carries no semantics.
type Vertex struct {
	ID         int64
	Type       int
	Attributes []int

	// neighbors is derived from edge insertion and kept strictly in sync:
	// it is never settable independently of AddEdge.
	neighbors map[int64]*Vertex
}

// NewVertex creates a vertex with the given identity, type tag, and
// attribute collection.
func NewVertex(id int64, typ int, attributes []int) *Vertex {
	return &Vertex{
		ID:         id,
		Type:       typ,
		Attributes: attributes,
		neighbors:  make(map[int64]*Vertex),
	}
}

// NeighborCount returns the size of the vertex's neighbor set.
func (v *Vertex) NeighborCount() int {
	return len(v.neighbors)
}

// Neighbors returns the vertices reachable by one incoming or outgoing
// edge, sorted by identity.
func (v *Vertex) Neighbors() []*Vertex {
	out := make([]*Vertex, 0, len(v.neighbors))
	for _, n := range v.neighbors {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// HasNeighbor reports whether id is in the vertex's neighbor set.
func (v *Vertex) HasNeighbor(id int64) bool {
	_, ok := v.neighbors[id]
	return ok
}

// Edge is a directed edge bound to two vertices owned by the same graph.
// ID is the store's native relationship identifier. Weight defaults to 1.0
// when the store provides none.
type Edge struct {
	ID     int64
	Type   int
	Weight float64
	Source *Vertex
	Target *Vertex

	// Support and Pruned are annotations written by the maintenance stage.
	// Zero values mean the edge has not been annotated.
	Support int
	Pruned  bool
}

// NewEdge creates an unbound edge; Source and Target are set by AddEdge.
func NewEdge(id int64, typ int, weight float64) *Edge {
	return &Edge{ID: id, Type: typ, Weight: weight}
}

// Graph owns a vertex map keyed by identity plus the edge collection.
// Edge endpoints are references back into the same graph's vertex map.
type Graph struct {
	vertices map[int64]*Vertex
	edges    []*Edge
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{vertices: make(map[int64]*Vertex)}
}

// AddVertex inserts a vertex, or re-inserts it idempotently: when the
// identity already exists the existing instance is updated in place so
// that edge endpoint references and accumulated neighbor sets stay valid.
func (g *Graph) AddVertex(v *Vertex) {
	if existing, ok := g.vertices[v.ID]; ok {
		existing.Type = v.Type
		existing.Attributes = v.Attributes
		return
	}
	if v.neighbors == nil {
		v.neighbors = make(map[int64]*Vertex)
	}
	g.vertices[v.ID] = v
}

// AddEdge binds e to the vertices with the given identities and updates
// both neighbor sets. Both endpoints must already be present.
func (g *Graph) AddEdge(e *Edge, sourceID, targetID int64) error {
	source, ok := g.vertices[sourceID]
	if !ok {
		return fmt.Errorf("graph: add edge %d: source %d: %w", e.ID, sourceID, ErrVertexNotFound)
	}
	target, ok := g.vertices[targetID]
	if !ok {
		return fmt.Errorf("graph: add edge %d: target %d: %w", e.ID, targetID, ErrVertexNotFound)
	}
	e.Source = source
	e.Target = target
	source.neighbors[target.ID] = target
	target.neighbors[source.ID] = source
	g.edges = append(g.edges, e)
	return nil
}

// VertexByID looks up a vertex by identity.
func (g *Graph) VertexByID(id int64) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// VertexMap exposes the identity-to-vertex mapping. Callers must treat it
// as read-only.
func (g *Graph) VertexMap() map[int64]*Vertex {
	return g.vertices
}

// Vertices returns all vertices sorted by identity.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Edges returns the edge collection in insertion order.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.vertices)
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	return len(g.edges)
}
