// Package ingest materializes the in-memory attributed graph from the
// property-graph store's current content. Every query rebuilds the whole
// graph; nothing is cached across calls.
package ingest

import (
	"context"
	"fmt"
	"sort"

	"github.com/commgraph/communitysearch/internal/graph"
	"github.com/commgraph/communitysearch/internal/store"
)

// labelTypes maps store node labels to vertex type tags. First match wins;
// unmatched labels leave the type at 0. Extend by adding entries.
var labelTypes = map[string]int{
	"User": 1,
	"Post": 2,
}

// relTypes maps store relationship type names to edge type tags.
var relTypes = map[string]int{
	"FOLLOWS": 1,
	"LIKES":   2,
}

// defaultWeight applies when the store carries no weight property.
const defaultWeight = 1.0

// Load builds a complete graph from one full-store traversal. For each
// triple both endpoints are inserted (idempotently) before the edge, so
// the graph's endpoint invariant always holds. Edge endpoints are bound
// via the relationship's native start/end identifiers.
func Load(ctx context.Context, st store.Store) (*graph.Graph, error) {
	g := graph.New()
	err := st.EdgeTriples(ctx, func(t store.Triple) error {
		g.AddVertex(vertexFromNode(t.Start))
		g.AddVertex(vertexFromNode(t.End))
		return g.AddEdge(edgeFromRel(t.Rel), t.Rel.StartID, t.Rel.EndID)
	})
	if err != nil {
		return nil, fmt.Errorf("ingest: load graph: %w", err)
	}
	return g, nil
}

// vertexFromNode derives a vertex from a store node: type from the first
// label with a mapping, attributes from every numeric property value
// coerced to int. Properties are visited in sorted key order so repeated
// loads are reproducible; attribute order carries no semantics.
func vertexFromNode(n store.Node) *graph.Vertex {
	typ := 0
	for _, l := range n.Labels {
		if t, ok := labelTypes[l]; ok {
			typ = t
			break
		}
	}

	keys := make([]string, 0, len(n.Props))
	for k := range n.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var attrs []int
	for _, k := range keys {
		if v, ok := numericToInt(n.Props[k]); ok {
			attrs = append(attrs, v)
		}
	}
	return graph.NewVertex(n.ID, typ, attrs)
}

// edgeFromRel derives an unbound edge from a store relationship.
func edgeFromRel(r store.Relationship) *graph.Edge {
	typ := relTypes[r.Type]
	weight := defaultWeight
	if w, ok := r.Props["weight"]; ok {
		if f, isNum := numericToFloat(w); isNum {
			weight = f
		}
	}
	return graph.NewEdge(r.ID, typ, weight)
}

// numericToInt coerces a store property value to int when it is numeric.
func numericToInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// numericToFloat coerces a store property value to float64 when numeric.
func numericToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
