package search

import (
	"fmt"

	"github.com/commgraph/communitysearch/internal/graph"
)

// NodeDescriptor is the presentation record for one community member.
type NodeDescriptor struct {
	ID          int64 `json:"id"`
	Type        int   `json:"type"`
	Attributes  []int `json:"attributes"`
	IsQueryNode bool  `json:"isQueryNode"`
}

// EdgeDescriptor is the presentation record for one community edge.
type EdgeDescriptor struct {
	ID     int64   `json:"id"`
	Source int64   `json:"source"`
	Target int64   `json:"target"`
	Type   int     `json:"type"`
	Weight float64 `json:"weight"`
}

// CommunityResult is the flat response record produced once per query.
// The optional scores are nil when undefined: similarities when the query
// vertex carries no attributes, centrality when the community has at most
// one member. It is immutable after assembly and never persisted.
type CommunityResult struct {
	CommunitySize       int              `json:"communitySize"`
	ResponseTimeMs      int64            `json:"responseTimeMs"`
	QueryNodeID         int64            `json:"queryNodeId"`
	StructuralTightness float64          `json:"structuralTightness"`
	JaccardSimilarity   *float64         `json:"jaccardSimilarity,omitempty"`
	CosineSimilarity    *float64         `json:"cosineSimilarity,omitempty"`
	Centrality          *float64         `json:"centrality,omitempty"`
	Nodes               []NodeDescriptor `json:"nodes"`
	Edges               []EdgeDescriptor `json:"edges"`
}

// Reconstruct rebuilds a graph from the descriptor collections. The
// vertex and edge identity sets round-trip exactly; attribute order is
// whatever the descriptors carry, which is fine since it has no semantics.
func (r *CommunityResult) Reconstruct() (*graph.Graph, error) {
	g := graph.New()
	for _, n := range r.Nodes {
		g.AddVertex(graph.NewVertex(n.ID, n.Type, n.Attributes))
	}
	for _, e := range r.Edges {
		edge := graph.NewEdge(e.ID, e.Type, e.Weight)
		if err := g.AddEdge(edge, e.Source, e.Target); err != nil {
			return nil, fmt.Errorf("search: reconstruct community: %w", err)
		}
	}
	return g, nil
}
