package search

import (
	"time"

	"github.com/commgraph/communitysearch/internal/graph"
)

// assemble scores the community subgraph and packages it for presentation.
//
// Structural tightness is the sum of the community's internal edge weights
// with no normalization against the full graph; for a restriction subgraph
// the total weight is the internal weight.
//
// The similarity averages run over every member with a non-empty attribute
// collection, the query vertex included, so its 1.0 self-similarity is
// folded into the mean.
func assemble(community *graph.Graph, query *graph.Vertex, elapsed time.Duration, queryNodeID int64) *CommunityResult {
	result := &CommunityResult{
		CommunitySize:  community.Order(),
		ResponseTimeMs: elapsed.Milliseconds(),
		QueryNodeID:    queryNodeID,
	}

	for _, e := range community.Edges() {
		result.StructuralTightness += e.Weight
	}

	if len(query.Attributes) > 0 {
		jaccardSum, cosineSum := 0.0, 0.0
		count := 0
		for _, v := range community.Vertices() {
			if len(v.Attributes) == 0 {
				continue
			}
			jaccardSum += graph.Jaccard(query.Attributes, v.Attributes)
			cosineSum += graph.Cosine(query.Attributes, v.Attributes)
			count++
		}
		if count > 0 {
			j := jaccardSum / float64(count)
			c := cosineSum / float64(count)
			result.JaccardSimilarity = &j
			result.CosineSimilarity = &c
		}
	}

	// Centrality uses the community's own copy of the query vertex, so
	// only neighbors inside the community count.
	if cv, ok := community.VertexByID(query.ID); ok {
		if c, defined := graph.DegreeCentrality(cv.NeighborCount(), community.Order()); defined {
			result.Centrality = &c
		}
	}

	result.Nodes = make([]NodeDescriptor, 0, community.Order())
	for _, v := range community.Vertices() {
		result.Nodes = append(result.Nodes, NodeDescriptor{
			ID:          v.ID,
			Type:        v.Type,
			Attributes:  v.Attributes,
			IsQueryNode: v.ID == queryNodeID,
		})
	}

	result.Edges = make([]EdgeDescriptor, 0, community.Size())
	for _, e := range community.Edges() {
		result.Edges = append(result.Edges, EdgeDescriptor{
			ID:     e.ID,
			Source: e.Source.ID,
			Target: e.Target.ID,
			Type:   e.Type,
			Weight: e.Weight,
		})
	}

	return result
}
