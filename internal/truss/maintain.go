// Package truss supplies the default analytic stages behind the search
// orchestrator's Maintainer and Extractor interfaces: a k-d truss
// maintenance pass and a greedy weighted community extraction. Either can
// be swapped for another strategy without touching the orchestrator.
package truss

import (
	"github.com/commgraph/communitysearch/internal/graph"
)

// Maintainer prepares a graph for extraction by annotating it in place:
// edges outside the query vertex's d-hop ball, and edges whose triangle
// support cannot sustain a k-truss (support < k-2), are marked pruned.
// Surviving edges carry their final support count. The graph's vertex and
// edge collections are never shrunk.
type Maintainer struct{}

// NewMaintainer returns the default truss maintenance stage.
func NewMaintainer() *Maintainer {
	return &Maintainer{}
}

// Maintain annotates g for a (k, d) community query around query.
func (m *Maintainer) Maintain(g *graph.Graph, query *graph.Vertex, k, d int) error {
	ball := hopBall(query, d)

	// Edges with an endpoint outside the ball can never join the
	// community; prune them up front.
	for _, e := range g.Edges() {
		e.Pruned = !ball[e.Source.ID] || !ball[e.Target.ID]
		e.Support = 0
	}

	// Iterative support peeling: recompute triangle support over the
	// surviving adjacency and drop edges below the k-truss threshold
	// until a fixpoint.
	threshold := k - 2
	for {
		adj := prunedAdjacency(g)
		peeled := false
		for _, e := range g.Edges() {
			if e.Pruned {
				continue
			}
			e.Support = commonNeighbors(adj, e.Source.ID, e.Target.ID)
			if e.Support < threshold {
				e.Pruned = true
				peeled = true
			}
		}
		if !peeled {
			return nil
		}
	}
}

// hopBall returns the identities reachable from start within depth hops
// over the derived neighbor relation, start included.
func hopBall(start *graph.Vertex, depth int) map[int64]bool {
	visited := map[int64]bool{start.ID: true}
	frontier := []*graph.Vertex{start}

	for hop := 0; hop < depth && len(frontier) > 0; hop++ {
		var next []*graph.Vertex
		for _, v := range frontier {
			for _, nb := range v.Neighbors() {
				if !visited[nb.ID] {
					visited[nb.ID] = true
					next = append(next, nb)
				}
			}
		}
		frontier = next
	}
	return visited
}

// prunedAdjacency builds an undirected adjacency set over unpruned edges.
func prunedAdjacency(g *graph.Graph) map[int64]map[int64]bool {
	adj := make(map[int64]map[int64]bool)
	link := func(a, b int64) {
		if adj[a] == nil {
			adj[a] = make(map[int64]bool)
		}
		adj[a][b] = true
	}
	for _, e := range g.Edges() {
		if e.Pruned {
			continue
		}
		link(e.Source.ID, e.Target.ID)
		link(e.Target.ID, e.Source.ID)
	}
	return adj
}

// commonNeighbors counts vertices adjacent to both a and b, i.e. the
// number of triangles the edge (a, b) participates in.
func commonNeighbors(adj map[int64]map[int64]bool, a, b int64) int {
	na, nb := adj[a], adj[b]
	if len(nb) < len(na) {
		na, nb = nb, na
	}
	count := 0
	for id := range na {
		if nb[id] {
			count++
		}
	}
	return count
}
