package truss

import (
	"fmt"
	"sort"

	"github.com/commgraph/communitysearch/internal/graph"
)

// Extractor grows a community around the query vertex by greedy weighted
// expansion over the unpruned edges of the maintained graph. The returned
// community is a fresh restriction graph: copied vertices and edges with
// the original identities, never shared instances, so the input graph is
// left untouched.
type Extractor struct{}

// NewExtractor returns the default greedy weighted extraction stage.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the community subgraph for a (k, d) query around query.
// Candidates come from the d-hop ball over unpruned edges of the candidate
// graph; each round admits the neighbor with the largest internal-weight
// gain whose connections into the community reach min(k-1, |community|).
func (x *Extractor) Extract(_, candidate *graph.Graph, k, d int, query *graph.Vertex) (*graph.Graph, error) {
	qv, ok := candidate.VertexByID(query.ID)
	if !ok {
		return nil, fmt.Errorf("truss: query vertex %d not in candidate graph", query.ID)
	}

	weights := pairWeights(candidate)
	ball := weightedBall(qv.ID, weights, d)

	members := map[int64]bool{qv.ID: true}
	for {
		best, ok := pickCandidate(weights, ball, members, k)
		if !ok {
			break
		}
		members[best] = true
	}

	return restrict(candidate, members)
}

// pairWeights aggregates unpruned edge weights per undirected vertex pair.
func pairWeights(g *graph.Graph) map[int64]map[int64]float64 {
	w := make(map[int64]map[int64]float64)
	add := func(a, b int64, weight float64) {
		if w[a] == nil {
			w[a] = make(map[int64]float64)
		}
		w[a][b] += weight
	}
	for _, e := range g.Edges() {
		if e.Pruned {
			continue
		}
		add(e.Source.ID, e.Target.ID, e.Weight)
		add(e.Target.ID, e.Source.ID, e.Weight)
	}
	return w
}

// weightedBall is the d-hop reachability set over the aggregated adjacency.
func weightedBall(start int64, weights map[int64]map[int64]float64, depth int) map[int64]bool {
	visited := map[int64]bool{start: true}
	frontier := []int64{start}

	for hop := 0; hop < depth && len(frontier) > 0; hop++ {
		var next []int64
		for _, id := range frontier {
			for nb := range weights[id] {
				if !visited[nb] {
					visited[nb] = true
					next = append(next, nb)
				}
			}
		}
		frontier = next
	}
	return visited
}

// pickCandidate returns the admissible non-member with the largest weight
// gain into the community. A candidate is admissible when it lies in the
// ball and its distinct connections into the community reach
// min(k-1, community size). Ties break on the smaller identity so the
// expansion is deterministic.
func pickCandidate(weights map[int64]map[int64]float64, ball, members map[int64]bool, k int) (int64, bool) {
	required := k - 1
	if len(members) < required {
		required = len(members)
	}
	if required < 1 {
		required = 1
	}

	type candidate struct {
		id   int64
		gain float64
	}
	var candidates []candidate

	seen := map[int64]bool{}
	for m := range members {
		for nb := range weights[m] {
			if members[nb] || !ball[nb] || seen[nb] {
				continue
			}
			seen[nb] = true

			links := 0
			gain := 0.0
			for other, w := range weights[nb] {
				if members[other] {
					links++
					gain += w
				}
			}
			if links >= required {
				candidates = append(candidates, candidate{id: nb, gain: gain})
			}
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].gain != candidates[j].gain {
			return candidates[i].gain > candidates[j].gain
		}
		return candidates[i].id < candidates[j].id
	})
	return candidates[0].id, true
}

// restrict builds a fresh graph holding copies of the member vertices and
// of every unpruned edge whose endpoints are both members.
func restrict(g *graph.Graph, members map[int64]bool) (*graph.Graph, error) {
	sub := graph.New()
	for id := range members {
		v, ok := g.VertexByID(id)
		if !ok {
			return nil, fmt.Errorf("truss: member vertex %d missing from graph", id)
		}
		sub.AddVertex(graph.NewVertex(v.ID, v.Type, v.Attributes))
	}
	for _, e := range g.Edges() {
		if e.Pruned || !members[e.Source.ID] || !members[e.Target.ID] {
			continue
		}
		if err := sub.AddEdge(graph.NewEdge(e.ID, e.Type, e.Weight), e.Source.ID, e.Target.ID); err != nil {
			return nil, err
		}
	}
	return sub, nil
}
