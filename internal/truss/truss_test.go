package truss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commgraph/communitysearch/internal/graph"
)

// triangleWithPendant builds a weighted triangle 1-2-3 plus a pendant
// vertex 4 hanging off vertex 1.
func triangleWithPendant(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for id := int64(1); id <= 4; id++ {
		g.AddVertex(graph.NewVertex(id, 1, []int{int(id)}))
	}
	require.NoError(t, g.AddEdge(graph.NewEdge(10, 1, 2.0), 1, 2))
	require.NoError(t, g.AddEdge(graph.NewEdge(11, 1, 1.0), 2, 3))
	require.NoError(t, g.AddEdge(graph.NewEdge(12, 1, 1.5), 3, 1))
	require.NoError(t, g.AddEdge(graph.NewEdge(13, 1, 1.0), 1, 4))
	return g
}

func edgeByID(g *graph.Graph, id int64) *graph.Edge {
	for _, e := range g.Edges() {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func TestMaintain_PeelsBelowSupportThreshold(t *testing.T) {
	g := triangleWithPendant(t)
	q, _ := g.VertexByID(1)

	require.NoError(t, NewMaintainer().Maintain(g, q, 3, 2))

	// Triangle edges each close one triangle: support 1 >= k-2.
	for _, id := range []int64{10, 11, 12} {
		e := edgeByID(g, id)
		assert.False(t, e.Pruned, "triangle edge %d survives", id)
		assert.Equal(t, 1, e.Support)
	}
	// The pendant edge closes no triangle.
	assert.True(t, edgeByID(g, 13).Pruned, "pendant edge is peeled")
}

func TestMaintain_PrunesOutsideHopBall(t *testing.T) {
	g := triangleWithPendant(t)
	// Vertex 5 is two hops from the query via the pendant.
	g.AddVertex(graph.NewVertex(5, 1, nil))
	require.NoError(t, g.AddEdge(graph.NewEdge(14, 1, 1.0), 4, 5))

	q, _ := g.VertexByID(1)
	require.NoError(t, NewMaintainer().Maintain(g, q, 2, 1))

	assert.True(t, edgeByID(g, 14).Pruned, "edge beyond the d-hop ball is pruned")
	assert.False(t, edgeByID(g, 10).Pruned, "k=2 keeps support-0 edges inside the ball")
	assert.False(t, edgeByID(g, 13).Pruned)
}

func TestMaintain_PeelsEverythingWithoutTriangles(t *testing.T) {
	// Path 1-2-3-4: no triangles at all, so k=3 peels every edge.
	g := graph.New()
	for id := int64(1); id <= 4; id++ {
		g.AddVertex(graph.NewVertex(id, 0, nil))
	}
	require.NoError(t, g.AddEdge(graph.NewEdge(10, 0, 1.0), 1, 2))
	require.NoError(t, g.AddEdge(graph.NewEdge(11, 0, 1.0), 2, 3))
	require.NoError(t, g.AddEdge(graph.NewEdge(12, 0, 1.0), 3, 4))

	q, _ := g.VertexByID(1)
	require.NoError(t, NewMaintainer().Maintain(g, q, 3, 3))

	for _, e := range g.Edges() {
		assert.True(t, e.Pruned, "edge %d", e.ID)
	}
}

func TestExtract_TriangleCommunity(t *testing.T) {
	g := triangleWithPendant(t)
	q, _ := g.VertexByID(1)
	require.NoError(t, NewMaintainer().Maintain(g, q, 3, 2))

	community, err := NewExtractor().Extract(g, g, 3, 2, q)
	require.NoError(t, err)

	assert.Equal(t, 3, community.Order())
	for _, id := range []int64{1, 2, 3} {
		_, ok := community.VertexByID(id)
		assert.True(t, ok, "vertex %d belongs to the community", id)
	}
	_, ok := community.VertexByID(4)
	assert.False(t, ok, "the pendant vertex is excluded")
	assert.Equal(t, 3, community.Size())
}

func TestExtract_DoesNotShareInstances(t *testing.T) {
	g := triangleWithPendant(t)
	q, _ := g.VertexByID(1)
	require.NoError(t, NewMaintainer().Maintain(g, q, 3, 2))

	community, err := NewExtractor().Extract(g, g, 3, 2, q)
	require.NoError(t, err)

	cv, ok := community.VertexByID(1)
	require.True(t, ok)
	gv, _ := g.VertexByID(1)
	assert.NotSame(t, gv, cv, "the community holds copies, not the input's vertices")
	assert.Equal(t, gv.ID, cv.ID)
	assert.Equal(t, gv.Attributes, cv.Attributes)

	assert.Equal(t, 4, g.Order(), "the input graph keeps all vertices")
	assert.Equal(t, 4, g.Size(), "the input graph keeps all edges")
}

func TestExtract_SingletonWhenNothingAdmissible(t *testing.T) {
	// Query vertex with every incident edge pruned.
	g := graph.New()
	g.AddVertex(graph.NewVertex(1, 0, nil))
	g.AddVertex(graph.NewVertex(2, 0, nil))
	require.NoError(t, g.AddEdge(graph.NewEdge(10, 0, 1.0), 1, 2))
	edgeByID(g, 10).Pruned = true

	q, _ := g.VertexByID(1)
	community, err := NewExtractor().Extract(g, g, 3, 2, q)
	require.NoError(t, err)

	assert.Equal(t, 1, community.Order())
	assert.Equal(t, 0, community.Size())
}

func TestExtract_PrefersHeavierNeighborsFirst(t *testing.T) {
	// Star around 1 with k=2: all neighbors admissible, heaviest first.
	g := graph.New()
	for id := int64(1); id <= 3; id++ {
		g.AddVertex(graph.NewVertex(id, 0, nil))
	}
	require.NoError(t, g.AddEdge(graph.NewEdge(10, 0, 0.5), 1, 2))
	require.NoError(t, g.AddEdge(graph.NewEdge(11, 0, 3.0), 1, 3))

	q, _ := g.VertexByID(1)
	require.NoError(t, NewMaintainer().Maintain(g, q, 2, 1))

	community, err := NewExtractor().Extract(g, g, 2, 1, q)
	require.NoError(t, err)
	assert.Equal(t, 3, community.Order(), "greedy expansion still absorbs all admissible members")
}
