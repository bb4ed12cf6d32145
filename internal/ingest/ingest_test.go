package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commgraph/communitysearch/internal/store"
)

// seedStore populates a MemStore with the given nodes and relationships.
func seedStore(t *testing.T, nodes []store.Node, rels []store.Relationship) *store.MemStore {
	t.Helper()
	ctx := context.Background()
	m := store.NewMemStore()
	for _, n := range nodes {
		require.NoError(t, m.AddNode(ctx, n))
	}
	for _, r := range rels {
		require.NoError(t, m.AddRelationship(ctx, r))
	}
	return m
}

func TestLoad_CountsMatchStore(t *testing.T) {
	nodes := []store.Node{
		{ID: 1, Labels: []string{"User"}},
		{ID: 2, Labels: []string{"User"}},
		{ID: 3, Labels: []string{"Post"}},
	}
	rels := []store.Relationship{
		{ID: 10, Type: "FOLLOWS", StartID: 1, EndID: 2},
		{ID: 11, Type: "LIKES", StartID: 1, EndID: 3},
		{ID: 12, Type: "LIKES", StartID: 2, EndID: 3},
	}
	g, err := Load(context.Background(), seedStore(t, nodes, rels))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Order(), "one vertex per distinct node identifier")
	assert.Equal(t, 3, g.Size(), "one edge per relationship")
}

func TestLoad_TypeMappings(t *testing.T) {
	nodes := []store.Node{
		{ID: 1, Labels: []string{"User"}},
		{ID: 2, Labels: []string{"Post"}},
		{ID: 3, Labels: []string{"Banner", "User"}},
		{ID: 4, Labels: []string{"Widget"}},
	}
	rels := []store.Relationship{
		{ID: 10, Type: "FOLLOWS", StartID: 1, EndID: 3},
		{ID: 11, Type: "LIKES", StartID: 1, EndID: 2},
		{ID: 12, Type: "MENTIONS", StartID: 1, EndID: 4},
	}
	g, err := Load(context.Background(), seedStore(t, nodes, rels))
	require.NoError(t, err)

	v1, _ := g.VertexByID(1)
	v2, _ := g.VertexByID(2)
	v3, _ := g.VertexByID(3)
	v4, _ := g.VertexByID(4)
	assert.Equal(t, 1, v1.Type)
	assert.Equal(t, 2, v2.Type)
	assert.Equal(t, 1, v3.Type, "first label with a mapping wins")
	assert.Equal(t, 0, v4.Type, "unmatched labels stay untagged")

	types := map[int64]int{}
	for _, e := range g.Edges() {
		types[e.ID] = e.Type
	}
	assert.Equal(t, 1, types[10])
	assert.Equal(t, 2, types[11])
	assert.Equal(t, 0, types[12], "unmatched relationship types stay untagged")
}

func TestLoad_NumericAttributesAndWeights(t *testing.T) {
	nodes := []store.Node{
		{ID: 1, Labels: []string{"User"}, Props: map[string]any{
			"age":    int64(29),
			"name":   "ada", // non-numeric, dropped
			"region": 3,
			"score":  2.9, // floats are truncated
		}},
		{ID: 2, Labels: []string{"User"}},
	}
	rels := []store.Relationship{
		{ID: 10, Type: "FOLLOWS", StartID: 1, EndID: 2, Props: map[string]any{"weight": 2.5}},
		{ID: 11, Type: "FOLLOWS", StartID: 2, EndID: 1},
	}
	g, err := Load(context.Background(), seedStore(t, nodes, rels))
	require.NoError(t, err)

	v1, _ := g.VertexByID(1)
	assert.ElementsMatch(t, []int{29, 3, 2}, v1.Attributes)

	v2, _ := g.VertexByID(2)
	assert.Empty(t, v2.Attributes)

	weights := map[int64]float64{}
	for _, e := range g.Edges() {
		weights[e.ID] = e.Weight
	}
	assert.InDelta(t, 2.5, weights[10], 1e-9)
	assert.InDelta(t, 1.0, weights[11], 1e-9, "missing weight defaults to 1.0")
}

func TestLoad_RepeatedNodeRowsAreIdempotent(t *testing.T) {
	// Node 1 appears in three result rows; the graph must hold one vertex
	// with an intact neighbor set.
	nodes := []store.Node{
		{ID: 1, Labels: []string{"User"}, Props: map[string]any{"age": int64(29)}},
		{ID: 2, Labels: []string{"User"}},
		{ID: 3, Labels: []string{"User"}},
	}
	rels := []store.Relationship{
		{ID: 10, Type: "FOLLOWS", StartID: 1, EndID: 2},
		{ID: 11, Type: "FOLLOWS", StartID: 1, EndID: 3},
		{ID: 12, Type: "FOLLOWS", StartID: 3, EndID: 1},
	}
	g, err := Load(context.Background(), seedStore(t, nodes, rels))
	require.NoError(t, err)

	require.Equal(t, 3, g.Order())
	v1, _ := g.VertexByID(1)
	assert.Equal(t, 2, v1.NeighborCount())
	assert.Equal(t, []int{29}, v1.Attributes)
}
