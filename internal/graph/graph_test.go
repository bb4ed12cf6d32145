package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertex_Idempotent(t *testing.T) {
	g := New()
	g.AddVertex(NewVertex(1, 1, []int{5, 7}))
	g.AddVertex(NewVertex(1, 2, []int{9}))

	require.Equal(t, 1, g.Order(), "re-inserting the same identity must not grow the graph")

	v, ok := g.VertexByID(1)
	require.True(t, ok)
	assert.Equal(t, 2, v.Type, "re-insert updates the type tag")
	assert.Equal(t, []int{9}, v.Attributes, "re-insert updates the attributes")
}

func TestAddVertex_ReinsertKeepsNeighbors(t *testing.T) {
	g := New()
	g.AddVertex(NewVertex(1, 1, nil))
	g.AddVertex(NewVertex(2, 1, nil))
	require.NoError(t, g.AddEdge(NewEdge(10, 0, 1.0), 1, 2))

	// A later result row re-inserts vertex 1; its neighbor set must survive.
	g.AddVertex(NewVertex(1, 1, []int{3}))

	v, ok := g.VertexByID(1)
	require.True(t, ok)
	assert.Equal(t, 1, v.NeighborCount())
	assert.True(t, v.HasNeighbor(2))
}

func TestAddEdge_UpdatesBothNeighborSets(t *testing.T) {
	g := New()
	g.AddVertex(NewVertex(1, 1, nil))
	g.AddVertex(NewVertex(2, 2, nil))

	e := NewEdge(10, 1, 2.5)
	require.NoError(t, g.AddEdge(e, 1, 2))

	require.Equal(t, 1, g.Size())
	assert.Equal(t, int64(1), e.Source.ID)
	assert.Equal(t, int64(2), e.Target.ID)

	src, _ := g.VertexByID(1)
	dst, _ := g.VertexByID(2)
	assert.True(t, src.HasNeighbor(2), "source gains the target as neighbor")
	assert.True(t, dst.HasNeighbor(1), "target gains the source as neighbor")
}

func TestAddEdge_MissingEndpoint(t *testing.T) {
	g := New()
	g.AddVertex(NewVertex(1, 0, nil))

	err := g.AddEdge(NewEdge(10, 0, 1.0), 1, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVertexNotFound)
	assert.Equal(t, 0, g.Size(), "a failed insert must not add the edge")

	err = g.AddEdge(NewEdge(11, 0, 1.0), 99, 1)
	assert.ErrorIs(t, err, ErrVertexNotFound)
}

func TestVertices_SortedByID(t *testing.T) {
	g := New()
	g.AddVertex(NewVertex(3, 0, nil))
	g.AddVertex(NewVertex(1, 0, nil))
	g.AddVertex(NewVertex(2, 0, nil))

	var ids []int64
	for _, v := range g.Vertices() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}
