package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhstar/dhstar/core"
)

func TestAddVertexIdempotentAndIndexStable(t *testing.T) {
	g := core.NewGraph(4, 4)

	v1, err := g.AddVertex("A")
	require.NoError(t, err)
	assert.Equal(t, 0, v1.Idx)

	v2, err := g.AddVertex("B")
	require.NoError(t, err)
	assert.Equal(t, 1, v2.Idx)

	// Re-adding "A" is a no-op: same pointer, same Idx.
	v1Again, err := g.AddVertex("A")
	require.NoError(t, err)
	assert.Same(t, v1, v1Again)
	assert.Equal(t, 0, v1Again.Idx)

	assert.Equal(t, 2, g.VertexNum())
}

func TestAddVertexEmptyID(t *testing.T) {
	g := core.NewGraph(0, 0)
	_, err := g.AddVertex("")
	assert.ErrorIs(t, err, core.ErrEmptyID)
}

func TestAddEdgeAutoCreatesEndpointsAndIsIdempotent(t *testing.T) {
	g := core.NewGraph(2, 1)

	e1, err := g.AddEdge("e1", "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 0, e1.Idx)
	assert.Equal(t, "A", e1.From.ID)
	assert.Equal(t, "B", e1.To.ID)
	assert.Equal(t, 2, g.VertexNum())
	assert.Equal(t, 1, g.EdgeNum())

	e1Again, err := g.AddEdge("e1", "A", "B")
	require.NoError(t, err)
	assert.Same(t, e1, e1Again)
	assert.Equal(t, 1, g.EdgeNum())

	a, err := g.GetVertex("A")
	require.NoError(t, err)
	require.Len(t, a.OutEdges, 1)
	assert.Same(t, e1, a.OutEdges[0])

	b, err := g.GetVertex("B")
	require.NoError(t, err)
	require.Len(t, b.InEdges, 1)
	assert.Same(t, e1, b.InEdges[0])
}

func TestMultiEdgesPermitted(t *testing.T) {
	g := core.NewGraph(2, 2)
	e1, err := g.AddEdge("e1", "A", "B")
	require.NoError(t, err)
	e2, err := g.AddEdge("e2", "A", "B")
	require.NoError(t, err)

	assert.NotEqual(t, e1.Idx, e2.Idx)

	a, err := g.GetVertex("A")
	require.NoError(t, err)
	assert.Len(t, a.OutEdges, 2)
}

func TestGetVertexAndEdgeLookupFailures(t *testing.T) {
	g := core.NewGraph(0, 0)

	_, err := g.GetVertex("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.GetEdge("missing")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	_, err = g.GetVertexByIdx(0)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	_, err = g.GetEdgeByIdx(0)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestGetEdgeBetweenFirstMatchWins(t *testing.T) {
	g := core.NewGraph(2, 2)
	e1, err := g.AddEdge("e1", "A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("e2", "A", "B")
	require.NoError(t, err)

	got, err := g.GetEdgeBetween("A", "B")
	require.NoError(t, err)
	assert.Same(t, e1, got)

	_, err = g.GetEdgeBetween("B", "A")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// Idx must equal insertion order, regardless of vertex/edge interleaving.
func TestIndexStabilityAcrossMixedInsertions(t *testing.T) {
	g := core.NewGraph(3, 3)
	v1, _ := g.AddVertex("v1")
	e1, _ := g.AddEdge("e1", "v1", "v2")
	v2, _ := g.GetVertex("v2")
	e2, _ := g.AddEdge("e2", "v2", "v3")
	v3, _ := g.GetVertex("v3")

	assert.Equal(t, 0, v1.Idx)
	assert.Equal(t, 1, v2.Idx)
	assert.Equal(t, 2, v3.Idx)
	assert.Equal(t, 0, e1.Idx)
	assert.Equal(t, 1, e2.Idx)
}
