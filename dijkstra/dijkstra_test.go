package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhstar/dhstar/core"
	"github.com/dhstar/dhstar/dijkstra"
)

// Scenario 1: two-vertex chain.
func TestEngineRunTwoVertexChain(t *testing.T) {
	g := core.NewGraph(3, 2)
	_, err := g.AddEdge("e1", "v1", "v2")
	require.NoError(t, err)
	_, err = g.AddEdge("e2", "v2", "v3")
	require.NoError(t, err)

	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)
	require.NoError(t, e.SetWeights([]float64{1.5, 0.7}))
	require.NoError(t, e.Run("v1"))

	u1, err := e.GetPotential("v1")
	require.NoError(t, err)
	u2, err := e.GetPotential("v2")
	require.NoError(t, err)
	u3, err := e.GetPotential("v3")
	require.NoError(t, err)

	assert.Equal(t, 0.0, u1)
	assert.InDelta(t, 1.5, u2, 1e-9)
	assert.InDelta(t, 2.2, u3, 1e-9)

	path, err := e.GetPath("v1", "v3")
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2", "v3"}, path)
}

// Scenario 2: unreachable destination.
func TestEngineRunUnreachable(t *testing.T) {
	g := core.NewGraph(4, 2)
	_, err := g.AddEdge("e1", "v1", "v2")
	require.NoError(t, err)
	_, err = g.AddEdge("e2", "v4", "v3")
	require.NoError(t, err)

	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)
	require.NoError(t, e.SetWeights([]float64{1, 1}))
	require.NoError(t, e.Run("v1"))

	_, err = e.GetPath("v1", "v3")
	assert.ErrorIs(t, err, dijkstra.ErrNotReachable)
	assert.False(t, e.Reachable("v3"))

	u3, err := e.GetPotential("v3")
	require.NoError(t, err)
	assert.True(t, math.IsInf(u3, 1))
}

// Scenario 6: recover idempotence.
func TestEngineRecoverIdempotence(t *testing.T) {
	g := core.NewGraph(3, 2)
	_, err := g.AddEdge("e1", "v1", "v2")
	require.NoError(t, err)
	_, err = g.AddEdge("e2", "v2", "v3")
	require.NoError(t, err)

	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)
	require.NoError(t, e.SetWeights([]float64{1.5, 0.7}))

	require.NoError(t, e.Run("v1"))
	first := e.Potentials()

	e.Recover()
	require.NoError(t, e.Run("v1"))
	second := e.Potentials()

	assert.Equal(t, first, second)
}

func TestEngineSetWeightsValidation(t *testing.T) {
	g := core.NewGraph(2, 1)
	_, err := g.AddEdge("e1", "v1", "v2")
	require.NoError(t, err)

	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)

	assert.ErrorIs(t, e.SetWeights([]float64{1, 2}), dijkstra.ErrWeightLength)
	assert.ErrorIs(t, e.SetWeights([]float64{-1}), dijkstra.ErrNegativeWeight)
}

func TestEngineRunWithoutWeights(t *testing.T) {
	g := core.NewGraph(1, 0)
	_, err := g.AddVertex("v1")
	require.NoError(t, err)

	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)

	assert.ErrorIs(t, e.Run("v1"), dijkstra.ErrNotInitialized)
}

func TestNewEngineNilGraph(t *testing.T) {
	_, err := dijkstra.NewEngine(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestWithMaxWeightRejectsNonPositive(t *testing.T) {
	g := core.NewGraph(1, 0)
	assert.Panics(t, func() {
		_, _ = dijkstra.NewEngine(g, dijkstra.WithMaxWeight(0))
	})
}

// Dijkstra optimality invariant: a cheaper multi-edge route must win over
// a single expensive direct edge.
func TestEngineOptimalityWithAlternatePaths(t *testing.T) {
	g := core.NewGraph(4, 4)
	_, err := g.AddEdge("direct", "v1", "v4")
	require.NoError(t, err)
	_, err = g.AddEdge("e1", "v1", "v2")
	require.NoError(t, err)
	_, err = g.AddEdge("e2", "v2", "v3")
	require.NoError(t, err)
	_, err = g.AddEdge("e3", "v3", "v4")
	require.NoError(t, err)

	e, err := dijkstra.NewEngine(g)
	require.NoError(t, err)
	require.NoError(t, e.SetWeights([]float64{10, 1, 1, 1}))
	require.NoError(t, e.Run("v1"))

	u4, err := e.GetPotential("v4")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, u4, 1e-9)

	path, err := e.GetPath("v1", "v4")
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2", "v3", "v4"}, path)
}
