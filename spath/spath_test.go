package spath_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegraph/routegraph/rgerr"
	"github.com/routegraph/routegraph/sgraph"
	"github.com/routegraph/routegraph/spath"
)

func microGraph() *sgraph.Graph {
	g := sgraph.New(6)
	g.AddUndirectedEdge(0, 1, 5)
	g.AddUndirectedEdge(0, 2, 1)
	g.AddUndirectedEdge(1, 2, 2)
	g.AddUndirectedEdge(1, 3, 1)
	g.AddUndirectedEdge(2, 3, 4)
	g.AddUndirectedEdge(2, 4, 8)
	g.AddUndirectedEdge(3, 4, 3)
	g.AddUndirectedEdge(3, 5, 6)
	return g
}

func TestMicroGraphScenario(t *testing.T) {
	g := microGraph()
	want := []int{0, 2, 1, 3, 5}

	dense, err := spath.DenseDijkstra(g, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, dense.Length)
	assert.Equal(t, want, dense.Path)

	heap, err := spath.HeapDijkstra(g, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, heap.Length)
	assert.Equal(t, want, heap.Path)

	star, err := spath.AStar(g, 0, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, star.Length)
	assert.Equal(t, want, star.Path)

	neg, err := spath.DijkstraNegative(g, 0, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, neg.Length)
	assert.Equal(t, want, neg.Path)
}

func TestDisconnected(t *testing.T) {
	g := sgraph.New(3)
	g.AddUndirectedEdge(0, 1, 1)
	_, err := spath.HeapDijkstra(g, 0, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rgerr.ErrDisconnected))
}

func TestAStarAdmissibleHeuristic(t *testing.T) {
	g := microGraph()
	// a trivially admissible (always zero) heuristic behaves like plain Dijkstra
	res, err := spath.AStar(g, 0, 5, func(v int) float64 { return 0 })
	require.NoError(t, err)
	assert.Equal(t, 10.0, res.Length)
}

func TestNegativeCycleDetection(t *testing.T) {
	g := sgraph.New(3)
	g.AddEdge(0, 1, -5)
	g.AddEdge(1, 2, 2)
	g.AddEdge(2, 0, 2)
	_, err := spath.DijkstraNegative(g, 0, 1, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rgerr.ErrNegativeCycle))
}

func TestNegativeWithoutCycleSucceeds(t *testing.T) {
	g := sgraph.New(3)
	g.AddEdge(0, 1, -1)
	g.AddEdge(1, 2, 2)
	g.AddEdge(2, 0, 2)
	res, err := spath.DijkstraNegative(g, 0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, -1.0, res.Length)
}
