package bmssp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegraph/routegraph/bmssp"
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

func TestMicroGraphAgreesWithHeapDijkstra(t *testing.T) {
	g := microGraph()
	want, err := spath.HeapDijkstra(g, 0, 5)
	require.NoError(t, err)

	got, err := bmssp.BMSSP(g, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, want.Length, got.Length)
}

func TestDisconnectedFails(t *testing.T) {
	g := sgraph.New(4)
	g.AddUndirectedEdge(0, 1, 1)
	g.AddUndirectedEdge(2, 3, 1)
	_, err := bmssp.BMSSP(g, 0, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rgerr.ErrDisconnected))
}

func TestTooSmallGraphRejected(t *testing.T) {
	g := sgraph.New(2)
	g.AddUndirectedEdge(0, 1, 1)
	_, err := bmssp.BMSSP(g, 0, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rgerr.ErrInvalidGraph))
}

func TestLargerRandomishGraphAgreement(t *testing.T) {
	// A slightly larger deterministic grid-of-edges graph to exercise
	// more than one recursion level.
	n := 30
	g := sgraph.New(n)
	for i := 0; i < n-1; i++ {
		g.AddUndirectedEdge(i, i+1, float64(1+i%5))
	}
	for i := 0; i+7 < n; i += 3 {
		g.AddUndirectedEdge(i, i+7, float64(2+i%4))
	}
	want, err := spath.HeapDijkstra(g, 0, n-1)
	require.NoError(t, err)
	got, err := bmssp.BMSSP(g, 0, n-1)
	require.NoError(t, err)
	assert.Equal(t, want.Length, got.Length)
}
