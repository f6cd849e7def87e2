package sgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegraph/routegraph/rgerr"
	"github.com/routegraph/routegraph/sgraph"
)

// microGraph is the scenario graph from the concrete test corpus:
// origin 0 -> destination 5 has shortest length 10 via [0,2,1,3,5].
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

func TestValidateMicroGraph(t *testing.T) {
	g := microGraph()
	require.NoError(t, sgraph.Validate(g, true, true))
}

func TestValidateOutOfRange(t *testing.T) {
	g := sgraph.New(3)
	g.AddEdge(0, 9, 1)
	err := sgraph.Validate(g, false, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rgerr.ErrInvalidGraph))
}

func TestValidateAsymmetric(t *testing.T) {
	g := sgraph.New(2)
	g.AddEdge(0, 1, 1)
	err := sgraph.Validate(g, true, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rgerr.ErrInvalidGraph))
}

func TestValidateDisconnected(t *testing.T) {
	g := sgraph.New(3)
	g.AddUndirectedEdge(0, 1, 1)
	err := sgraph.Validate(g, true, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rgerr.ErrInvalidGraph))
}

func TestInputCheck(t *testing.T) {
	g := sgraph.New(3)
	require.NoError(t, sgraph.InputCheck(g, 0, 2))
	err := sgraph.InputCheck(g, -1, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rgerr.ErrInvalidEndpoint))
	err = sgraph.InputCheck(g, 0, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rgerr.ErrInvalidEndpoint))
}

func TestCloneIndependence(t *testing.T) {
	g := microGraph()
	cp := g.Clone()
	cp.AddEdge(0, 1, 999)
	assert.NotEqual(t, g.Adj[0][1], cp.Adj[0][1])
}

func TestAppendTruncate(t *testing.T) {
	g := microGraph()
	n := g.Len()
	idx := g.AppendNode()
	assert.Equal(t, n, idx)
	g.AddEdge(idx, 0, 2.5)
	g.Truncate(n)
	assert.Equal(t, n, g.Len())
}
