package sptree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegraph/routegraph/sgraph"
	"github.com/routegraph/routegraph/sptree"
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

func TestBuildTreeConsistency(t *testing.T) {
	g := microGraph()
	tree, err := sptree.BuildTree(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tree.Distance[0])
	assert.Equal(t, -1, tree.Predecessor[0])
	assert.Equal(t, 10.0, tree.Distance[5])

	// Walking predecessors from 5 and summing edge weights must equal
	// tree.Distance[5].
	sum := 0.0
	cur := 5
	for cur != 0 {
		prev := tree.Predecessor[cur]
		sum += g.Adj[prev][cur]
		cur = prev
	}
	assert.Equal(t, tree.Distance[5], sum)
}

func TestCacheReusesTreeAcrossDestinations(t *testing.T) {
	g := microGraph()
	cache := sptree.NewCache(g)

	res1, err := cache.GetShortestPath(0, 5, false)
	require.NoError(t, err)
	assert.Equal(t, 10.0, res1.Length)
	assert.Equal(t, []int{0, 2, 1, 3, 5}, res1.Path)

	res2, err := cache.GetShortestPath(0, 4, false)
	require.NoError(t, err)
	assert.Equal(t, 7.0, res2.Length)
}

func TestCacheLengthOnly(t *testing.T) {
	g := microGraph()
	cache := sptree.NewCache(g)
	res, err := cache.GetShortestPath(0, 5, true)
	require.NoError(t, err)
	assert.Equal(t, 10.0, res.Length)
	assert.Nil(t, res.Path)
}
