package sptree

import (
	"fmt"
	"math"

	"github.com/routegraph/routegraph/rgerr"
	"github.com/routegraph/routegraph/sgraph"
	"github.com/routegraph/routegraph/spath"
)

// Cache is a length-N slot array of lazily-built trees over a fixed
// graph. A nil slot means "not yet computed." Filled slots are
// append-only and never evicted; callers who need bounded memory are
// expected to discard the whole Cache (and its graph) and start over.
//
// Symmetry of the underlying graph is required: the same tree serves
// both the (origin,destination) and (destination,origin) query shapes.
// Callers are responsible for having validated the graph for symmetry, or
// for deliberately opting out of that guarantee.
type Cache struct {
	g     *sgraph.Graph
	slots []*Tree
}

// NewCache returns a cache over g with all slots empty.
func NewCache(g *sgraph.Graph) *Cache {
	return &Cache{g: g, slots: make([]*Tree, g.Len())}
}

// Slots exposes the raw slot array for persistence callers (such as
// gridgraph's Export); callers must not mutate the returned slice or its
// entries.
func (c *Cache) Slots() []*Tree { return c.slots }

// RestoreSlots replaces the cache's slot array wholesale, used by
// persistence loaders (such as gridgraph's Import) to repopulate a cache
// from previously serialized trees without recomputation.
func (c *Cache) RestoreSlots(slots []*Tree) { c.slots = slots }

// Grow extends the slot array to match the current length of the
// underlying graph, used after temporary nodes are appended by a caller
// such as geograph.
func (c *Cache) Grow() {
	for len(c.slots) < c.g.Len() {
		c.slots = append(c.slots, nil)
	}
}

// Shrink truncates the slot array back to n entries, used when a caller
// removes temporary nodes it had appended.
func (c *Cache) Shrink(n int) {
	if n < len(c.slots) {
		c.slots = c.slots[:n]
	}
}

// GetShortestPath answers an (origin, destination) query, building and
// caching the tree rooted at origin on first use.
func (c *Cache) GetShortestPath(origin, destination int, lengthOnly bool) (spath.Result, error) {
	if err := sgraph.InputCheck(c.g, origin, destination); err != nil {
		return spath.Result{}, err
	}
	c.Grow()
	tree := c.slots[origin]
	if tree == nil {
		var err error
		tree, err = BuildTree(c.g, origin)
		if err != nil {
			return spath.Result{}, err
		}
		c.slots[origin] = tree
	}

	if math.IsInf(tree.Distance[destination], 1) {
		return spath.Result{}, fmt.Errorf("%w: node %d unreachable from %d", rgerr.ErrDisconnected, destination, origin)
	}

	result := spath.Result{Length: tree.Distance[destination]}
	if !lengthOnly {
		result.Path = reconstructPath(tree.Predecessor, origin, destination)
	}
	return result, nil
}

func reconstructPath(predecessor []int, origin, destination int) []int {
	path := []int{destination}
	cur := destination
	for cur != origin {
		cur = predecessor[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
