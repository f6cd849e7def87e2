package sgraph

import (
	"fmt"

	"github.com/routegraph/routegraph/rgerr"
)

// Validate checks structural invariants of g and fails with
// rgerr.ErrInvalidGraph on the first violation found:
//   - any adjacency target out of range [0, g.Len())
//   - any edge weight that is NaN
//   - (checkSymmetry) some (u,v,w) present without a matching (v,u,w)
//   - (checkConnected) some index unreachable from index 0 by undirected BFS
//
// checkConnected implies checkSymmetry, since the connectivity check walks
// edges in both directions and a meaningful "connected" answer for a
// directed graph requires symmetry to already hold.
func Validate(g *Graph, checkSymmetry, checkConnected bool) error {
	if checkConnected {
		checkSymmetry = true
	}
	n := g.Len()
	for u, nbrs := range g.Adj {
		for v, w := range nbrs {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: node %d has neighbor %d out of range [0,%d)", rgerr.ErrInvalidGraph, u, v, n)
			}
			if w != w { // NaN check without importing math
				return fmt.Errorf("%w: node %d has non-numeric weight to %d", rgerr.ErrInvalidGraph, u, v)
			}
		}
	}
	if checkSymmetry {
		for u, nbrs := range g.Adj {
			for v, w := range nbrs {
				back, ok := g.Adj[v][u]
				if !ok || back != w {
					return fmt.Errorf("%w: edge %d->%d (weight %v) has no matching reverse edge", rgerr.ErrInvalidGraph, u, v, w)
				}
			}
		}
	}
	if checkConnected {
		if n == 0 {
			return nil
		}
		if !connected(g) {
			return fmt.Errorf("%w: graph is not connected from node 0", rgerr.ErrInvalidGraph)
		}
	}
	return nil
}

// connected reports whether every node is reachable from node 0 via an
// undirected BFS over Adj keys, regardless of edge direction.
func connected(g *Graph) bool {
	n := g.Len()
	visited := make([]bool, n)
	visited[0] = true
	queue := make([]int, 1, n)
	queue[0] = 0
	count := 1
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := range g.Adj[u] {
			if !visited[v] {
				visited[v] = true
				count++
				queue = append(queue, v)
			}
		}
	}
	return count == n
}

// InputCheck fails with rgerr.ErrInvalidEndpoint if origin or destination
// is out of [0, g.Len()).
func InputCheck(g *Graph, origin, destination int) error {
	n := g.Len()
	if origin < 0 || origin >= n {
		return fmt.Errorf("%w: origin %d out of range [0,%d)", rgerr.ErrInvalidEndpoint, origin, n)
	}
	if destination < 0 || destination >= n {
		return fmt.Errorf("%w: destination %d out of range [0,%d)", rgerr.ErrInvalidEndpoint, destination, n)
	}
	return nil
}
