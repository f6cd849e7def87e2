package spath

import (
	"fmt"
	"math"

	"github.com/routegraph/routegraph/rgerr"
	"github.com/routegraph/routegraph/sgraph"
)

// DenseDijkstra is the O(N^2) reference implementation: at each of up to N
// rounds it scans every node for the minimum "branch tip" distance rather
// than using a heap. It is provided mainly as a correctness oracle for the
// faster algorithms in this package, not for production use on large
// graphs.
func DenseDijkstra(g *sgraph.Graph, origin, destination int) (Result, error) {
	if err := sgraph.InputCheck(g, origin, destination); err != nil {
		return Result{}, err
	}
	n := g.Len()
	distance := make([]float64, n)
	predecessor := make([]int, n)
	branchTip := make([]float64, n)
	for i := 0; i < n; i++ {
		distance[i] = math.Inf(1)
		predecessor[i] = -1
		branchTip[i] = math.Inf(1)
	}
	distance[origin] = 0
	branchTip[origin] = 0

	for {
		u := -1
		min := math.Inf(1)
		for i := 0; i < n; i++ {
			if branchTip[i] < min {
				min = branchTip[i]
				u = i
			}
		}
		if u == -1 || math.IsInf(min, 1) {
			return Result{}, fmt.Errorf("%w: node %d unreachable from %d", rgerr.ErrDisconnected, destination, origin)
		}
		branchTip[u] = math.Inf(1)
		if u == destination {
			break
		}
		for v, w := range g.Adj[u] {
			nd := distance[u] + w
			if nd < distance[v] {
				distance[v] = nd
				branchTip[v] = nd
				predecessor[v] = u
			}
		}
	}

	return Result{
		Path:   reconstructPath(predecessor, origin, destination),
		Length: distance[destination],
	}, nil
}
