package spath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/routegraph/routegraph/rgerr"
	"github.com/routegraph/routegraph/sgraph"
)

// DefaultCycleCheckIterations is used by DijkstraNegative when the caller
// passes 0: every Nth pop, walk the predecessor chain back from the node
// just popped and fail if it revisits itself.
const DefaultCycleCheckIterations = 0 // 0 means "use N", resolved in DijkstraNegative

// DijkstraNegative is HeapDijkstra's heap structure without early
// termination: the full spanning tree is always completed, since a
// negative edge discovered later could still improve an already-popped
// node's neighbors along a different branch. Every cycleCheckIterations
// pops (0 or negative defaults to N), the predecessor chain from the node
// just popped is walked; if the walk revisits its own start before
// reaching the -1 sentinel, a negative cycle is reachable from origin and
// the search fails with rgerr.ErrNegativeCycle. Complexity is not
// polynomially bounded for pathological negative-weight inputs.
func DijkstraNegative(g *sgraph.Graph, origin, destination int, cycleCheckIterations int) (Result, error) {
	if err := sgraph.InputCheck(g, origin, destination); err != nil {
		return Result{}, err
	}
	n := g.Len()
	if cycleCheckIterations <= 0 {
		cycleCheckIterations = n
	}
	distance := make([]float64, n)
	predecessor := make([]int, n)
	for i := range distance {
		distance[i] = math.Inf(1)
		predecessor[i] = -1
	}
	distance[origin] = 0

	pq := &priorityQueue{{dist: 0, node: origin}}
	heap.Init(pq)

	pops := 0
	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		if item.dist > distance[item.node] {
			continue
		}
		pops++
		if pops%cycleCheckIterations == 0 {
			if hasCycle(predecessor, item.node) {
				return Result{}, fmt.Errorf("%w: reachable from node %d", rgerr.ErrNegativeCycle, origin)
			}
		}
		for v, w := range g.Adj[item.node] {
			nd := item.dist + w
			if nd < distance[v] {
				distance[v] = nd
				predecessor[v] = item.node
				heap.Push(pq, pqItem{dist: nd, node: v})
			}
		}
	}

	if math.IsInf(distance[destination], 1) {
		return Result{}, fmt.Errorf("%w: node %d unreachable from %d", rgerr.ErrDisconnected, destination, origin)
	}
	return Result{
		Path:   reconstructPath(predecessor, origin, destination),
		Length: distance[destination],
	}, nil
}

// hasCycle walks the predecessor chain starting at node and reports
// whether it revisits node before reaching the -1 sentinel.
func hasCycle(predecessor []int, node int) bool {
	cur := predecessor[node]
	for cur != -1 {
		if cur == node {
			return true
		}
		cur = predecessor[cur]
	}
	return false
}
