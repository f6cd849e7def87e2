package spath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/routegraph/routegraph/rgerr"
	"github.com/routegraph/routegraph/sgraph"
)

// HeapDijkstra is the default shortest-path algorithm: a binary min-heap
// keyed by tentative distance, with lazy deletion instead of decrease-key.
// A popped item is skipped when its recorded distance no longer matches
// the node's current best distance. The search terminates as soon as the
// destination is popped. Complexity O((N+M) log N).
func HeapDijkstra(g *sgraph.Graph, origin, destination int) (Result, error) {
	if err := sgraph.InputCheck(g, origin, destination); err != nil {
		return Result{}, err
	}
	n := g.Len()
	distance := make([]float64, n)
	predecessor := make([]int, n)
	for i := range distance {
		distance[i] = math.Inf(1)
		predecessor[i] = -1
	}
	distance[origin] = 0

	pq := &priorityQueue{{dist: 0, node: origin}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		if item.dist > distance[item.node] {
			continue // stale entry, a cheaper path was already relaxed
		}
		if item.node == destination {
			return Result{
				Path:   reconstructPath(predecessor, origin, destination),
				Length: distance[destination],
			}, nil
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

	return Result{}, fmt.Errorf("%w: node %d unreachable from %d", rgerr.ErrDisconnected, destination, origin)
}
