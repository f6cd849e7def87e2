package spath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/routegraph/routegraph/rgerr"
	"github.com/routegraph/routegraph/sgraph"
)

// AStar is HeapDijkstra with the heap keyed by distance[v] + h(v) instead
// of distance[v] alone. h must be admissible (never overestimate the true
// remaining distance) or the returned path may be suboptimal; AStar does
// not and cannot verify this, so admissibility is the caller's
// responsibility. A closed set ensures a node popped once is never
// re-expanded. A nil heuristic falls back to HeapDijkstra.
func AStar(g *sgraph.Graph, origin, destination int, h Heuristic) (Result, error) {
	if h == nil {
		return HeapDijkstra(g, origin, destination)
	}
	if err := sgraph.InputCheck(g, origin, destination); err != nil {
		return Result{}, err
	}
	n := g.Len()
	distance := make([]float64, n)
	predecessor := make([]int, n)
	closed := make([]bool, n)
	for i := range distance {
		distance[i] = math.Inf(1)
		predecessor[i] = -1
	}
	distance[origin] = 0

	pq := &priorityQueue{{dist: h(origin), node: origin}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		u := item.node
		if closed[u] {
			continue
		}
		closed[u] = true
		if u == destination {
			return Result{
				Path:   reconstructPath(predecessor, origin, destination),
				Length: distance[destination],
			}, nil
		}
		for v, w := range g.Adj[u] {
			if closed[v] {
				continue
			}
			nd := distance[u] + w
			if nd < distance[v] {
				distance[v] = nd
				predecessor[v] = u
				heap.Push(pq, pqItem{dist: nd + h(v), node: v})
			}
		}
	}

	return Result{}, fmt.Errorf("%w: node %d unreachable from %d", rgerr.ErrDisconnected, destination, origin)
}
