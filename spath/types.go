// Package spath implements the core shortest-path algorithms over
// sgraph.Graph: dense Dijkstra, heap Dijkstra with early termination, A*,
// and a negative-edge Dijkstra with cycle detection.
package spath

// Result is the shared output shape for every algorithm in this package:
// the node sequence from origin to destination and its total length.
type Result struct {
	Path   []int
	Length float64
}

// Heuristic estimates the remaining distance from node v to the
// destination. For A* to return an optimal path it must be admissible
// (never overestimate the true remaining shortest-path distance).
type Heuristic func(v int) float64

// pqItem is a (distance, node) pair stored in the binary heap used by
// HeapDijkstra, AStar, and DijkstraNegative. The heap never supports
// decrease-key: a cheaper distance for a node already in the heap is
// pushed as a new item, and stale pops are detected and skipped by
// comparing the item's recorded distance against the current best.
type pqItem struct {
	dist float64
	node int
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// reconstructPath walks predecessor[] from destination back to origin and
// reverses it. It assumes destination is reachable (predecessor chain
// terminates at origin via the -1 sentinel on origin itself).
func reconstructPath(predecessor []int, origin, destination int) []int {
	path := []int{destination}
	cur := destination
	for cur != origin {
		cur = predecessor[cur]
		path = append(path, cur)
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
