// Package sptree builds whole-source shortest-path trees (C3) and serves
// repeat point-to-point queries against a cache of them (C4), so a
// symmetric graph only pays the O((N+M) log N) tree-build cost once per
// distinct source.
package sptree

import (
	"container/heap"
	"math"

	"github.com/routegraph/routegraph/sgraph"
)

// Tree is an immutable shortest-path tree rooted at Source. Distance[i]
// is +Inf for nodes unreachable from Source; Predecessor[i] is -1 for
// Source itself and for unreachable nodes.
type Tree struct {
	Source      int
	Distance    []float64
	Predecessor []int
}

// BuildTree runs heap Dijkstra to completion from source, with no
// destination early-termination, over a graph whose weights are all
// non-negative. Complexity O((N+M) log N).
func BuildTree(g *sgraph.Graph, source int) (*Tree, error) {
	if err := sgraph.InputCheck(g, source, source); err != nil {
		return nil, err
	}
	n := g.Len()
	distance := make([]float64, n)
	predecessor := make([]int, n)
	for i := range distance {
		distance[i] = math.Inf(1)
		predecessor[i] = -1
	}
	distance[source] = 0

	pq := &priorityQueue{{dist: 0, node: source}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		if item.dist > distance[item.node] {
			continue
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

	return &Tree{Source: source, Distance: distance, Predecessor: predecessor}, nil
}

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
