// Package bmssp implements the Bounded Multi-Source Shortest Path solver:
// a recursive, pivot-based algorithm approximating the approach of Duan et
// al. (2024), "Breaking the sorting barrier for SSSP". It answers a single
// (origin, destination) query by building the shortest-path tree from
// origin in expected work below O((N+M) log N) for favorable M, using a
// bucketed priority structure instead of a single flat heap.
package bmssp

import (
	"math"

	"github.com/routegraph/routegraph/sgraph"
)

// solver carries the state shared across the whole recursion: the graph,
// the running distance/predecessor labels, and the three derived
// parameters k, t, L.
type solver struct {
	g           *sgraph.Graph
	distance    []float64
	predecessor []int
	k           int
	t           int
	level       int // L, the top recursion level
}

// pqItem/priorityQueue back baseCase's restricted Dijkstra; kept separate
// from bucket's heap since baseCase needs plain (dist,node) ordering with
// the usual lazy-deletion discipline, not keyed best-value tracking.
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

func newSolver(g *sgraph.Graph, origin int) *solver {
	n := g.Len()
	logN := math.Log(float64(n))
	k := int(math.Floor(math.Pow(logN, 1.0/3.0)))
	if k < 2 {
		k = 2
	}
	t := int(math.Ceil(math.Pow(logN, 2.0/3.0)))
	if t < 2 {
		t = 2
	}
	level := int(math.Ceil(logN / float64(t)))
	if level < 0 {
		level = 0
	}

	distance := make([]float64, n)
	predecessor := make([]int, n)
	for i := range distance {
		distance[i] = math.Inf(1)
		predecessor[i] = -1
	}
	distance[origin] = 0

	return &solver{
		g:           g,
		distance:    distance,
		predecessor: predecessor,
		k:           k,
		t:           t,
		level:       level,
	}
}
