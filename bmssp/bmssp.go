package bmssp

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/routegraph/routegraph/rgerr"
	"github.com/routegraph/routegraph/sgraph"
	"github.com/routegraph/routegraph/spath"
)

// BMSSP computes the shortest path from origin to destination using the
// bounded multi-source recursion. It constructs the single-source
// instance internally (frontier = {origin}) and reconstructs the final
// path from the shared predecessor array once the recursion completes.
func BMSSP(g *sgraph.Graph, origin, destination int) (spath.Result, error) {
	if err := sgraph.InputCheck(g, origin, destination); err != nil {
		return spath.Result{}, err
	}
	if g.Len() <= 2 {
		return spath.Result{}, fmt.Errorf("%w: bmssp requires more than 2 nodes", rgerr.ErrInvalidGraph)
	}

	s := newSolver(g, origin)
	s.recursiveBMSSP(s.level, math.Inf(1), []int{origin})

	if math.IsInf(s.distance[destination], 1) {
		return spath.Result{}, fmt.Errorf("%w: node %d unreachable from %d", rgerr.ErrDisconnected, destination, origin)
	}
	return spath.Result{
		Path:   reconstructPath(s.predecessor, origin, destination),
		Length: s.distance[destination],
	}, nil
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

// baseCase runs a restricted single-source Dijkstra from the single node
// in frontier, relaxing only edges that stay below upperBound. It finalizes
// (pops) nodes one at a time, relaxing each one's edges before checking the
// stop condition, and stops once k+1 distinct nodes have been finalized
// (the (k+1)th node's own edges are relaxed before the loop exits). If at
// most k were finalized, the whole reached set is returned with bound
// upperBound; otherwise the bound tightens to the max finalized distance
// and only the nodes strictly below it are kept.
func (s *solver) baseCase(upperBound float64, frontier []int) (float64, []int) {
	source := frontier[0]
	finalized := make([]int, 0, s.k+1)
	finalizedSet := make(map[int]struct{})

	pq := &priorityQueue{{dist: s.distance[source], node: source}}
	heap.Init(pq)

	for pq.Len() > 0 && len(finalized) < s.k+1 {
		item := heap.Pop(pq).(pqItem)
		if item.dist > s.distance[item.node] {
			continue
		}
		if _, done := finalizedSet[item.node]; done {
			continue
		}
		finalizedSet[item.node] = struct{}{}
		finalized = append(finalized, item.node)
		for v, w := range s.g.Adj[item.node] {
			nd := item.dist + w
			if nd > s.distance[v] || nd >= upperBound {
				continue
			}
			if nd < s.distance[v] {
				s.distance[v] = nd
				s.predecessor[v] = item.node
			}
			heap.Push(pq, pqItem{dist: nd, node: v})
		}
	}

	if len(finalized) <= s.k {
		return upperBound, finalized
	}

	newBound := 0.0
	for _, v := range finalized {
		if s.distance[v] > newBound {
			newBound = s.distance[v]
		}
	}
	out := finalized[:0:0]
	for _, v := range finalized {
		if s.distance[v] < newBound {
			out = append(out, v)
		}
	}
	return newBound, out
}

// findPivots runs up to k rounds of limited relaxation from frontier,
// expanding only within distance < upperBound. If the reached set ever
// exceeds k*|frontier|, it short-circuits returning frontier itself as
// the pivot set. Otherwise it builds the tight-edge forest over the
// reached set and returns, as pivots, the frontier roots whose subtree
// size is >= k.
func (s *solver) findPivots(upperBound float64, frontier []int) (pivots []int, reached []int) {
	reachedSet := make(map[int]struct{}, len(frontier))
	for _, v := range frontier {
		reachedSet[v] = struct{}{}
	}
	layer := append([]int(nil), frontier...)

	for round := 0; round < s.k; round++ {
		var next []int
		for _, u := range layer {
			for v, w := range s.g.Adj[u] {
				nd := s.distance[u] + w
				if nd <= s.distance[v] && nd < upperBound {
					s.distance[v] = nd
					s.predecessor[v] = u
					if _, ok := reachedSet[v]; !ok {
						reachedSet[v] = struct{}{}
						next = append(next, v)
					}
				}
			}
		}
		if len(reachedSet) > s.k*len(frontier) {
			return frontier, setToSlice(reachedSet)
		}
		if len(next) == 0 {
			break
		}
		layer = next
	}

	reached = setToSlice(reachedSet)

	// Build the tight-edge forest over the reached set: an edge (u,v) is
	// tight when distance[u]+w(u,v) == distance[v]. indegree counts how
	// many tight edges point into each reached node; children maps a
	// reached node to its tight-edge children within the reached set.
	indegree := make(map[int]int, len(reached))
	children := make(map[int][]int, len(reached))
	for _, v := range reached {
		indegree[v] = 0
	}
	for _, u := range reached {
		for v, w := range s.g.Adj[u] {
			if _, ok := reachedSet[v]; !ok {
				continue
			}
			if s.distance[u]+w == s.distance[v] && s.predecessor[v] == u {
				children[u] = append(children[u], v)
				indegree[v]++
			}
		}
	}

	for _, v := range frontier {
		if indegree[v] != 0 {
			continue
		}
		if subtreeSize(v, children) >= s.k {
			pivots = append(pivots, v)
		}
	}
	return pivots, reached
}

func subtreeSize(root int, children map[int][]int) int {
	count := 1
	for _, c := range children[root] {
		count += subtreeSize(c, children)
	}
	return count
}

func setToSlice(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	return out
}

// recursiveBMSSP implements the heart of the algorithm (spec §4.2.5). At
// level 0 it delegates to baseCase; otherwise it pivots, buckets the
// pivots, and recurses on successively smaller sub-frontiers pulled from
// the bucket, relaxing edges out of each sub-result and re-inserting or
// batch-prepending improved nodes depending on which distance band they
// land in.
func (s *solver) recursiveBMSSP(level int, upperBound float64, frontier []int) (float64, []int) {
	if level == 0 {
		return s.baseCase(upperBound, frontier)
	}

	pivots, reached := s.findPivots(upperBound, frontier)

	subsetSize := 1 << uint((level-1)*s.t)
	d := newBucket(subsetSize, upperBound)
	for _, p := range pivots {
		d.insert(p, s.distance[p])
	}

	workBudget := math.Pow(float64(s.k), float64(2*level*s.t))

	var newFrontier []int
	lastBPrime := upperBound

	for float64(len(newFrontier)) < workBudget && !d.isEmpty() {
		bi, si := d.pull()
		if len(si) == 0 {
			break
		}
		bPrimeI, ui := s.recursiveBMSSP(level-1, bi, si)
		lastBPrime = bPrimeI
		newFrontier = append(newFrontier, ui...)

		var staged []keyValue
		for _, u := range ui {
			for v, w := range s.g.Adj[u] {
				nd := s.distance[u] + w
				if nd > s.distance[v] {
					continue
				}
				if nd < s.distance[v] {
					s.distance[v] = nd
					s.predecessor[v] = u
				}
				if nd >= bi && nd < upperBound {
					d.insert(v, nd)
				} else if nd >= bPrimeI && nd < bi {
					staged = append(staged, keyValue{key: v, value: nd})
				}
			}
		}
		for _, v := range si {
			if s.distance[v] >= bPrimeI && s.distance[v] < bi {
				staged = append(staged, keyValue{key: v, value: s.distance[v]})
			}
		}
		d.batchPrepend(staged)
	}

	finalBound := lastBPrime
	if upperBound < finalBound {
		finalBound = upperBound
	}
	for _, v := range reached {
		if s.distance[v] < lastBPrime {
			newFrontier = append(newFrontier, v)
		}
	}
	return finalBound, dedup(newFrontier)
}

func dedup(vs []int) []int {
	seen := make(map[int]struct{}, len(vs))
	out := vs[:0]
	for _, v := range vs {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
