// Package bmssp is deliberately tested for agreement with spath rather
// than in isolation: its correctness criterion is that it returns the
// same shortest-path length as HeapDijkstra on every graph it is valid
// for (N > 2). See the routegraph-wide soundness property covering all
// five algorithms.
package bmssp
