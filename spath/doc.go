// Overview
//
// spath holds four point-to-point shortest-path algorithms that all share
// the same (graph, origin, destination) -> Result contract:
//
//  1. DenseDijkstra   - O(N^2) reference implementation.
//  2. HeapDijkstra    - the default: binary heap, early termination.
//  3. AStar           - HeapDijkstra plus a caller-supplied heuristic.
//  4. DijkstraNegative - drops early termination, adds periodic
//     predecessor-chain cycle detection, tolerates signed weights.
//
// When to use which
//
// Use HeapDijkstra unless one of two things is true: you have an
// admissible heuristic (use AStar), or some edge weights may be negative
// (use DijkstraNegative). DenseDijkstra exists to cross-check the others
// on small graphs in tests; its O(N^2) scan makes it unsuitable past a
// few thousand nodes.
//
// Error handling
//
// Every function fails fast: rgerr.ErrInvalidEndpoint for an out-of-range
// origin/destination, rgerr.ErrDisconnected once the search completes
// without reaching destination, rgerr.ErrNegativeCycle from
// DijkstraNegative's periodic check. None of the four retries or
// recovers; callers own that policy.
package spath
