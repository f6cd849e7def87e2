// sgraph's Graph is the single shared representation underneath every
// algorithm package in routegraph (spath, bmssp, sptree) and every
// specialization (geograph, gridgraph).
//
// Complexity notes:
//   - AddEdge/RemoveEdge/AppendNode/Truncate: O(1) amortized.
//   - Clone: O(N+M).
//   - Validate: O(N+M), or O(N+M) again for the connectivity BFS when
//     checkConnected is requested.
package sgraph
