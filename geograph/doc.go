// Overview
//
// GeoGraph augments a sparse graph with a parallel lat/lon array, a
// spatial index for nearest-node lookup, and a shortest-path-tree cache,
// so routing queries can take arbitrary off-graph coordinates rather
// than requiring callers to already know a graph index.
//
// Temp-node lifecycle
//
// GetShortestPath's non-cache path appends temporary nodes to G and Nodes
// for the duration of one call, then removes them before returning - on
// every return path, including errors. MergeWithOtherGeoGraph does the
// same to the other graph, while the nodes it adds to the receiver are
// permanent. Outside of a call in progress, len(G) always equals
// len(Nodes) equals OriginalLen: the length captured at construction, or
// the length as of the most recent ModAddNode or MergeWithOtherGeoGraph.
//
// Complexity
//
//   - GetShortestPath (non-cache): dominated by the chosen algorithm,
//     typically O((N+M) log N).
//   - GetShortestPath (cache): O(log N) for node resolution plus the
//     cached tree's O(path length) reconstruction, amortized across
//     repeat queries from the same entry node.
//   - DistanceMatrix: O((N+M) log N * I + I^2) for I query points.
package geograph
