// Overview
//
// gridgraph compiles an (xSize x ySize) integer grid plus a set of blocked
// cells plus a moving polygonal shape into a sgraph.Graph whose edges
// respect the shape's swept-volume collision rule: a diagonal step is
// forbidden whenever the shape's silhouette, swept from the cell origin to
// the destination cell over t in [0,1], overlaps a blocked cell (the
// "corner squeeze" rule). GetShortestPath then answers point-to-point
// queries against the compiled graph, accepting non-integer endpoints by
// snapping to the closest connected integer corner cell and recording the
// leftover Euclidean leg.
//
// When to use
//
// Use gridgraph for obstacle-aware routing on a regular grid: tile-based
// maps, warehouse floor plans, any domain where a moving footprint (not a
// point) must clear corners. For routing over real-world coordinates, use
// geograph instead.
//
// Complexity
//
// New compiles the graph in O(xSize*ySize*len(connData)) time. Each
// blocked cell additionally costs O(len(connData)*sweptOffsets) to clear
// the edges it forbids. GetShortestPath is O((N+M) log N) via spath.AStar
// (or sptree.Cache's amortized cost when cache=true).
//
// Errors
//
// New fails rgerr.ErrInvalidArgument for a non-positive xSize/ySize or a
// degenerate (fewer than 3 vertices) shape. GetShortestPath fails
// rgerr.ErrUnreachable when an endpoint has no connected closest cell, or
// rgerr.ErrDisconnected when the graph search completes without reaching
// the destination.
package gridgraph
