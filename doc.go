// Package routegraph is a dependency-free shortest-path library for sparse
// weighted graphs, plus two domain specializations built on top of it.
//
// Under the hood, everything is organized under one-concern-per-package
// subpackages:
//
//	rgerr/     — shared sentinel error taxonomy
//	sgraph/    — sparse weighted graph type and validation
//	spath/     — dense/heap Dijkstra, A*, negative-weight Dijkstra
//	bmssp/     — bounded multi-source shortest path
//	sptree/    — shortest-path-tree builder and per-source cache
//	geoutil/   — great-circle distance math
//	kdtree/    — k-d tree spatial index over geographic coordinates
//	geograph/  — shortest paths over geographic (lat/lon) graphs
//	gridgraph/ — shortest paths over integer grids with obstacle cells
//	            and moving-shape collision
//
// geograph and gridgraph both sit on top of sgraph/spath/sptree: a
// GeoGraph or GridGraph compiles its domain model into a plain
// sgraph.Graph once, then answers repeated point-to-point queries against
// it, optionally through a sptree.Cache for O(path length) repeat lookups
// from the same source.
package routegraph
