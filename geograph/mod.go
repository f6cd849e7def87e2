package geograph

import "github.com/routegraph/routegraph/geoutil"

// ModRemoveArc removes the directed edge u->v from the underlying graph.
// This is the one dynamic-edit helper spec.md's Non-goals explicitly
// scope in (the "mod_*" exception): it mutates a validated graph in
// place, outside of the temp-node-injection lifecycle.
func (gg *GeoGraph) ModRemoveArc(u, v int) {
	gg.G.RemoveEdge(u, v)
}

// ModAddArc adds or overwrites the directed edge u->v with weight w.
func (gg *GeoGraph) ModAddArc(u, v int, w float64) {
	gg.G.AddEdge(u, v, w)
}

// ModAddNode permanently appends pt as a new, permanent node (unlike
// AddNode's temp-node lifecycle, the result of ModAddNode becomes part of
// originalLen going forward and is never cleaned up).
func (gg *GeoGraph) ModAddNode(pt geoutil.LatLon) int {
	idx := gg.G.AppendNode()
	gg.Nodes = append(gg.Nodes, pt)
	gg.cache.Grow()
	gg.originalLen = gg.G.Len()
	return idx
}
