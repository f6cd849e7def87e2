// Package kdtree implements a k-d tree over the unit-sphere (x,y,z)
// embedding of lat/lon points, answering nearest-neighbor queries in
// O(log N) average time. Euclidean distance in this embedding is a
// monotone function of great-circle distance, so ordinary squared-
// Euclidean comparisons give correct nearest-neighbor answers without any
// lat/lon trigonometry at query time.
package kdtree

import (
	"math"

	"github.com/routegraph/routegraph/geoutil"
)

// point3 is the stored (x,y,z,original_index) tuple at each node.
type point3 struct {
	x, y, z float64
	idx     int
}

// node is one array slot of the implicit tree: Axis is the splitting
// axis (0=x,1=y,2=z) used to partition Left/Right, both of which are
// slice indices into Tree.nodes, or -1 for "no child".
type node struct {
	p           point3
	axis        int
	left, right int
}

// Tree is an array-backed k-d tree, built once and read-only afterward.
type Tree struct {
	nodes []node
	root  int
}

// toXYZ embeds a lat/lon point (in degrees) onto the unit sphere.
func toXYZ(p geoutil.LatLon, idx int) point3 {
	lat := p.Lat * math.Pi / 180
	lon := p.Lon * math.Pi / 180
	return point3{
		x:   math.Cos(lat) * math.Cos(lon),
		y:   math.Cos(lat) * math.Sin(lon),
		z:   math.Sin(lat),
		idx: idx,
	}
}

func axisValue(p point3, axis int) float64 {
	switch axis {
	case 0:
		return p.x
	case 1:
		return p.y
	default:
		return p.z
	}
}

func squaredDistance(a, b point3) float64 {
	dx, dy, dz := a.x-b.x, a.y-b.y, a.z-b.z
	return dx*dx + dy*dy + dz*dz
}
