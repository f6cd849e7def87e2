package geograph

import (
	"fmt"

	"github.com/routegraph/routegraph/geoutil"
	"github.com/routegraph/routegraph/rgerr"
)

// GetNodeDistances returns { existing_node_index -> great-circle distance
// (circuity applied) } used to wire a newly injected temp node into the
// graph, per spec §4.7.2's four addition types.
func (gg *GeoGraph) GetNodeDistances(pt geoutil.LatLon, circuity float64, additionType NodeAdditionType, mathKind NodeAdditionMath, bound float64) (map[int]float64, error) {
	if additionType == KDClosest {
		idx := gg.index.ClosestIdx(pt)
		d, err := geoutil.Haversine(pt, gg.Nodes[idx], "km", circuity)
		if err != nil {
			return nil, err
		}
		return map[int]float64{idx: d}, nil
	}

	if additionType != Closest && additionType != Quadrant && additionType != All {
		return nil, fmt.Errorf("%w: unrecognized node addition type %q", rgerr.ErrInvalidArgument, additionType)
	}
	if mathKind != Euclidean && mathKind != HaversineMath {
		return nil, fmt.Errorf("%w: unrecognized node addition math %q", rgerr.ErrInvalidArgument, mathKind)
	}

	candidates := gg.boundedCandidates(pt, bound)
	if len(candidates) == 0 {
		idx := gg.index.ClosestIdx(pt)
		d, err := geoutil.Haversine(pt, gg.Nodes[idx], "km", circuity)
		if err != nil {
			return nil, err
		}
		return map[int]float64{idx: d}, nil
	}

	switch additionType {
	case All:
		out := make(map[int]float64, len(candidates))
		for _, idx := range candidates {
			d, err := geoutil.Haversine(pt, gg.Nodes[idx], "km", circuity)
			if err != nil {
				return nil, err
			}
			out[idx] = d
		}
		return out, nil

	case Closest:
		best, ok := gg.nearestByMath(pt, candidates, mathKind)
		if !ok {
			return map[int]float64{}, nil
		}
		d, err := geoutil.Haversine(pt, gg.Nodes[best], "km", circuity)
		if err != nil {
			return nil, err
		}
		return map[int]float64{best: d}, nil

	default: // Quadrant
		quads := map[string][]int{}
		for _, idx := range candidates {
			q := quadrantOf(pt, gg.Nodes[idx])
			quads[q] = append(quads[q], idx)
		}
		out := map[int]float64{}
		for _, members := range quads {
			best, ok := gg.nearestByMath(pt, members, mathKind)
			if !ok {
				continue
			}
			d, err := geoutil.Haversine(pt, gg.Nodes[best], "km", circuity)
			if err != nil {
				return nil, err
			}
			out[best] = d
		}
		return out, nil
	}
}

// boundedCandidates returns the indices of Nodes whose lat/lon falls
// inside [pt.Lat +/- bound] x [pt.Lon +/- bound].
func (gg *GeoGraph) boundedCandidates(pt geoutil.LatLon, bound float64) []int {
	var out []int
	for i, n := range gg.Nodes {
		if n.Lat >= pt.Lat-bound && n.Lat <= pt.Lat+bound &&
			n.Lon >= pt.Lon-bound && n.Lon <= pt.Lon+bound {
			out = append(out, i)
		}
	}
	return out
}

// nearestByMath finds the candidate index minimizing either squared
// Euclidean distance on raw (lat,lon) or haversine distance.
func (gg *GeoGraph) nearestByMath(pt geoutil.LatLon, candidates []int, mathKind NodeAdditionMath) (int, bool) {
	best := -1
	bestD := 0.0
	for _, idx := range candidates {
		n := gg.Nodes[idx]
		var d float64
		if mathKind == Euclidean {
			dlat := n.Lat - pt.Lat
			dlon := n.Lon - pt.Lon
			d = dlat*dlat + dlon*dlon
		} else {
			d, _ = geoutil.Haversine(pt, n, "km", 1)
		}
		if best == -1 || d < bestD {
			best = idx
			bestD = d
		}
	}
	return best, best != -1
}

// quadrantOf classifies n relative to pt into one of "ne","nw","se","sw".
func quadrantOf(pt, n geoutil.LatLon) string {
	ns := "s"
	if n.Lat >= pt.Lat {
		ns = "n"
	}
	ew := "w"
	if n.Lon >= pt.Lon {
		ew = "e"
	}
	return ns + ew
}

// AddNode appends pt to Nodes and to G, wiring it with the distances from
// GetNodeDistances as its outgoing edges, and mirrors each distance into
// the existing node's adjacency for symmetry. It returns the new index.
func (gg *GeoGraph) AddNode(pt geoutil.LatLon, circuity float64, additionType NodeAdditionType, mathKind NodeAdditionMath, bound float64) (int, error) {
	distances, err := gg.GetNodeDistances(pt, circuity, additionType, mathKind, bound)
	if err != nil {
		return 0, err
	}
	newIdx := gg.G.AppendNode()
	gg.Nodes = append(gg.Nodes, pt)
	gg.cache.Grow()
	for existing, d := range distances {
		gg.G.AddEdge(newIdx, existing, d)
		gg.G.AddEdge(existing, newIdx, d)
	}
	return newIdx, nil
}

// RemoveAppendedNode pops the last node of G and Nodes and deletes every
// mirror edge that pointed into it from other nodes' adjacency.
func (gg *GeoGraph) RemoveAppendedNode() {
	n := gg.G.Len()
	if n == 0 {
		return
	}
	last := n - 1
	for v := range gg.G.Adj[last] {
		gg.G.RemoveEdge(v, last)
	}
	gg.G.Truncate(last)
	gg.Nodes = gg.Nodes[:last]
	gg.cache.Shrink(last)
}
