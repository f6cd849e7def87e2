package geograph

import (
	"fmt"
	"math"

	"github.com/routegraph/routegraph/geoutil"
	"github.com/routegraph/routegraph/rgerr"
)

// GetShortestPath implements spec §4.7.1 end-to-end: auto bounding-box
// sizing, the cache path (kdclosest/closest endpoints only), the
// non-cache path (temporary node injection + algorithm dispatch),
// circuity-adjusted length formatting, and the three coordinate-path
// render shapes. Temporary nodes are always cleaned up before return,
// including on every error path.
func (gg *GeoGraph) GetShortestPath(origin, destination geoutil.LatLon, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for _, p := range []geoutil.LatLon{origin, destination} {
		if p.Lat < -90 || p.Lat > 90 || p.Lon < -180 || p.Lon > 180 {
			return Result{}, fmt.Errorf("%w: point (%g,%g) outside valid lat/lon bounds", rgerr.ErrInvalidEndpoint, p.Lat, p.Lon)
		}
	}

	originBound, destBound, err := resolveBounds(origin, destination, o)
	if err != nil {
		return Result{}, err
	}

	if o.Cache {
		return gg.getShortestPathCached(origin, destination, o, originBound, destBound)
	}
	return gg.getShortestPathDirect(origin, destination, o, originBound, destBound)
}

func resolveBounds(origin, destination geoutil.LatLon, o Options) (originBound, destBound float64, err error) {
	if o.NodeAdditionLatLonBound >= 0 {
		return o.NodeAdditionLatLonBound, o.NodeAdditionLatLonBound, nil
	}
	if o.NodeAdditionType == KDClosest && o.DestinationNodeAdditionType == KDClosest {
		return 180, 180, nil
	}
	destBound = geoutil.LatLonBoundBetween(origin, destination) * 1.01
	originBound = math.Min(destBound, o.AutoLatLonBoundMax)
	return originBound, destBound, nil
}

func (gg *GeoGraph) getShortestPathCached(origin, destination geoutil.LatLon, o Options, originBound, destBound float64) (Result, error) {
	if !isCacheCompatible(o.NodeAdditionType) || !isCacheCompatible(o.DestinationNodeAdditionType) {
		return Result{}, fmt.Errorf("%w: cache=true requires kdclosest or closest node addition types", rgerr.ErrInvalidArgument)
	}

	originDists, err := gg.GetNodeDistances(origin, o.NodeAdditionCircuity, o.NodeAdditionType, o.NodeAdditionMath, originBound)
	if err != nil {
		return Result{}, err
	}
	entryIdx, entryLen, err := singleEntry(originDists)
	if err != nil {
		return Result{}, err
	}

	destDists, err := gg.GetNodeDistances(destination, o.NodeAdditionCircuity, o.DestinationNodeAdditionType, o.NodeAdditionMath, destBound)
	if err != nil {
		return Result{}, err
	}
	exitIdx, exitLen, err := singleEntry(destDists)
	if err != nil {
		return Result{}, err
	}

	inner, err := gg.cache.GetShortestPath(entryIdx, exitIdx, false)
	if err != nil {
		return Result{}, err
	}

	entryLenOff := entryLen / o.NodeAdditionCircuity * o.OffGraphCircuity
	exitLenOff := exitLen / o.NodeAdditionCircuity * o.OffGraphCircuity
	length := inner.Length + entryLenOff + exitLenOff

	coords := make([]geoutil.LatLon, 0, len(inner.Path)+2)
	coords = append(coords, origin)
	for _, idx := range inner.Path {
		coords = append(coords, gg.Nodes[idx])
	}
	coords = append(coords, destination)

	return gg.format(length, coords, nil, o)
}

func isCacheCompatible(t NodeAdditionType) bool {
	return t == KDClosest || t == Closest
}

func singleEntry(m map[int]float64) (int, float64, error) {
	for k, v := range m {
		return k, v, nil
	}
	return 0, 0, fmt.Errorf("%w: no candidate node found", rgerr.ErrInvalidEndpoint)
}

func (gg *GeoGraph) getShortestPathDirect(origin, destination geoutil.LatLon, o Options, originBound, destBound float64) (Result, error) {
	originalLen := gg.G.Len()
	var originIdx, destIdx int
	var addErr error

	originIdx, addErr = gg.AddNode(origin, o.NodeAdditionCircuity, o.NodeAdditionType, o.NodeAdditionMath, originBound)
	defer func() {
		if gg.G.Len() > originalLen {
			// remove whatever we appended, in reverse order
			for gg.G.Len() > originalLen {
				gg.RemoveAppendedNode()
			}
		}
	}()
	if addErr != nil {
		return Result{}, addErr
	}

	destIdx, addErr = gg.AddNode(destination, o.NodeAdditionCircuity, o.DestinationNodeAdditionType, o.NodeAdditionMath, destBound)
	if addErr != nil {
		return Result{}, addErr
	}

	res, err := o.AlgorithmFn(gg.G, originIdx, destIdx)
	if err != nil {
		return Result{}, err
	}

	length := res.Length
	coords := make([]geoutil.LatLon, len(res.Path))
	for i, idx := range res.Path {
		coords[i] = gg.Nodes[idx]
	}

	if len(res.Path) == 2 {
		length = length / o.NodeAdditionCircuity * o.OffGraphCircuity
	} else {
		entryLeg, _ := geoutil.Haversine(coords[0], coords[1], "km", 1)
		exitLeg, _ := geoutil.Haversine(coords[len(coords)-2], coords[len(coords)-1], "km", 1)
		length += (entryLeg + exitLeg) * (o.OffGraphCircuity - o.NodeAdditionCircuity)
	}

	return gg.format(length, coords, res.Path, o)
}
