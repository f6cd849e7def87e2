package gridgraph

import (
	"fmt"
	"math"

	"github.com/routegraph/routegraph/rgerr"
	"github.com/routegraph/routegraph/spath"
)

// resolveEndpoint maps a query point to a connected integer cell index
// and the leftover off-grid Euclidean distance. Integer points must
// themselves be in-bounds and connected. Non-integer points snap to the
// closest connected cell among the four integer corners surrounding
// them, per §4.8; ErrUnreachable if none qualifies.
func (gg *GridGraph) resolveEndpoint(p Point) (idx int, offGrid float64, err error) {
	if isWhole(p.X) && isWhole(p.Y) {
		x, y := int(p.X), int(p.Y)
		if !gg.InBounds(x, y) {
			return 0, 0, fmt.Errorf("%w: point (%g,%g) out of grid bounds", rgerr.ErrUnreachable, p.X, p.Y)
		}
		idx = gg.Idx(x, y)
		if len(gg.g.Adj[idx]) == 0 {
			return 0, 0, fmt.Errorf("%w: cell (%d,%d) has no connected neighbors", rgerr.ErrUnreachable, x, y)
		}
		return idx, 0, nil
	}

	floorX, floorY := int(math.Floor(p.X)), int(math.Floor(p.Y))
	best := -1
	bestD := math.Inf(1)
	for dx := 0; dx <= 1; dx++ {
		for dy := 0; dy <= 1; dy++ {
			cx, cy := floorX+dx, floorY+dy
			if !gg.InBounds(cx, cy) {
				continue
			}
			cidx := gg.Idx(cx, cy)
			if len(gg.g.Adj[cidx]) == 0 {
				continue
			}
			ddx, ddy := float64(cx)-p.X, float64(cy)-p.Y
			d := math.Sqrt(ddx*ddx + ddy*ddy)
			if best == -1 || d < bestD {
				best, bestD = cidx, d
			}
		}
	}
	if best == -1 {
		return 0, 0, fmt.Errorf("%w: no connected cell near (%g,%g)", rgerr.ErrUnreachable, p.X, p.Y)
	}
	return best, bestD, nil
}

func isWhole(v float64) bool { return v == math.Trunc(v) }

// GetShortestPath answers a point-to-point query per spec §4.8: each
// endpoint resolves to a connected integer cell (snapping non-integer
// points to the closest connected corner and recording the leftover
// Euclidean leg), then the core search runs either through the shared
// sptree.Cache (cache=true) or spath.AStar with the default Euclidean
// heuristic.
func (gg *GridGraph) GetShortestPath(origin, destination Point, opts ...QueryOption) (Result, error) {
	o := defaultQueryOptions()
	for _, opt := range opts {
		opt(&o)
	}

	originIdx, originOff, err := gg.resolveEndpoint(origin)
	if err != nil {
		return Result{}, err
	}
	destIdx, destOff, err := gg.resolveEndpoint(destination)
	if err != nil {
		return Result{}, err
	}

	var inner spath.Result
	if o.cache {
		inner, err = gg.cachedShortestPath(originIdx, destIdx, o.cacheFor)
	} else {
		h := o.heuristic
		if h == nil && !o.noHeuristic {
			dx, dy := gg.Coord(destIdx)
			h = gg.EuclideanHeuristic([2]int{dx, dy})
		}
		inner, err = spath.AStar(gg.g, originIdx, destIdx, h)
	}
	if err != nil {
		return Result{}, err
	}

	length := inner.Length + originOff + destOff

	points := make([]Point, 0, len(inner.Path)+2)
	points = append(points, origin)
	for _, idx := range inner.Path {
		x, y := gg.Coord(idx)
		points = append(points, Point{X: float64(x), Y: float64(y)})
	}
	points = append(points, destination)

	res := Result{Length: length}
	if o.outputPath {
		res.Path = inner.Path
	}
	rendered, err := renderCoordinatePath(points, o.outputCoordinatePath)
	if err != nil {
		return Result{}, err
	}
	res.CoordinatePath = rendered
	return res, nil
}

// cachedShortestPath routes through gg.cache, flipping source/destination
// roles per cacheFor so the cache's canonical tree source stays stable
// across repeat queries from the same endpoint, then restores the
// caller's requested origin->destination path order (the grid graph is
// always symmetric, so length is unaffected by the flip).
func (gg *GridGraph) cachedShortestPath(originIdx, destIdx int, cacheFor CacheFor) (spath.Result, error) {
	if cacheFor == CacheForOrigin {
		return gg.cache.GetShortestPath(originIdx, destIdx, false)
	}
	res, err := gg.cache.GetShortestPath(destIdx, originIdx, false)
	if err != nil {
		return spath.Result{}, err
	}
	reversed := make([]int, len(res.Path))
	for i, v := range res.Path {
		reversed[len(res.Path)-1-i] = v
	}
	return spath.Result{Path: reversed, Length: res.Length}, nil
}

func renderCoordinatePath(points []Point, format CoordinatePathFormat) (interface{}, error) {
	switch format {
	case ListOfLists:
		out := make([][2]float64, len(points))
		for i, p := range points {
			out[i] = [2]float64{p.X, p.Y}
		}
		return out, nil
	case ListOfTuples:
		return points, nil
	case ListOfDicts:
		out := make([]PointDict, len(points))
		for i, p := range points {
			out[i] = PointDict{X: p.X, Y: p.Y}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized output coordinate path format %q", rgerr.ErrInvalidArgument, format)
	}
}
