package gridgraph

import "math"

// This file implements the moving-shape sweep: given a shape (a polygon
// of relative vertices) and a motion step (dx,dy) over time t in [0,1],
// determine which integer cell offsets (relative to the shape's starting
// cell) the shape's swept volume passes through. Used at compile time to
// decide which diagonal moves are blocked by the "corner squeeze" rule.

// timeInterval is a [lo,hi] sub-range of t in [0,1].
type timeInterval struct {
	lo, hi float64
}

func (iv timeInterval) empty() bool { return iv.lo >= iv.hi }

func (iv timeInterval) intersect(other timeInterval) (timeInterval, bool) {
	lo := iv.lo
	if other.lo > lo {
		lo = other.lo
	}
	hi := iv.hi
	if other.hi < hi {
		hi = other.hi
	}
	if lo >= hi {
		return timeInterval{}, false
	}
	return timeInterval{lo: lo, hi: hi}, true
}

// movingSegmentOverlapIntervals returns, for a 1D segment [start,end]
// translating by shift over t in [0,1], the time sub-interval during
// which the segment overlaps each integer cell it ever touches, keyed by
// the cell's integer floor coordinate.
func movingSegmentOverlapIntervals(start, end, shift float64) map[int]timeInterval {
	out := make(map[int]timeInterval)
	if shift == 0 {
		lo, hi := floorInt(start), ceilExclusive(end)
		for c := lo; c < hi; c++ {
			if start < float64(c+1) && end > float64(c) {
				out[c] = timeInterval{lo: 0, hi: 1}
			}
		}
		return out
	}

	globalMin, globalMax := start, end
	if shift > 0 {
		globalMax = end + shift
	} else {
		globalMin = start + shift
	}
	lo, hi := floorInt(globalMin)-1, ceilExclusive(globalMax)+1
	for c := lo; c < hi; c++ {
		tA := (float64(c) - end) / shift
		tB := (float64(c+1) - start) / shift
		ivLo, ivHi := tA, tB
		if ivLo > ivHi {
			ivLo, ivHi = ivHi, ivLo
		}
		if ivLo < 0 {
			ivLo = 0
		}
		if ivHi > 1 {
			ivHi = 1
		}
		if ivLo < ivHi {
			out[c] = timeInterval{lo: ivLo, hi: ivHi}
		}
	}
	return out
}

func floorInt(v float64) int {
	i := int(v)
	if float64(i) > v {
		i--
	}
	return i
}

func ceilExclusive(v float64) int {
	i := int(v)
	if float64(i) < v {
		i++
	}
	return i
}

// cellOffset is an integer (dx,dy) offset from a shape's starting cell.
type cellOffset struct{ dx, dy int }

// movingRectangleOverlapIntervals sweeps the axis-aligned rectangle
// [xStart,xEnd] x [yStart,yEnd] by (xShift,yShift) over t in [0,1] and
// returns every integer cell offset it passes through with a non-empty
// intersected time interval.
func movingRectangleOverlapIntervals(xStart, xEnd, yStart, yEnd, xShift, yShift float64) map[cellOffset]timeInterval {
	xIntervals := movingSegmentOverlapIntervals(xStart, xEnd, xShift)
	yIntervals := movingSegmentOverlapIntervals(yStart, yEnd, yShift)

	out := make(map[cellOffset]timeInterval)
	for xc, xiv := range xIntervals {
		for yc, yiv := range yIntervals {
			if iv, ok := xiv.intersect(yiv); ok {
				out[cellOffset{dx: xc, dy: yc}] = iv
			}
		}
	}
	return out
}

// shapeBBox returns the axis-aligned bounding rectangle of shape's
// vertices.
func shapeBBox(shape Shape) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = shape[0][0], shape[0][1]
	xmax, ymax = xmin, ymin
	for _, v := range shape[1:] {
		if v[0] < xmin {
			xmin = v[0]
		}
		if v[0] > xmax {
			xmax = v[0]
		}
		if v[1] < ymin {
			ymin = v[1]
		}
		if v[1] > ymax {
			ymax = v[1]
		}
	}
	return
}

// removeUntouchedCells drops candidate cell offsets whose intercept range
// (relative to the true line of travel, slope = yShift/xShift) does not
// overlap the shape's own intercept range. This only applies to true
// diagonal motion (both deltas non-zero); orthogonal moves never need it
// since the swept rectangle already matches the shape's bounding box
// exactly along the motion axis.
func removeUntouchedCells(candidates map[cellOffset]timeInterval, shape Shape, xShift, yShift float64) map[cellOffset]timeInterval {
	slope := yShift / xShift

	shapeMin, shapeMax := math.Inf(1), math.Inf(-1)
	for _, v := range shape {
		intercept := v[1] - slope*v[0]
		if intercept < shapeMin {
			shapeMin = intercept
		}
		if intercept > shapeMax {
			shapeMax = intercept
		}
	}

	out := make(map[cellOffset]timeInterval, len(candidates))
	for off, iv := range candidates {
		cellMin, cellMax := math.Inf(1), math.Inf(-1)
		for _, corner := range [][2]float64{
			{float64(off.dx), float64(off.dy)},
			{float64(off.dx + 1), float64(off.dy)},
			{float64(off.dx), float64(off.dy + 1)},
			{float64(off.dx + 1), float64(off.dy + 1)},
		} {
			intercept := corner[1] - slope*corner[0]
			if intercept < cellMin {
				cellMin = intercept
			}
			if intercept > cellMax {
				cellMax = intercept
			}
		}
		if cellMax < shapeMin || cellMin > shapeMax {
			continue // this cell's intercept band never meets the shape's
		}
		out[off] = iv
	}
	return out
}

// sweptOffsets returns the list of integer cell offsets (relative to the
// shape's starting cell) swept by shape moving by (dx,dy) over t in
// [0,1]. For purely horizontal/vertical motion, the rectangle sweep is
// exact and sufficient; for true diagonal motion, removeUntouchedCells
// additionally discards cells the shape's actual silhouette never
// crosses, approximating the shape by its axis-aligned bounding box per
// the sweep's own rectangle-bound step.
func sweptOffsets(shape Shape, dx, dy int) []cellOffset {
	xmin, xmax, ymin, ymax := shapeBBox(shape)
	candidates := movingRectangleOverlapIntervals(xmin, xmax, ymin, ymax, float64(dx), float64(dy))
	if dx != 0 && dy != 0 {
		candidates = removeUntouchedCells(candidates, shape, float64(dx), float64(dy))
	}
	out := make([]cellOffset, 0, len(candidates))
	for off := range candidates {
		out = append(out, off)
	}
	return out
}
