package gridgraph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sortedOffsets(offsets []cellOffset) []cellOffset {
	out := append([]cellOffset(nil), offsets...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].dx != out[j].dx {
			return out[i].dx < out[j].dx
		}
		return out[i].dy < out[j].dy
	})
	return out
}

func TestSweptOffsetsOrthogonalUnitSquare(t *testing.T) {
	shape := DefaultShape()
	// A purely horizontal unit-square slide never leaves row 0, so only
	// the start and destination cells are swept -- no other row is ever
	// touched.
	offsets := sortedOffsets(sweptOffsets(shape, 1, 0))
	assert.Equal(t, []cellOffset{{dx: 0, dy: 0}, {dx: 1, dy: 0}}, offsets)
}

func TestSweptOffsetsDiagonalUnitSquareClipsCorners(t *testing.T) {
	shape := DefaultShape()
	offsets := sortedOffsets(sweptOffsets(shape, 1, 1))
	// A unit square sweeping diagonally fully occupies both the start and
	// destination cells, plus grazes the two corner cells a diagonal step
	// would otherwise slip between -- all four cells around the move.
	assert.Equal(t, []cellOffset{
		{dx: 0, dy: 0}, {dx: 0, dy: 1}, {dx: 1, dy: 0}, {dx: 1, dy: 1},
	}, offsets)
}

func TestTimeIntervalIntersect(t *testing.T) {
	a := timeInterval{lo: 0, hi: 0.5}
	b := timeInterval{lo: 0.25, hi: 1}
	got, ok := a.intersect(b)
	assert.True(t, ok)
	assert.Equal(t, timeInterval{lo: 0.25, hi: 0.5}, got)

	c := timeInterval{lo: 0.6, hi: 1}
	_, ok = a.intersect(c)
	assert.False(t, ok)
}
