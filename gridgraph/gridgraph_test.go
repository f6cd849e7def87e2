package gridgraph_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegraph/routegraph/gridgraph"
	"github.com/routegraph/routegraph/rgerr"
)

func TestNewRejectsNonPositiveSize(t *testing.T) {
	_, err := gridgraph.New(0, 5, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rgerr.ErrInvalidArgument))

	_, err = gridgraph.New(5, -1, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rgerr.ErrInvalidArgument))
}

func TestSimpleOpenGrid(t *testing.T) {
	gg, err := gridgraph.New(5, 5, nil, gridgraph.WithExteriorWalls(false))
	require.NoError(t, err)

	res, err := gg.GetShortestPath(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 4, Y: 4})
	require.NoError(t, err)
	// Diagonal 8-connectivity: 4 diagonal steps of sqrt(2).
	assert.InDelta(t, 4*1.4142135623730951, res.Length, 1e-9)
}

// TestExteriorWallCorridor reproduces spec §8 scenario 4: a 20x20 grid
// with exterior walls and a vertical wall segment at x=10 for y in
// [5,19], forcing a detour around the corridor gap at y<5.
func TestExteriorWallCorridor(t *testing.T) {
	blocks := map[[2]int]struct{}{}
	for y := 5; y <= 19; y++ {
		blocks[[2]int{10, y}] = struct{}{}
	}
	gg, err := gridgraph.New(20, 20, blocks, gridgraph.WithExteriorWalls(true))
	require.NoError(t, err)

	res, err := gg.GetShortestPath(gridgraph.Point{X: 2, Y: 10}, gridgraph.Point{X: 18, Y: 10})
	require.NoError(t, err)
	assert.InDelta(t, 20.9704, res.Length, 0.01)
}

func TestExteriorWallCorridorWithoutWall(t *testing.T) {
	gg, err := gridgraph.New(20, 20, nil, gridgraph.WithExteriorWalls(true))
	require.NoError(t, err)

	res, err := gg.GetShortestPath(gridgraph.Point{X: 2, Y: 10}, gridgraph.Point{X: 18, Y: 10})
	require.NoError(t, err)
	assert.InDelta(t, 16.0, res.Length, 0.01)
}

func TestBlockedCellIsUnreachable(t *testing.T) {
	blocks := map[[2]int]struct{}{{2, 2}: {}}
	gg, err := gridgraph.New(5, 5, blocks, gridgraph.WithExteriorWalls(false))
	require.NoError(t, err)

	_, err = gg.GetShortestPath(gridgraph.Point{X: 2, Y: 2}, gridgraph.Point{X: 0, Y: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, rgerr.ErrUnreachable))
}

func TestOffGridEndpointSnaps(t *testing.T) {
	gg, err := gridgraph.New(5, 5, nil, gridgraph.WithExteriorWalls(false))
	require.NoError(t, err)

	res, err := gg.GetShortestPath(gridgraph.Point{X: 0.4, Y: 0.4}, gridgraph.Point{X: 4, Y: 4})
	require.NoError(t, err)
	assert.Greater(t, res.Length, 0.0)
}

func TestCacheRouteMatchesDirect(t *testing.T) {
	blocks := map[[2]int]struct{}{}
	for y := 5; y <= 19; y++ {
		blocks[[2]int{10, y}] = struct{}{}
	}
	gg, err := gridgraph.New(20, 20, blocks, gridgraph.WithExteriorWalls(true))
	require.NoError(t, err)

	direct, err := gg.GetShortestPath(gridgraph.Point{X: 2, Y: 10}, gridgraph.Point{X: 18, Y: 10})
	require.NoError(t, err)

	cached, err := gg.GetShortestPath(gridgraph.Point{X: 2, Y: 10}, gridgraph.Point{X: 18, Y: 10},
		gridgraph.WithCache(true, gridgraph.CacheForOrigin))
	require.NoError(t, err)
	assert.InDelta(t, direct.Length, cached.Length, 1e-9)

	cachedReversed, err := gg.GetShortestPath(gridgraph.Point{X: 2, Y: 10}, gridgraph.Point{X: 18, Y: 10},
		gridgraph.WithCache(true, gridgraph.CacheForDestination))
	require.NoError(t, err)
	assert.InDelta(t, direct.Length, cachedReversed.Length, 1e-9)
}

func TestOutputCoordinatePathFormats(t *testing.T) {
	gg, err := gridgraph.New(3, 3, nil, gridgraph.WithExteriorWalls(false))
	require.NoError(t, err)

	lists, err := gg.GetShortestPath(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 2, Y: 2},
		gridgraph.WithOutputCoordinatePath(gridgraph.ListOfLists))
	require.NoError(t, err)
	_, ok := lists.CoordinatePath.([][2]float64)
	assert.True(t, ok)

	dicts, err := gg.GetShortestPath(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 2, Y: 2},
		gridgraph.WithOutputCoordinatePath(gridgraph.ListOfDicts))
	require.NoError(t, err)
	_, ok = dicts.CoordinatePath.([]gridgraph.PointDict)
	assert.True(t, ok)

	tuples, err := gg.GetShortestPath(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 2, Y: 2},
		gridgraph.WithOutputCoordinatePath(gridgraph.ListOfTuples))
	require.NoError(t, err)
	_, ok = tuples.CoordinatePath.([]gridgraph.Point)
	assert.True(t, ok)
}

func TestExportImportRoundTrip(t *testing.T) {
	blocks := map[[2]int]struct{}{{2, 2}: {}}
	gg, err := gridgraph.New(5, 5, blocks, gridgraph.WithExteriorWalls(false))
	require.NoError(t, err)

	before, err := gg.GetShortestPath(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 4, Y: 4})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gg.Export(&buf))

	restored, err := gridgraph.Import(&buf)
	require.NoError(t, err)

	after, err := restored.GetShortestPath(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 4, Y: 4})
	require.NoError(t, err)
	assert.InDelta(t, before.Length, after.Length, 1e-9)
}

func TestImportRejectsCorruptPayload(t *testing.T) {
	_, err := gridgraph.Import(bytes.NewReader([]byte("not a valid zlib payload")))
	require.Error(t, err)
}
