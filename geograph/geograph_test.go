package geograph_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegraph/routegraph/geograph"
	"github.com/routegraph/routegraph/geoutil"
	"github.com/routegraph/routegraph/sgraph"
)

// a small synthetic network: four nodes roughly along the US east coast,
// connected in a line, used in place of the out-of-scope marnet/freeway
// data geographs.
func syntheticGeoGraph() *geograph.GeoGraph {
	nodes := []geoutil.LatLon{
		{Lat: 40.71, Lon: -74.01},  // 0: New York
		{Lat: 39.95, Lon: -75.16},  // 1: Philadelphia
		{Lat: 38.90, Lon: -77.04},  // 2: Washington DC
		{Lat: 33.75, Lon: -84.39},  // 3: Atlanta
	}
	g := sgraph.New(len(nodes))
	link := func(u, v int) {
		d, _ := geoutil.Haversine(nodes[u], nodes[v], "km", 1)
		g.AddUndirectedEdge(u, v, d)
	}
	link(0, 1)
	link(1, 2)
	link(2, 3)
	return geograph.New(g, nodes)
}

func cloneAdjacency(g *sgraph.Graph) []map[int]float64 {
	out := make([]map[int]float64, g.Len())
	for i, m := range g.Adj {
		cp := make(map[int]float64, len(m))
		for k, v := range m {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}

func TestGetShortestPathDirectRoundTrip(t *testing.T) {
	gg := syntheticGeoGraph()
	before := cloneAdjacency(gg.G)
	beforeNodes := append([]geoutil.LatLon(nil), gg.Nodes...)

	origin := geoutil.LatLon{Lat: 40.70, Lon: -74.00}      // near New York
	destination := geoutil.LatLon{Lat: 33.74, Lon: -84.38} // near Atlanta

	res, err := gg.GetShortestPath(origin, destination)
	require.NoError(t, err)
	assert.Greater(t, res.Length, 0.0)

	// symmetry-preservation: graph restored to its pre-call shape.
	assert.Equal(t, gg.OriginalLen(), gg.G.Len())
	assert.Equal(t, before, cloneAdjacency(gg.G))
	assert.Equal(t, beforeNodes, gg.Nodes)
}

func TestGetShortestPathCachePath(t *testing.T) {
	gg := syntheticGeoGraph()
	origin := geoutil.LatLon{Lat: 40.70, Lon: -74.00}
	destination := geoutil.LatLon{Lat: 33.74, Lon: -84.38}

	res, err := gg.GetShortestPath(origin, destination, geograph.WithCache(true))
	require.NoError(t, err)
	assert.Greater(t, res.Length, 0.0)
	assert.Equal(t, 4, gg.G.Len())
}

func TestGetShortestPathRejectsCacheWithQuadrant(t *testing.T) {
	gg := syntheticGeoGraph()
	origin := geoutil.LatLon{Lat: 40.70, Lon: -74.00}
	destination := geoutil.LatLon{Lat: 33.74, Lon: -84.38}
	_, err := gg.GetShortestPath(origin, destination,
		geograph.WithCache(true),
		geograph.WithNodeAdditionType(geograph.Quadrant))
	require.Error(t, err)
}

func TestDistanceMatrixDiagonalZero(t *testing.T) {
	gg := syntheticGeoGraph()
	points := []geoutil.LatLon{
		{Lat: 40.70, Lon: -74.00},
		{Lat: 38.90, Lon: -77.04},
	}
	m, err := gg.DistanceMatrix(points, 1, "km", "km")
	require.NoError(t, err)
	assert.Equal(t, 0.0, m[0][0])
	assert.Equal(t, 0.0, m[1][1])
	assert.Greater(t, m[0][1], 0.0)
	assert.InDelta(t, m[0][1], m[1][0], 1e-6)
}

func TestGraphJSONRoundTrip(t *testing.T) {
	gg := syntheticGeoGraph()
	var buf bytes.Buffer
	require.NoError(t, gg.SaveGraphJSON(&buf))

	loaded, err := geograph.LoadGraphJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, gg.G.Len(), loaded.G.Len())
	assert.Equal(t, gg.Nodes, loaded.Nodes)
}
