package geoutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegraph/routegraph/geoutil"
)

func TestHaversineKnownDistance(t *testing.T) {
	// Shanghai -> Savannah, same points used by the GeoGraph maritime
	// scenario (the ~19596.4653 km length there is the routed graph
	// distance, not this direct great-circle figure, but both must be
	// on the same order of magnitude and this exercises the formula).
	shanghai := geoutil.LatLon{Lat: 31.23, Lon: 121.47}
	savannah := geoutil.LatLon{Lat: 32.08, Lon: -81.09}
	d, err := geoutil.Haversine(shanghai, savannah, "km", 1)
	require.NoError(t, err)
	assert.InDelta(t, 12585.7, d, 1)
}

func TestHaversineZeroDistance(t *testing.T) {
	p := geoutil.LatLon{Lat: 10, Lon: 20}
	d, err := geoutil.Haversine(p, p, "km", 1)
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-9)
}

func TestUnitRoundTrip(t *testing.T) {
	units := []string{"km", "m", "mi", "ft"}
	for _, a := range units {
		for _, b := range units {
			x := 1234.5678
			y, err := geoutil.DistanceConverter(x, a, b)
			require.NoError(t, err)
			back, err := geoutil.DistanceConverter(y, b, a)
			require.NoError(t, err)
			assert.InDelta(t, x, back, 1e-6)
		}
	}
}

func TestDistanceConverterUnknownUnit(t *testing.T) {
	_, err := geoutil.DistanceConverter(1, "km", "parsec")
	require.Error(t, err)
}

func TestCheapRulerWrapsAntimeridian(t *testing.T) {
	a := geoutil.LatLon{Lat: 40, Lon: 179}
	b := geoutil.LatLon{Lat: 40, Lon: -179}
	near, err := geoutil.CheapRuler(a, b, "km", 1)
	require.NoError(t, err)
	far := geoutil.LatLon{Lat: 40, Lon: 0}
	farDist, err := geoutil.CheapRuler(a, far, "km", 1)
	require.NoError(t, err)
	assert.Less(t, near, farDist)
}

func TestLatLonBoundBetween(t *testing.T) {
	a := geoutil.LatLon{Lat: 0, Lon: 0}
	b := geoutil.LatLon{Lat: 0, Lon: 1}
	bound := geoutil.LatLonBoundBetween(a, b)
	assert.Greater(t, bound, 0.0)
	assert.Less(t, bound, math.Abs(10))
}
