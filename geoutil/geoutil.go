package geoutil

import (
	"fmt"
	"math"

	"github.com/routegraph/routegraph/rgerr"
)

// Haversine returns the great-circle distance between a and b in units,
// scaled by circuity, via the standard half-angle-sine spherical law of
// cosines.
func Haversine(a, b LatLon, units string, circuity float64) (float64, error) {
	if err := validUnit(units); err != nil {
		return 0, err
	}
	lat1, lon1 := toRadians(a.Lat), toRadians(a.Lon)
	lat2, lon2 := toRadians(b.Lat), toRadians(b.Lon)
	dlat := lat2 - lat1
	dlon := lon2 - lon1
	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	arc := 2 * math.Asin(math.Min(1, math.Sqrt(h)))
	return arc * earthRadius[units] * circuity, nil
}

// CheapRuler is an equirectangular approximation intended as an A*
// heuristic, cheaper than Haversine and still admissible when scaled down
// by a circuity factor < 1 (real edges are never shorter than the
// straight-line distance they approximate). Longitude deltas are wrapped
// to their shortest-arc form (min(|dlon|, 360-|dlon|)) so a heuristic
// near the antimeridian does not overestimate.
func CheapRuler(a, b LatLon, units string, circuity float64) (float64, error) {
	if err := validUnit(units); err != nil {
		return 0, err
	}
	dlat := toRadians(b.Lat - a.Lat)
	dlon := math.Abs(b.Lon - a.Lon)
	if dlon > 180 {
		dlon = 360 - dlon
	}
	dlonRad := toRadians(dlon)
	midLat := toRadians((a.Lat + b.Lat) / 2)
	x := dlonRad * math.Cos(midLat)
	y := dlat
	return math.Sqrt(x*x+y*y) * earthRadius[units] * circuity, nil
}

// DistanceConverter converts d from one unit to another via the exact
// kilometer reference table {mi: 0.621371, m: 1000, ft: 3280.84, km: 1}.
func DistanceConverter(d float64, from, to string) (float64, error) {
	fromFactor, ok := kmTable[from]
	if !ok {
		return 0, fmt.Errorf("%w: unrecognized unit %q", rgerr.ErrInvalidArgument, from)
	}
	toFactor, ok := kmTable[to]
	if !ok {
		return 0, fmt.Errorf("%w: unrecognized unit %q", rgerr.ErrInvalidArgument, to)
	}
	km := d / fromFactor
	return km * toFactor, nil
}

// LatLonBoundBetween sizes a search box in degrees from the great-circle
// distance between o and d: haversine(o,d,"km",1) / 111.
func LatLonBoundBetween(o, d LatLon) float64 {
	dist, _ := Haversine(o, d, "km", 1) // "km" is always a valid unit
	return dist / 111
}

// HaversineHeuristic returns an admissible A* heuristic toward
// destination, driven by a caller-supplied node->LatLon lookup. Haversine
// is admissible by construction since real graph edges never undercut
// great-circle distance.
func HaversineHeuristic(destination LatLon, lookup func(node int) LatLon) func(node int) float64 {
	return func(node int) float64 {
		d, _ := Haversine(lookup(node), destination, "km", 1)
		return d
	}
}

// CheapRulerHeuristic returns a scaled cheap-ruler A* heuristic.
// Admissibility requires circuity < 1 (for example 0.9).
func CheapRulerHeuristic(destination LatLon, circuity float64, lookup func(node int) LatLon) func(node int) float64 {
	return func(node int) float64 {
		d, _ := CheapRuler(lookup(node), destination, "km", circuity)
		return d
	}
}
