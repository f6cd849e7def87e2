// Package geoutil holds the great-circle distance math shared by geograph
// and kdtree: haversine distance, a cheap equirectangular approximation
// for A* heuristics, unit conversion, and the bounding-box sizing helper.
package geoutil

import (
	"fmt"
	"math"

	"github.com/routegraph/routegraph/rgerr"
)

// LatLon is a point in degrees: Lat in [-90,90], Lon in [-180,180].
type LatLon struct {
	Lat float64
	Lon float64
}

// earthRadius maps a unit name to the Earth's radius in that unit.
var earthRadius = map[string]float64{
	"km": 6371,
	"m":  6371000,
	"mi": 3959,
	"ft": 3959 * 5280,
}

// kmTable converts a distance already expressed in kilometers into the
// named unit.
var kmTable = map[string]float64{
	"mi": 0.621371,
	"m":  1000,
	"ft": 3280.84,
	"km": 1,
}

func validUnit(units string) error {
	if _, ok := earthRadius[units]; !ok {
		return fmt.Errorf("%w: unrecognized unit %q", rgerr.ErrInvalidArgument, units)
	}
	return nil
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
