package geograph

import (
	"fmt"

	"github.com/routegraph/routegraph/geoutil"
	"github.com/routegraph/routegraph/rgerr"
)

// format converts length (in o.GeographUnits) to o.OutputUnits, renders
// coords in the requested shape, and drops the raw index path unless
// OutputPath is set.
func (gg *GeoGraph) format(length float64, coords []geoutil.LatLon, path []int, o Options) (Result, error) {
	outLength, err := geoutil.DistanceConverter(length, o.GeographUnits, o.OutputUnits)
	if err != nil {
		return Result{}, err
	}

	res := Result{Length: outLength}
	if o.OutputPath {
		res.Path = path
	}
	if o.LengthOnly {
		return res, nil
	}

	rendered, err := renderCoordinatePath(coords, o.OutputCoordinatePath)
	if err != nil {
		return Result{}, err
	}
	res.CoordinatePath = rendered
	res.LongFirst = o.OutputCoordinatePath == ListOfListsLongFirst
	return res, nil
}

// LatLonDict is the {latitude, longitude} shape used by ListOfDicts.
type LatLonDict struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func renderCoordinatePath(coords []geoutil.LatLon, format CoordinatePathFormat) (interface{}, error) {
	switch format {
	case ListOfLists:
		out := make([][2]float64, len(coords))
		for i, c := range coords {
			out[i] = [2]float64{c.Lat, c.Lon}
		}
		return out, nil
	case ListOfListsLongFirst:
		out := make([][2]float64, len(coords))
		for i, c := range coords {
			out[i] = [2]float64{c.Lon, c.Lat}
		}
		return out, nil
	case ListOfDicts:
		out := make([]LatLonDict, len(coords))
		for i, c := range coords {
			out[i] = LatLonDict{Latitude: c.Lat, Longitude: c.Lon}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized output coordinate path format %q", rgerr.ErrInvalidArgument, format)
	}
}
