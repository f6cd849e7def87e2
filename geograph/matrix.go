package geograph

import (
	"github.com/routegraph/routegraph/geoutil"
)

// DistanceMatrix implements spec §4.7.4: for I query points, resolve each
// to its closest existing node via a single kdclosest GetNodeDistances
// call, then pairwise reuse the tree cache so at most I distinct source
// trees are built, yielding O((N+M) log N * I + I^2) instead of the naive
// O((N+M) log N * I^2).
func (gg *GeoGraph) DistanceMatrix(points []geoutil.LatLon, offGraphCircuity float64, geographUnits, outputUnits string) ([][]float64, error) {
	// dist_multiplier rescales graph-native distances (assumed to already
	// be expressed in geographUnits); node_addition_multiplier rescales
	// the haversine-based entry/exit legs, which GetNodeDistances always
	// reports in kilometers regardless of geographUnits.
	distMultiplier, err := geoutil.DistanceConverter(1, geographUnits, outputUnits)
	if err != nil {
		return nil, err
	}
	nodeAdditionMultiplier, err := geoutil.DistanceConverter(1, "km", outputUnits)
	if err != nil {
		return nil, err
	}

	entryIdx := make([]int, len(points))
	entryLen := make([]float64, len(points))
	for i, p := range points {
		dists, err := gg.GetNodeDistances(p, offGraphCircuity, KDClosest, Euclidean, 0)
		if err != nil {
			return nil, err
		}
		idx, d, err := singleEntry(dists)
		if err != nil {
			return nil, err
		}
		entryIdx[i] = idx
		entryLen[i] = d * nodeAdditionMultiplier
	}

	n := len(points)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || entryIdx[i] == entryIdx[j] {
				matrix[i][j] = 0
				continue
			}
			inner, err := gg.cache.GetShortestPath(entryIdx[i], entryIdx[j], true)
			if err != nil {
				matrix[i][j] = 0
				continue
			}
			matrix[i][j] = inner.Length*distMultiplier + entryLen[i] + entryLen[j]
		}
	}
	return matrix, nil
}
