package geograph

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/routegraph/routegraph/geoutil"
	"github.com/routegraph/routegraph/rgerr"
	"github.com/routegraph/routegraph/sgraph"
)

// multiLineStringDoc is the minimal shape LoadGeoJSON accepts: a single
// MultiLineString geometry whose coordinates are [lon,lat] pairs grouped
// per line. Producing this from raw, unsimplified road/rail/maritime
// traces is the job of an external line simplifier (Visvalingam-Whyatt),
// which is out of scope here; LoadGeoJSON only ingests its output.
type multiLineStringDoc struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

func round(v float64, precision int) float64 {
	scale := math.Pow10(precision)
	return math.Round(v*scale) / scale
}

// LoadGeoJSON builds a GeoGraph from an already-simplified MultiLineString
// document: each line is walked, endpoints are rounded to precision, each
// unique rounded (lat,lon) pair becomes a node, and each consecutive
// (p,q) pair along a line becomes an undirected edge weighted by
// haversine distance.
func LoadGeoJSON(r io.Reader, precision int) (*GeoGraph, error) {
	var doc multiLineStringDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", rgerr.ErrIOError, err)
	}
	if doc.Type != "MultiLineString" {
		return nil, fmt.Errorf("%w: expected MultiLineString, got %q", rgerr.ErrInvalidArgument, doc.Type)
	}

	index := make(map[[2]float64]int)
	var nodes []geoutil.LatLon
	var edges [][3]float64 // u, v, weight (u,v stored as float64 indices for simplicity)

	nodeIdx := func(lon, lat float64) int {
		key := [2]float64{round(lat, precision), round(lon, precision)}
		if idx, ok := index[key]; ok {
			return idx
		}
		idx := len(nodes)
		index[key] = idx
		nodes = append(nodes, geoutil.LatLon{Lat: key[0], Lon: key[1]})
		return idx
	}

	for _, line := range doc.Coordinates {
		var prevIdx int
		for i, coord := range line {
			idx := nodeIdx(coord[0], coord[1])
			if i > 0 && idx != prevIdx {
				d, _ := geoutil.Haversine(nodes[prevIdx], nodes[idx], "km", 1)
				edges = append(edges, [3]float64{float64(prevIdx), float64(idx), d})
			}
			prevIdx = idx
		}
	}

	g := sgraph.New(len(nodes))
	for _, e := range edges {
		g.AddUndirectedEdge(int(e[0]), int(e[1]), e[2])
	}
	return New(g, nodes), nil
}
