package geograph

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/routegraph/routegraph/geoutil"
	"github.com/routegraph/routegraph/rgerr"
	"github.com/routegraph/routegraph/sgraph"
)

// graphJSON is the on-disk shape of §6.2's .graphjson format.
type graphJSON struct {
	Type  string                `json:"type"`
	Graph []map[string]float64 `json:"graph"`
	Nodes [][2]float64         `json:"nodes"`
}

// SaveGraphJSON writes gg's current graph and nodes to w as
// {"type":"GeoGraph","graph":[...],"nodes":[...]}.
func (gg *GeoGraph) SaveGraphJSON(w io.Writer) error {
	payload := graphJSON{
		Type:  "GeoGraph",
		Graph: make([]map[string]float64, gg.G.Len()),
		Nodes: make([][2]float64, len(gg.Nodes)),
	}
	for i, adj := range gg.G.Adj {
		m := make(map[string]float64, len(adj))
		for k, v := range adj {
			m[strconv.Itoa(k)] = v
		}
		payload.Graph[i] = m
	}
	for i, n := range gg.Nodes {
		payload.Nodes[i] = [2]float64{n.Lat, n.Lon}
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("%w: %v", rgerr.ErrIOError, err)
	}
	return nil
}

// LoadGraphJSON reverses SaveGraphJSON, coercing adjacency string keys
// back to integers.
func LoadGraphJSON(r io.Reader) (*GeoGraph, error) {
	var payload graphJSON
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", rgerr.ErrIOError, err)
	}
	if payload.Type != "GeoGraph" {
		return nil, fmt.Errorf("%w: unexpected type %q in graphjson payload", rgerr.ErrInvalidArgument, payload.Type)
	}
	g := sgraph.New(len(payload.Graph))
	for i, m := range payload.Graph {
		for k, v := range m {
			idx, err := strconv.Atoi(k)
			if err != nil {
				return nil, fmt.Errorf("%w: non-integer adjacency key %q", rgerr.ErrIOError, k)
			}
			g.AddEdge(i, idx, v)
		}
	}
	nodes := make([]geoutil.LatLon, len(payload.Nodes))
	for i, n := range payload.Nodes {
		nodes[i] = geoutil.LatLon{Lat: n[0], Lon: n[1]}
	}
	return New(g, nodes), nil
}

// SaveGraphJSONFile enforces the .graphjson extension and writes via
// SaveGraphJSON.
func (gg *GeoGraph) SaveGraphJSONFile(w io.Writer, filename string) error {
	if filepath.Ext(filename) != ".graphjson" {
		return fmt.Errorf("%w: filename %q must end in .graphjson", rgerr.ErrIOError, filename)
	}
	return gg.SaveGraphJSON(w)
}

// LoadGraphJSONFile enforces the .graphjson extension and reads via
// LoadGraphJSON.
func LoadGraphJSONFile(r io.Reader, filename string) (*GeoGraph, error) {
	if filepath.Ext(filename) != ".graphjson" {
		return nil, fmt.Errorf("%w: filename %q must end in .graphjson", rgerr.ErrIOError, filename)
	}
	return LoadGraphJSON(r)
}

// geoJSONFeature and geoJSONFeatureCollection model the non-compact
// emission shape of §6.2: one LineString Feature per undirected edge,
// emitted once (origin_idx < destination_idx), coordinates as [lon,lat].
type geoJSONGeometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

type geoJSONFeature struct {
	Type       string                 `json:"type"`
	Geometry   geoJSONGeometry        `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type geoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []geoJSONFeature `json:"features"`
}

// SaveGeoJSON emits either a FeatureCollection of per-edge LineStrings
// (compact=false) or a single GeometryCollection MultiLineString whose
// coordinate pairs cover every directed edge (compact=true).
func (gg *GeoGraph) SaveGeoJSON(w io.Writer, compact bool) error {
	if compact {
		var coords [][][2]float64
		for u, adj := range gg.G.Adj {
			for v := range adj {
				coords = append(coords, [][2]float64{
					{gg.Nodes[u].Lon, gg.Nodes[u].Lat},
					{gg.Nodes[v].Lon, gg.Nodes[v].Lat},
				})
			}
		}
		payload := map[string]interface{}{
			"type": "GeometryCollection",
			"geometries": []geoJSONGeometry{
				{Type: "MultiLineString", Coordinates: coords},
			},
		}
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			return fmt.Errorf("%w: %v", rgerr.ErrIOError, err)
		}
		return nil
	}

	fc := geoJSONFeatureCollection{Type: "FeatureCollection"}
	for u, adj := range gg.G.Adj {
		for v, dist := range adj {
			if u >= v {
				continue
			}
			fc.Features = append(fc.Features, geoJSONFeature{
				Type: "Feature",
				Geometry: geoJSONGeometry{
					Type: "LineString",
					Coordinates: [][2]float64{
						{gg.Nodes[u].Lon, gg.Nodes[u].Lat},
						{gg.Nodes[v].Lon, gg.Nodes[v].Lat},
					},
				},
				Properties: map[string]interface{}{
					"origin_idx":      u,
					"destination_idx": v,
					"distance":        dist,
				},
			})
		}
	}
	if err := json.NewEncoder(w).Encode(fc); err != nil {
		return fmt.Errorf("%w: %v", rgerr.ErrIOError, err)
	}
	return nil
}
