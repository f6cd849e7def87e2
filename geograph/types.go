// Package geograph layers spatial node lookup, off-graph origin/
// destination injection, great-circle distance math, and geographic
// persistence on top of sgraph.Graph and sptree.Cache.
package geograph

import (
	"github.com/routegraph/routegraph/geoutil"
	"github.com/routegraph/routegraph/kdtree"
	"github.com/routegraph/routegraph/sgraph"
	"github.com/routegraph/routegraph/spath"
	"github.com/routegraph/routegraph/sptree"
)

// GeoGraph owns a sparse graph, a parallel lat/lon array, a spatial
// index over that array, and a tree cache over the graph. Outside of a
// GetShortestPath call, len(G) == len(Nodes) == OriginalLen().
type GeoGraph struct {
	G           *sgraph.Graph
	Nodes       []geoutil.LatLon
	originalLen int
	index       *kdtree.Tree
	cache       *sptree.Cache
}

// New builds a GeoGraph over g and nodes without re-validating g for
// speed; callers who want structural guarantees call sgraph.Validate
// themselves first.
func New(g *sgraph.Graph, nodes []geoutil.LatLon) *GeoGraph {
	gg := &GeoGraph{
		G:           g,
		Nodes:       nodes,
		originalLen: g.Len(),
		index:       kdtree.New(nodes),
		cache:       sptree.NewCache(g),
	}
	return gg
}

// OriginalLen reports the node count captured at construction and updated
// by ModAddNode and MergeWithOtherGeoGraph, i.e. the length G and Nodes
// are restored to after any GetShortestPath call.
func (gg *GeoGraph) OriginalLen() int { return gg.originalLen }

// NodeAdditionType selects how a temporary origin/destination node is
// wired into the graph.
type NodeAdditionType string

const (
	KDClosest NodeAdditionType = "kdclosest"
	Closest   NodeAdditionType = "closest"
	Quadrant  NodeAdditionType = "quadrant"
	All       NodeAdditionType = "all"
)

// NodeAdditionMath selects the distance metric used to rank candidates
// for Closest/Quadrant addition.
type NodeAdditionMath string

const (
	Euclidean NodeAdditionMath = "euclidean"
	HaversineMath NodeAdditionMath = "haversine"
)

// CoordinatePathFormat selects how GetShortestPath renders its
// coordinate path.
type CoordinatePathFormat string

const (
	ListOfLists          CoordinatePathFormat = "list_of_lists"
	ListOfListsLongFirst CoordinatePathFormat = "list_of_lists_long_first"
	ListOfDicts          CoordinatePathFormat = "list_of_dicts"
)

// AlgorithmFunc is the shape every C2 algorithm entry point shares, used
// by GetShortestPath's non-cache path so any of spath's algorithms (or a
// caller's own) can be substituted.
type AlgorithmFunc func(g *sgraph.Graph, origin, destination int) (spath.Result, error)

// Options configures GetShortestPath. See Option constructors below for
// defaults.
type Options struct {
	OutputUnits                string
	GeographUnits              string
	OutputCoordinatePath       CoordinatePathFormat
	OutputPath                 bool
	Cache                      bool
	LengthOnly                 bool
	AlgorithmFn                AlgorithmFunc
	NodeAdditionType           NodeAdditionType
	DestinationNodeAdditionType NodeAdditionType
	NodeAdditionCircuity       float64
	OffGraphCircuity           float64
	NodeAdditionMath           NodeAdditionMath
	NodeAdditionLatLonBound    float64 // < 0 means "auto"
	AutoLatLonBoundMax         float64
	Silent                     bool
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns the option set documented in spec §4.7.1.
func DefaultOptions() Options {
	return Options{
		OutputUnits:                 "km",
		GeographUnits:                "km",
		OutputCoordinatePath:         ListOfLists,
		OutputPath:                   false,
		Cache:                        false,
		LengthOnly:                   false,
		AlgorithmFn:                  spath.HeapDijkstra,
		NodeAdditionType:             KDClosest,
		DestinationNodeAdditionType:  KDClosest,
		NodeAdditionCircuity:         4,
		OffGraphCircuity:             1,
		NodeAdditionMath:             Euclidean,
		NodeAdditionLatLonBound:      -1, // auto
		AutoLatLonBoundMax:           2,
		Silent:                       false,
	}
}

func WithOutputUnits(u string) Option          { return func(o *Options) { o.OutputUnits = u } }
func WithGeographUnits(u string) Option        { return func(o *Options) { o.GeographUnits = u } }
func WithOutputCoordinatePath(f CoordinatePathFormat) Option {
	return func(o *Options) { o.OutputCoordinatePath = f }
}
func WithOutputPath(b bool) Option   { return func(o *Options) { o.OutputPath = b } }
func WithCache(b bool) Option        { return func(o *Options) { o.Cache = b } }
func WithLengthOnly(b bool) Option   { return func(o *Options) { o.LengthOnly = b } }
func WithAlgorithmFn(fn AlgorithmFunc) Option {
	return func(o *Options) { o.AlgorithmFn = fn }
}
func WithNodeAdditionType(t NodeAdditionType) Option {
	return func(o *Options) { o.NodeAdditionType = t }
}
func WithDestinationNodeAdditionType(t NodeAdditionType) Option {
	return func(o *Options) { o.DestinationNodeAdditionType = t }
}
func WithNodeAdditionCircuity(c float64) Option {
	return func(o *Options) { o.NodeAdditionCircuity = c }
}
func WithOffGraphCircuity(c float64) Option { return func(o *Options) { o.OffGraphCircuity = c } }
func WithNodeAdditionMath(m NodeAdditionMath) Option {
	return func(o *Options) { o.NodeAdditionMath = m }
}
func WithNodeAdditionLatLonBound(b float64) Option {
	return func(o *Options) { o.NodeAdditionLatLonBound = b }
}
func WithAutoLatLonBoundMax(m float64) Option {
	return func(o *Options) { o.AutoLatLonBoundMax = m }
}
func WithSilent(b bool) Option { return func(o *Options) { o.Silent = b } }

// Result is GetShortestPath's output shape. LongFirst mirrors spec
// §4.7.1/§6.1's "long_first" flag: it is true when CoordinatePath was
// rendered with ListOfListsLongFirst, so a caller can tell [lon,lat]
// output apart from the default [lat,lon] ordering without inspecting
// the options it passed in.
type Result struct {
	Length         float64
	CoordinatePath interface{}
	Path           []int
	LongFirst      bool
}
