package gridgraph

import (
	"github.com/routegraph/routegraph/sgraph"
	"github.com/routegraph/routegraph/spath"
	"github.com/routegraph/routegraph/sptree"
)

// Point is a 2D coordinate, used for both integer cell addresses and
// off-grid query endpoints (which may be non-integer).
type Point struct {
	X, Y float64
}

// Shape is a polygon given as relative (dx,dy) vertices around a moving
// cell's origin. DefaultShape is the unit square.
type Shape [][2]float64

// DefaultShape returns the unit-square shape {(0,0),(0,1),(1,0),(1,1)}.
func DefaultShape() Shape {
	return Shape{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
}

// Conn is one entry in a connection template: a step of (DX,DY) with
// associated edge length Dist.
type Conn struct {
	DX, DY int
	Dist   float64
}

// DefaultConnData returns the 8-neighborhood: four cardinal steps at
// length 1, four diagonal steps at length sqrt(2).
func DefaultConnData() []Conn {
	const sqrt2 = 1.4142135623730951
	return []Conn{
		{DX: 1, DY: 0, Dist: 1},
		{DX: -1, DY: 0, Dist: 1},
		{DX: 0, DY: 1, Dist: 1},
		{DX: 0, DY: -1, Dist: 1},
		{DX: 1, DY: 1, Dist: sqrt2},
		{DX: 1, DY: -1, Dist: sqrt2},
		{DX: -1, DY: 1, Dist: sqrt2},
		{DX: -1, DY: -1, Dist: sqrt2},
	}
}

// Option configures New.
type Option func(*options)

type options struct {
	shape            Shape
	connData         []Conn
	addExteriorWalls bool
}

func defaultOptions() options {
	return options{
		shape:            DefaultShape(),
		connData:         DefaultConnData(),
		addExteriorWalls: true,
	}
}

// WithShape overrides the default unit-square moving shape.
func WithShape(s Shape) Option { return func(o *options) { o.shape = s } }

// WithConnData overrides the default 8-neighborhood connection template.
func WithConnData(c []Conn) Option { return func(o *options) { o.connData = c } }

// WithExteriorWalls toggles whether the grid's rim is auto-blocked.
func WithExteriorWalls(b bool) Option { return func(o *options) { o.addExteriorWalls = b } }

// GridGraph owns a compiled sgraph.Graph over an XSize x YSize cell grid,
// the blocked-cell set and shape it was compiled from, and a tree cache
// used by GetShortestPath when cache=true. idx(x,y) = x + y*XSize.
type GridGraph struct {
	XSize, YSize int
	Blocks       map[[2]int]struct{}
	Shape        Shape
	ConnData     []Conn
	ExteriorWalls bool

	g     *sgraph.Graph
	cache *sptree.Cache
}

// Idx linearizes (x,y) into the graph's node index. It does not check
// bounds: for an (x,y) outside the grid the result is not that cell's
// index, so callers check InBounds first.
func (gg *GridGraph) Idx(x, y int) int {
	return x + y*gg.XSize
}

// Coord reverses Idx.
func (gg *GridGraph) Coord(idx int) (x, y int) {
	return idx % gg.XSize, idx / gg.XSize
}

// InBounds reports whether (x,y) lies within [0,XSize) x [0,YSize).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.XSize && y >= 0 && y < gg.YSize
}

// Graph exposes the compiled sparse graph read-only, for callers who want
// to run a spath algorithm directly instead of through GetShortestPath.
func (gg *GridGraph) Graph() *sgraph.Graph { return gg.g }

// QueryOption configures GetShortestPath.
type QueryOption func(*queryOptions)

// CacheFor selects which endpoint plays the canonical cache source role
// when cache=true, since sptree.Cache keys its trees by source index and
// the underlying grid graph is always symmetric.
type CacheFor int

const (
	CacheForOrigin CacheFor = iota
	CacheForDestination
)

// CoordinatePathFormat selects how GetShortestPath renders its returned
// coordinate path.
type CoordinatePathFormat string

const (
	ListOfLists  CoordinatePathFormat = "list_of_lists"
	ListOfTuples CoordinatePathFormat = "list_of_tuples"
	ListOfDicts  CoordinatePathFormat = "list_of_dicts"
)

type queryOptions struct {
	cache                bool
	cacheFor             CacheFor
	outputPath           bool
	outputCoordinatePath CoordinatePathFormat
	heuristic            spath.Heuristic
	noHeuristic          bool
}

func defaultQueryOptions() queryOptions {
	return queryOptions{
		cache:                false,
		cacheFor:             CacheForOrigin,
		outputPath:           false,
		outputCoordinatePath: ListOfLists,
		heuristic:            nil,
		noHeuristic:          false,
	}
}

// WithCache routes the query through the shared sptree.Cache instead of a
// fresh spath.AStar search, amortizing repeat queries from the same
// cacheFor endpoint.
func WithCache(cache bool, cacheFor CacheFor) QueryOption {
	return func(o *queryOptions) { o.cache = cache; o.cacheFor = cacheFor }
}

// WithOutputPath includes the raw node-index path in the result.
func WithOutputPath(b bool) QueryOption { return func(o *queryOptions) { o.outputPath = b } }

// WithOutputCoordinatePath selects the coordinate-path render shape.
func WithOutputCoordinatePath(f CoordinatePathFormat) QueryOption {
	return func(o *queryOptions) { o.outputCoordinatePath = f }
}

// WithHeuristic overrides the default Euclidean A* heuristic.
func WithHeuristic(h spath.Heuristic) QueryOption {
	return func(o *queryOptions) { o.heuristic = h; o.noHeuristic = false }
}

// WithNoHeuristic disables the heuristic entirely, falling back to plain
// HeapDijkstra (via AStar's own nil-heuristic delegation).
func WithNoHeuristic() QueryOption {
	return func(o *queryOptions) { o.heuristic = nil; o.noHeuristic = true }
}

// PointDict is the {x, y} shape used by ListOfDicts.
type PointDict struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Result is GetShortestPath's output shape.
type Result struct {
	Length         float64
	CoordinatePath interface{}
	Path           []int
}
