package gridgraph

import (
	"fmt"
	"math"

	"github.com/routegraph/routegraph/rgerr"
	"github.com/routegraph/routegraph/sgraph"
	"github.com/routegraph/routegraph/sptree"
)

// New compiles an xSize x ySize grid, a set of blocked cells, and an
// optional moving shape into a GridGraph, per spec §4.8:
//
//  1. build a dense adjacency from connData, respecting grid bounds;
//  2. for each conn step, precompute the swept cell offsets the shape
//     passes through going from a cell's origin to +(dx,dy);
//  3. for each blocked cell b, clear its outgoing edges and, for every
//     (delta, offsets) pair and offset o, delete the edge from b-o to
//     b-o+delta (the move that would pass through b given the shape);
//  4. linearize into the sgraph.Graph adjacency sequence.
//
// If addExteriorWalls (via WithExteriorWalls, default true) is set, the
// full rim of the grid is folded into blocks before compilation.
func New(xSize, ySize int, blocks map[[2]int]struct{}, opts ...Option) (*GridGraph, error) {
	if xSize <= 0 || ySize <= 0 {
		return nil, fmt.Errorf("%w: x_size and y_size must both be positive", rgerr.ErrInvalidArgument)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.shape) < 3 {
		return nil, fmt.Errorf("%w: shape must have at least 3 vertices", rgerr.ErrInvalidArgument)
	}

	allBlocks := make(map[[2]int]struct{}, len(blocks))
	for b := range blocks {
		allBlocks[b] = struct{}{}
	}
	if o.addExteriorWalls {
		for x := 0; x < xSize; x++ {
			allBlocks[[2]int{x, 0}] = struct{}{}
			allBlocks[[2]int{x, ySize - 1}] = struct{}{}
		}
		for y := 0; y < ySize; y++ {
			allBlocks[[2]int{0, y}] = struct{}{}
			allBlocks[[2]int{xSize - 1, y}] = struct{}{}
		}
	}

	gg := &GridGraph{
		XSize:         xSize,
		YSize:         ySize,
		Blocks:        allBlocks,
		Shape:         o.shape,
		ConnData:      o.connData,
		ExteriorWalls: o.addExteriorWalls,
	}

	g := sgraph.New(xSize * ySize)
	for y := 0; y < ySize; y++ {
		for x := 0; x < xSize; x++ {
			if _, blocked := allBlocks[[2]int{x, y}]; blocked {
				continue
			}
			u := gg.Idx(x, y)
			for _, c := range o.connData {
				nx, ny := x+c.DX, y+c.DY
				if !gg.InBounds(nx, ny) {
					continue
				}
				if _, blocked := allBlocks[[2]int{nx, ny}]; blocked {
					continue
				}
				g.AddEdge(u, gg.Idx(nx, ny), c.Dist)
			}
		}
	}

	// Precompute, per conn step, the cell offsets swept by the shape; used
	// below to clear corner-squeeze edges around every blocked cell.
	sweptByConn := make([][]cellOffset, len(o.connData))
	for i, c := range o.connData {
		sweptByConn[i] = sweptOffsets(o.shape, c.DX, c.DY)
	}

	for b := range allBlocks {
		bIdx := gg.Idx(b[0], b[1])
		for v := range g.Adj[bIdx] {
			g.RemoveEdge(bIdx, v)
		}
		for i, c := range o.connData {
			for _, off := range sweptByConn[i] {
				fromX, fromY := b[0]-off.dx, b[1]-off.dy
				if !gg.InBounds(fromX, fromY) {
					continue
				}
				toX, toY := fromX+c.DX, fromY+c.DY
				if !gg.InBounds(toX, toY) {
					continue
				}
				g.RemoveEdge(gg.Idx(fromX, fromY), gg.Idx(toX, toY))
			}
		}
	}

	gg.g = g
	gg.cache = sptree.NewCache(g)
	return gg, nil
}

// EuclideanHeuristic returns the default A* heuristic used by
// GetShortestPath: straight-line distance in grid units from a node's
// cell center to destination's cell center. Admissible because every
// conn-data edge length is already the exact Euclidean distance between
// the two cell centers it connects, so no path can ever undercut it.
func (gg *GridGraph) EuclideanHeuristic(destination [2]int) func(node int) float64 {
	dx, dy := float64(destination[0]), float64(destination[1])
	return func(node int) float64 {
		x, y := gg.Coord(node)
		ddx, ddy := float64(x)-dx, float64(y)-dy
		return math.Sqrt(ddx*ddx + ddy*ddy)
	}
}
