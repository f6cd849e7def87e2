package gridgraph

import (
	"compress/zlib"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/routegraph/routegraph/rgerr"
	"github.com/routegraph/routegraph/sptree"
)

const exportVersion = 1

// exportPayload is the implementation-defined binary shape of §6.2's
// GridGraph export: graph attributes plus whatever trees the cache had
// already built, so a reloaded GridGraph skips recomputation for any
// source it had already solved.
type exportPayload struct {
	XSize, YSize  int
	Blocks        [][2]int
	Shape         Shape
	ConnData      []Conn
	ExteriorWalls bool
	Trees         []*sptree.Tree
	ExportVersion int
}

// Export serializes gg's graph attributes and current tree cache to w as
// a gob payload compressed with zlib.
func (gg *GridGraph) Export(w io.Writer) error {
	blocks := make([][2]int, 0, len(gg.Blocks))
	for b := range gg.Blocks {
		blocks = append(blocks, b)
	}
	// gob cannot encode nil slice elements, so only filled slots are
	// written; Import places each tree back at its Source index.
	var trees []*sptree.Tree
	for _, t := range gg.cache.Slots() {
		if t != nil {
			trees = append(trees, t)
		}
	}
	payload := exportPayload{
		XSize:         gg.XSize,
		YSize:         gg.YSize,
		Blocks:        blocks,
		Shape:         gg.Shape,
		ConnData:      gg.ConnData,
		ExteriorWalls: gg.ExteriorWalls,
		Trees:         trees,
		ExportVersion: exportVersion,
	}

	zw := zlib.NewWriter(w)
	if err := gob.NewEncoder(zw).Encode(payload); err != nil {
		_ = zw.Close()
		return fmt.Errorf("%w: %v", rgerr.ErrIOError, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", rgerr.ErrIOError, err)
	}
	return nil
}

// Import reverses Export: it recompiles the graph from its serialized
// attributes (exterior walls are already baked into the serialized Blocks
// set, so recompilation must not reapply them) and restores the cached
// trees without recomputation. A version mismatch is
// rgerr.ErrInvalidArgument.
func Import(r io.Reader) (*GridGraph, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rgerr.ErrIOError, err)
	}
	defer zr.Close()

	var payload exportPayload
	if err := gob.NewDecoder(zr).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", rgerr.ErrIOError, err)
	}
	if payload.ExportVersion != exportVersion {
		return nil, fmt.Errorf("%w: export version %d unsupported, want %d",
			rgerr.ErrInvalidArgument, payload.ExportVersion, exportVersion)
	}

	blocks := make(map[[2]int]struct{}, len(payload.Blocks))
	for _, b := range payload.Blocks {
		blocks[b] = struct{}{}
	}
	gg, err := New(payload.XSize, payload.YSize, blocks,
		WithShape(payload.Shape), WithConnData(payload.ConnData), WithExteriorWalls(false))
	if err != nil {
		return nil, err
	}
	gg.ExteriorWalls = payload.ExteriorWalls
	slots := make([]*sptree.Tree, gg.g.Len())
	for _, t := range payload.Trees {
		if t.Source < 0 || t.Source >= len(slots) {
			return nil, fmt.Errorf("%w: cached tree source %d out of range", rgerr.ErrIOError, t.Source)
		}
		slots[t.Source] = t
	}
	gg.cache.RestoreSlots(slots)
	return gg, nil
}
