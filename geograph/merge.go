package geograph

import "github.com/routegraph/routegraph/geoutil"

// MergeOption configures MergeWithOtherGeoGraph.
type MergeOption func(*mergeOptions)

type mergeOptions struct {
	circuitySelf, circuityOther         float64
	additionTypeSelf, additionTypeOther NodeAdditionType
	additionMath                        NodeAdditionMath
}

func defaultMergeOptions() mergeOptions {
	return mergeOptions{
		circuitySelf:      1.2,
		circuityOther:     1.2,
		additionTypeSelf:  Closest,
		additionTypeOther: Closest,
		additionMath:      Euclidean,
	}
}

func WithMergeCircuitySelf(c float64) MergeOption  { return func(o *mergeOptions) { o.circuitySelf = c } }
func WithMergeCircuityOther(c float64) MergeOption { return func(o *mergeOptions) { o.circuityOther = c } }
func WithMergeAdditionTypeSelf(t NodeAdditionType) MergeOption {
	return func(o *mergeOptions) { o.additionTypeSelf = t }
}
func WithMergeAdditionTypeOther(t NodeAdditionType) MergeOption {
	return func(o *mergeOptions) { o.additionTypeOther = t }
}
func WithMergeAdditionMath(m NodeAdditionMath) MergeOption {
	return func(o *mergeOptions) { o.additionMath = m }
}

// MergeWithOtherGeoGraph mutates gg in place: for each connection
// coordinate pair, injects a node into both gg and other at the
// requested addition types, then copies other's (possibly augmented)
// adjacency and nodes into gg, renumbering so that an index i in other
// becomes i + len(gg.Nodes) except where i is one of the temp connection
// nodes just injected into other, in which case it maps to the already-
// added index in gg. Edges bridging the two graphs exist only via the
// connection nodes; other is left with its own temp nodes cleaned up
// before return. The nodes added to gg are permanent, and OriginalLen
// reports the merged length afterward.
func (gg *GeoGraph) MergeWithOtherGeoGraph(other *GeoGraph, connectionPoints []geoutil.LatLon, opts ...MergeOption) error {
	mo := defaultMergeOptions()
	for _, opt := range opts {
		opt(&mo)
	}

	otherBaseLen := other.G.Len()

	// nodeConnectionMapper[otherTempIdx] = selfTempIdx
	nodeConnectionMapper := make(map[int]int, len(connectionPoints))

	for _, pt := range connectionPoints {
		selfIdx, err := gg.AddNode(pt, mo.circuitySelf, mo.additionTypeSelf, mo.additionMath, 5)
		if err != nil {
			return err
		}
		otherIdx, err := other.AddNode(pt, mo.circuityOther, mo.additionTypeOther, mo.additionMath, 5)
		if err != nil {
			return err
		}
		nodeConnectionMapper[otherIdx] = selfIdx
	}

	// Snapshot other's (now-augmented) state before cleaning up its temp
	// nodes, so the merge sees the connection edges other just grew.
	otherAdj := make([]map[int]float64, other.G.Len())
	for i, m := range other.G.Adj {
		cp := make(map[int]float64, len(m))
		for k, v := range m {
			cp[k] = v
		}
		otherAdj[i] = cp
	}
	otherNodes := append([]geoutil.LatLon(nil), other.Nodes...)

	for other.G.Len() > otherBaseLen {
		other.RemoveAppendedNode()
	}

	selfLenAfterConnections := gg.G.Len()

	// nodeConnectionMap[i] is the destination index in gg for source
	// index i in the otherAdj/otherNodes snapshot.
	nodeConnectionMap := make([]int, len(otherAdj))
	nextFreeIdx := selfLenAfterConnections
	for i := range otherAdj {
		if mapped, ok := nodeConnectionMapper[i]; ok {
			nodeConnectionMap[i] = mapped
			continue
		}
		nodeConnectionMap[i] = nextFreeIdx
		nextFreeIdx++
	}

	for i, n := range otherNodes {
		if _, ok := nodeConnectionMapper[i]; ok {
			continue // already present in gg via AddNode above
		}
		gg.G.AppendNode()
		gg.Nodes = append(gg.Nodes, n)
	}
	gg.cache.Grow()

	for i, adj := range otherAdj {
		dst := nodeConnectionMap[i]
		for j, w := range adj {
			gg.G.AddEdge(dst, nodeConnectionMap[j], w)
		}
	}
	gg.originalLen = gg.G.Len()

	return nil
}
