package kdtree

import (
	"sort"

	"github.com/routegraph/routegraph/geoutil"
)

// buildFrame is one unit of work on the explicit build stack: partition
// points[lo:hi) around their median on the given axis and wire the
// resulting node into parent's left or right child slot (parent < 0
// marks the root).
type buildFrame struct {
	lo, hi      int
	axis        int
	parent      int
	isLeftChild bool
}

// New builds a k-d tree over points, embedding each on the unit sphere
// and round-robin splitting on axes x,y,z. Build is O(N log^2 N), since
// each level fully sorts its sub-slices to find the medians; the
// recursive partition is implemented with an explicit stack instead of
// call-stack recursion so construction depth is never bounded by Go's
// stack growth limits on adversarial (e.g. pre-sorted) input.
func New(points []geoutil.LatLon) *Tree {
	if len(points) == 0 {
		return &Tree{root: -1}
	}
	pts := make([]point3, len(points))
	for i, p := range points {
		pts[i] = toXYZ(p, i)
	}

	t := &Tree{nodes: make([]node, 0, len(pts)), root: -1}
	stack := []buildFrame{{lo: 0, hi: len(pts), axis: 0, parent: -1}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.lo >= f.hi {
			continue
		}
		slice := pts[f.lo:f.hi]
		sort.Slice(slice, func(i, j int) bool {
			return axisValue(slice[i], f.axis) < axisValue(slice[j], f.axis)
		})
		mid := len(slice) / 2

		nodeIdx := len(t.nodes)
		t.nodes = append(t.nodes, node{p: slice[mid], axis: f.axis, left: -1, right: -1})

		if f.parent == -1 {
			t.root = nodeIdx
		} else if f.isLeftChild {
			t.nodes[f.parent].left = nodeIdx
		} else {
			t.nodes[f.parent].right = nodeIdx
		}

		nextAxis := (f.axis + 1) % 3
		leftLo, leftHi := f.lo, f.lo+mid
		rightLo, rightHi := f.lo+mid+1, f.hi
		if leftLo < leftHi {
			stack = append(stack, buildFrame{lo: leftLo, hi: leftHi, axis: nextAxis, parent: nodeIdx, isLeftChild: true})
		}
		if rightLo < rightHi {
			stack = append(stack, buildFrame{lo: rightLo, hi: rightHi, axis: nextAxis, parent: nodeIdx, isLeftChild: false})
		}
	}

	return t
}

// queryFrame is one unit of work on the explicit descent stack used by
// ClosestIdx.
type queryFrame struct {
	node int
}

// ClosestIdx embeds query and returns the original_index of the stored
// point with smallest squared-Euclidean (equivalently, great-circle)
// distance to it, descending both children guided by the current best
// bound and pruning the far subtree whenever its splitting-plane
// distance alone already exceeds that bound. On an exact distance tie,
// the point with the smallest original_index (earliest in the input to
// New) wins.
func (t *Tree) ClosestIdx(query geoutil.LatLon) int {
	if t.root == -1 {
		return -1
	}
	q := toXYZ(query, -1)

	bestIdx := -1
	bestDist := 0.0
	haveBest := false

	stack := []queryFrame{{node: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node == -1 {
			continue
		}
		n := t.nodes[f.node]

		d := squaredDistance(q, n.p)
		if !haveBest || d < bestDist || (d == bestDist && n.p.idx < bestIdx) {
			bestDist = d
			bestIdx = n.p.idx
			haveBest = true
		}

		diff := axisValue(q, n.axis) - axisValue(n.p, n.axis)
		near, far := n.left, n.right
		if diff > 0 {
			near, far = n.right, n.left
		}

		// Push far before near so that near is popped, and visited, first.
		// An exact tie with the bound is still visited, so a tied point
		// with a smaller original_index is not pruned.
		if far != -1 && (!haveBest || diff*diff <= bestDist) {
			stack = append(stack, queryFrame{node: far})
		}
		if near != -1 {
			stack = append(stack, queryFrame{node: near})
		}
	}

	return bestIdx
}
