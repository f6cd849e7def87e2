package bmssp

import "container/heap"

// bucketItem is a (value, key) pair ordered by value for the min-heap.
type bucketItem struct {
	value float64
	key   int
}

type bucketHeap []bucketItem

func (h bucketHeap) Len() int            { return len(h) }
func (h bucketHeap) Less(i, j int) bool  { return h[i].value < h[j].value }
func (h bucketHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *bucketHeap) Push(x interface{}) { *h = append(*h, x.(bucketItem)) }
func (h *bucketHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// bucket is the keyed priority structure threaded through the BMSSP
// recursion (spec §4.2.5.1). It holds (key -> value) pairs with
// smallest-value-first access, implemented as a lazily-evicted min-heap
// paired with a "best recorded value per key" map - the same
// lazy-deletion discipline the rest of routegraph's heaps use, just keyed
// instead of node-identity-only.
type bucket struct {
	subsetSize int
	upperBound float64
	best       map[int]float64
	heap       bucketHeap
}

func newBucket(subsetSize int, upperBound float64) *bucket {
	return &bucket{
		subsetSize: subsetSize,
		upperBound: upperBound,
		best:       make(map[int]float64),
	}
}

// insert lowers the best recorded value for key if value is smaller, and
// pushes a new heap entry reflecting it. Stale entries are left in the
// heap and filtered out lazily by pull/pop.
func (b *bucket) insert(key int, value float64) {
	if cur, ok := b.best[key]; ok && cur <= value {
		return
	}
	b.best[key] = value
	heap.Push(&b.heap, bucketItem{value: value, key: key})
}

// batchPrepend inserts every (key, value) pair in kvs.
func (b *bucket) batchPrepend(kvs []keyValue) {
	for _, kv := range kvs {
		b.insert(kv.key, kv.value)
	}
}

type keyValue struct {
	key   int
	value float64
}

// isEmpty reports whether every key has been pulled out.
func (b *bucket) isEmpty() bool {
	return len(b.best) == 0
}

// popCurrent pops the single smallest heap entry that is still current
// against best, discarding stale entries along the way. It returns
// ok=false once the heap (and therefore best) is exhausted.
func (b *bucket) popCurrent() (bucketItem, bool) {
	for b.heap.Len() > 0 {
		item := heap.Pop(&b.heap).(bucketItem)
		cur, ok := b.best[item.key]
		if !ok || cur != item.value {
			continue // superseded by a smaller insert, or already pulled
		}
		delete(b.best, item.key)
		return item, true
	}
	return bucketItem{}, false
}

// pull pops up to subsetSize distinct current-best keys and returns the
// remaining lower bound: the minimum of whatever best values are left, or
// upperBound if the structure is now empty.
func (b *bucket) pull() (remainingBest float64, popped []int) {
	for len(popped) < b.subsetSize {
		item, ok := b.popCurrent()
		if !ok {
			break
		}
		popped = append(popped, item.key)
	}
	remainingBest = b.upperBound
	for _, v := range b.best {
		if v < remainingBest {
			remainingBest = v
		}
	}
	return remainingBest, popped
}
