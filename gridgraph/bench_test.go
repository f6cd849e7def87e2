package gridgraph_test

import (
	"testing"

	"github.com/routegraph/routegraph/gridgraph"
)

func BenchmarkNewCompile(b *testing.B) {
	blocks := map[[2]int]struct{}{}
	for y := 0; y < 80; y++ {
		blocks[[2]int{50, y}] = struct{}{}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.New(100, 100, blocks); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetShortestPath(b *testing.B) {
	gg, err := gridgraph.New(100, 100, nil)
	if err != nil {
		b.Fatal(err)
	}
	origin := gridgraph.Point{X: 1, Y: 1}
	destination := gridgraph.Point{X: 98, Y: 98}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gg.GetShortestPath(origin, destination); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetShortestPathCached(b *testing.B) {
	gg, err := gridgraph.New(100, 100, nil)
	if err != nil {
		b.Fatal(err)
	}
	origin := gridgraph.Point{X: 1, Y: 1}
	destination := gridgraph.Point{X: 98, Y: 98}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gg.GetShortestPath(origin, destination, gridgraph.WithCache(true, gridgraph.CacheForOrigin)); err != nil {
			b.Fatal(err)
		}
	}
}
