package gridgraph_test

import (
	"fmt"

	"github.com/routegraph/routegraph/gridgraph"
)

func ExampleGridGraph_GetShortestPath() {
	blocks := map[[2]int]struct{}{}
	for y := 5; y <= 19; y++ {
		blocks[[2]int{10, y}] = struct{}{}
	}
	gg, err := gridgraph.New(20, 20, blocks, gridgraph.WithExteriorWalls(true))
	if err != nil {
		panic(err)
	}

	res, err := gg.GetShortestPath(gridgraph.Point{X: 2, Y: 10}, gridgraph.Point{X: 18, Y: 10})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f\n", res.Length)
	// Output: 20.97
}
