package bfs_test

import (
	"fmt"

	"github.com/ta7mid/vc-research-experiments/bfs"
	"github.com/ta7mid/vc-research-experiments/core"
)

// ExampleBFS demonstrates the deterministic visit order on a small cycle
// with a chord: neighbors are explored in ascending order.
func ExampleBFS() {
	// 0─1
	// │╲│
	// 3─2
	c, err := core.NewCanonical(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(c, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	// Output:
	// [0 1 2 3]
}

// ExampleComponents shows the component decomposition of two disjoint
// edges.
func ExampleComponents() {
	c, err := core.NewCanonical(4, [][2]int{{0, 1}, {2, 3}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(bfs.Components(c))
	// Output:
	// [[0 1] [2 3]]
}
