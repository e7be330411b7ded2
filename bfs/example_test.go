package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/norman/bfs"
	"github.com/katalvlaran/norman/core"
)

// ExampleBFS measures how deep an AMR nests below its top.
func ExampleBFS() {
	g := core.NewBuilder("w").
		Instance("w", "want-01").
		Add("w", "ARG1", "g").
		Instance("g", "go-02").
		Add("g", "ARG0", "b").
		Instance("b", "boy").
		Graph()

	res, err := bfs.BFS(g, g.Top(), bfs.WithUndirected())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("order:", res.Order)
	fmt.Println("depth:", res.MaxDepth())

	// Output:
	// order: [w g b]
	// depth: 2
}
