package tree_test

import (
	"fmt"

	"github.com/JasonCoombs/linear-arrangement-library/graph"
	"github.com/JasonCoombs/linear-arrangement-library/tree"
)

// A head vector describes a rooted tree in one line: entry i is the
// 1-based parent of vertex i+1, and 0 marks the root.
func ExampleFromHeadVector() {
	rt, _ := tree.FromHeadVector([]int{0, 1, 1, 2, 2})
	rt.ComputeSubtreeSizes()

	fmt.Println("root:", rt.Root())
	fmt.Println("subtree at 1:", rt.NumSubtreeNodes(1))
	// Output:
	// root: 0
	// subtree at 1: 3
}

func ExampleCentroidOfComponent() {
	// path 0-1-2-3-4: the middle vertex is the unique centroid
	ft, _ := tree.FreeTreeFromEdges(5, []graph.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4},
	})
	c, _, two := tree.CentroidOfComponent(ft.Undirected, 0)

	fmt.Println(c, two)
	// Output:
	// 2 false
}
