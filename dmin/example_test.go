package dmin_test

import (
	"fmt"

	"github.com/JasonCoombs/linear-arrangement-library/dmin"
	"github.com/JasonCoombs/linear-arrangement-library/tree"
)

// Arrange a 5-vertex star: the hub belongs in the middle, its leaves
// split around it.
func ExampleMinD() {
	rt, _ := tree.FromHeadVector([]int{0, 1, 1, 1, 1})
	cost, arr := dmin.MinD(rt.ToFree(), dmin.Shiloach)

	fmt.Println("cost:", cost)
	fmt.Println("hub position:", arr.Position(0))
	// Output:
	// cost: 6
	// hub position: 2
}

// The three solvers form a dominance chain: adding constraints can only
// raise the optimum.
func ExampleMinDProjective() {
	rt, _ := tree.FromHeadVector([]int{0, 1, 1, 2, 2, 3, 3})
	ft := rt.ToFree()

	free, _ := dmin.MinD(ft, dmin.Shiloach)
	planar, _ := dmin.MinDPlanar(ft, dmin.AEF)
	projective, _ := dmin.MinDProjective(rt, dmin.AEF)

	fmt.Println(free <= planar && planar <= projective)
	// Output:
	// true
}
