package dmin

import (
	"github.com/JasonCoombs/linear-arrangement-library/arrangement"
	"github.com/JasonCoombs/linear-arrangement-library/tree"
)

// minDPlanarTree computes the minimum D over all planar (crossing-free)
// arrangements of a free tree: root the tree at the right centroidal
// vertex and the projective embedding is also the planar optimum, since
// a centroid root is never covered.
func minDPlanarTree(t *tree.FreeTree) (uint64, *arrangement.Arrangement) {
	if t.NumVertices() == 1 {
		return 0, arrangement.New(1)
	}
	rt := t.ToRooted(planarRoot(t))
	rt.ComputeSubtreeSizes()
	return minDProjectiveTree(rt)
}

// planarRoot picks the centroid to root at. With a single centroidal
// vertex there is no choice. With two, take the one whose heaviest
// subtree — not counting the branch holding the other centroid — is
// smaller; ties go to the lower vertex index.
func planarRoot(t *tree.FreeTree) int {
	c1, c2, two := tree.CentroidOfComponent(t.Undirected, 0)
	if !two {
		return c1
	}
	h1 := heaviestBranchExcluding(t, c1, c2)
	h2 := heaviestBranchExcluding(t, c2, c1)
	if h2 < h1 {
		return c2
	}
	return c1
}

// heaviestBranchExcluding returns the largest subtree hanging off c when
// the tree is rooted at c, ignoring the branch that contains other.
func heaviestBranchExcluding(t *tree.FreeTree, c, other int) int {
	sizes := tree.SubtreeSizesFromPivot(t.Undirected, c)
	heaviest := 0
	for _, w := range t.Neighbours(c) {
		if w == other {
			continue
		}
		if sizes[w] > heaviest {
			heaviest = sizes[w]
		}
	}
	return heaviest
}
