package dmin

import (
	"github.com/JasonCoombs/linear-arrangement-library/arrangement"
	"github.com/JasonCoombs/linear-arrangement-library/tree"
)

// MinD returns the minimum sum of edge lengths of t over all linear
// arrangements, and an arrangement attaining it. alg must be Shiloach
// (or its alias Chung). A rooted tree is accepted after ToFree.
//
// Panics if t is not a valid tree or alg does not apply: both are
// programmer errors.
func MinD(t *tree.FreeTree, alg Algorithm) (uint64, *arrangement.Arrangement) {
	requireFreeTree(t)
	if alg != Shiloach {
		panic("dmin: MinD supports the Shiloach/Chung algorithm only")
	}
	return minDUnconstrained(t)
}

// MinDPlanar returns the minimum sum of edge lengths of t over planar
// (crossing-free) arrangements, and an arrangement attaining it. alg
// must be AEF. A rooted tree is accepted after ToFree.
func MinDPlanar(t *tree.FreeTree, alg Algorithm) (uint64, *arrangement.Arrangement) {
	requireFreeTree(t)
	if alg != AEF {
		panic("dmin: MinDPlanar supports the AEF algorithm only")
	}
	return minDPlanarTree(t)
}

// MinDProjective returns the minimum sum of edge lengths of t over
// projective arrangements — planar, with no edge covering the root —
// and an arrangement attaining it. alg must be AEF.
func MinDProjective(t *tree.RootedTree, alg Algorithm) (uint64, *arrangement.Arrangement) {
	if t == nil || !t.ValidOrientation() {
		panic("dmin: MinDProjective requires a validly oriented rooted tree")
	}
	if alg != AEF {
		panic("dmin: MinDProjective supports the AEF algorithm only")
	}
	return minDProjectiveTree(t)
}

func requireFreeTree(t *tree.FreeTree) {
	if t == nil || !t.IsTree() {
		panic("dmin: input is not a tree")
	}
}
