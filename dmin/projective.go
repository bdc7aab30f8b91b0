package dmin

import (
	"github.com/JasonCoombs/linear-arrangement-library/arrangement"
	"github.com/JasonCoombs/linear-arrangement-library/sortutil"
	"github.com/JasonCoombs/linear-arrangement-library/tree"
)

// place states where a vertex sits relative to its parent's interval:
// on the left of the parent, on the right, or at the root of the whole
// tree.
type place int8

const (
	placeRoot place = iota
	placeLeft
	placeRight
)

// minDProjectiveTree computes the minimum D over projective arrangements
// of the rooted tree: the interval of every subtree is contiguous and no
// edge covers the root.
func minDProjectiveTree(t *tree.RootedTree) (uint64, *arrangement.Arrangement) {
	n := t.NumVertices()
	if n == 1 {
		return 0, arrangement.New(1)
	}
	if !t.HasSubtreeSizes() {
		t.ComputeSubtreeSizes()
	}

	M := sortedAdjacency(t)
	data := make([][]int, n)
	cost := buildInterval(M, t.Root(), placeRoot, data)

	arr := arrangement.New(n)
	expandIntervals(t, data, t.Root(), 0, arr)
	return cost, arr
}

// sortedAdjacency builds M[u]: u's children paired with their subtree
// sizes, sorted ascending by size. One counting-sort pass over all
// edges keeps the whole construction O(n); ties keep edge iteration
// order, the deterministic tie-break every arrangement here inherits.
func sortedAdjacency(t *tree.RootedTree) [][]sizeVertex {
	n := t.NumVertices()

	type edgeSize struct {
		u, v, size int
	}
	L := make([]edgeSize, 0, n-1)
	for u := 0; u < n; u++ {
		for _, v := range t.Children(u) {
			L = append(L, edgeSize{u: u, v: v, size: t.NumSubtreeNodes(v)})
		}
	}
	sortutil.CountingSort(L,
		func(e edgeSize) uint64 { return uint64(e.size) },
		uint64(n), sortutil.Ascending)

	M := make([][]sizeVertex, n)
	for _, e := range L {
		M[e.u] = append(M[e.u], sizeVertex{size: e.size, v: e.v})
	}
	return M
}

// buildInterval chooses, for vertex r placed as pl relative to its
// parent, the order of r and its child slots inside r's interval, and
// recurses into the children. data[r] receives the slot order (r plus
// one slot per child; a child's slot expands to its whole subtree
// interval later). Returns the sum of the lengths of r's outgoing
// edges, the lengths accumulated below, and the length of the anchor
// toward r's parent (the vertices between r and the interval end the
// parent sits beyond).
func buildInterval(M [][]sizeVertex, r int, pl place, data [][]int) uint64 {
	slots := len(M[r]) + 1
	interval := make([]int, slots)
	data[r] = interval

	if slots == 1 {
		interval[0] = r
		return 0
	}
	if slots == 2 {
		child := M[r][0]
		if pl == placeLeft {
			interval[0], interval[1] = child.v, r
			return buildInterval(M, child.v, placeLeft, data) + 1
		}
		interval[0], interval[1] = r, child.v
		return buildInterval(M, child.v, placeRight, data) + 1
	}

	rootPos := posInInterval(slots, pl)
	interval[rootPos] = r

	leftPos, rightPos := rootPos-1, rootPos+1
	toLeft := startsLeft(slots, pl)

	// running totals of the subtree sizes already placed on each side
	accLeft, accRight := 0, 0
	var below, d uint64

	for _, child := range M[r] {
		childPlace := placeRight
		if toLeft {
			childPlace = placeLeft
		}
		below += buildInterval(M, child.v, childPlace, data)

		// edge r-child: everything already placed between them, plus one
		// step over r's own slot
		if toLeft {
			d += uint64(accLeft)
		} else {
			d += uint64(accRight)
		}
		d++

		if toLeft {
			interval[leftPos] = child.v
			leftPos--
			accLeft += child.size
		} else {
			interval[rightPos] = child.v
			rightPos++
			accRight += child.size
		}
		toLeft = !toLeft
	}

	// anchor toward the parent: the vertices of r's interval the parent
	// edge has to clear
	switch pl {
	case placeLeft:
		below += uint64(accRight)
	case placeRight:
		below += uint64(accLeft)
	}
	return below + d
}

// posInInterval is the slot index of r inside its own interval of the
// given slot count.
func posInInterval(slots int, pl place) int {
	if slots == 1 {
		return 0
	}
	switch pl {
	case placeLeft:
		return slots / 2
	case placeRight:
		if slots%2 == 1 {
			return slots / 2
		}
		return slots/2 - 1
	}
	return slots / 2
}

// startsLeft decides the side the first (smallest) child goes to.
func startsLeft(slots int, pl place) bool {
	switch pl {
	case placeLeft:
		return slots%2 == 0
	case placeRight:
		return slots%2 == 1
	}
	return true
}

// expandIntervals turns the per-vertex slot orders into absolute
// positions: r's interval occupies [start, start+subtree_size(r)-1],
// with each child slot expanding to the child's interval.
func expandIntervals(t *tree.RootedTree, data [][]int, r, start int, arr *arrangement.Arrangement) {
	pos := start
	for _, u := range data[r] {
		if u == r {
			arr.Assign(r, pos)
			pos++
			continue
		}
		expandIntervals(t, data, u, pos, arr)
		pos += t.NumSubtreeNodes(u)
	}
}
