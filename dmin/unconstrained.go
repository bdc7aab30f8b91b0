package dmin

import (
	"math"

	"github.com/JasonCoombs/linear-arrangement-library/arrangement"
	"github.com/JasonCoombs/linear-arrangement-library/graph"
	"github.com/JasonCoombs/linear-arrangement-library/tree"
)

// anchorKind states how a recursive subproblem is anchored inside its
// position interval: not at all, or with its root vertex's parent edge
// leaving through the far left / far right end. An anchored subproblem's
// cost includes the distance from the root vertex to that end; the root
// vertex itself may sit anywhere in the interval.
type anchorKind int8

const (
	noAnchor anchorKind = iota
	leftAnchor
	rightAnchor
)

// minDUnconstrained runs the Chung/Shiloach dynamic program on a free
// tree and returns the minimum D over all arrangements, with an
// arrangement attaining it.
func minDUnconstrained(t *tree.FreeTree) (uint64, *arrangement.Arrangement) {
	n := t.NumVertices()
	arr := arrangement.New(n)
	if n == 1 {
		return 0, arr
	}
	// private working copy: the solver cuts and reinserts edges
	work := t.Undirected.Clone()
	cost := solveMLA(work, noAnchor, 0, 0, n-1, arr)
	debugAssert(arr.IsPermutation(), "solver produced a non-permutation")
	return cost, arr
}

// solveMLA arranges the component of t containing v into the inclusive
// position interval [start, end] and returns the component's minimum D
// under the given anchoring. It writes the winning positions into arr.
//
// The component is always exactly end-start+1 vertices; the solver
// guarantees that by cutting edges only at the split vertex and sizing
// the sub-intervals from the subtree sizes.
func solveMLA(t *graph.Undirected, kind anchorKind, v, start, end int, arr *arrangement.Arrangement) uint64 {
	sizes := tree.SubtreeSizesFromPivot(t, v)
	n := sizes[v]
	debugAssert(n == end-start+1, "component size does not fill its interval")

	if n == 1 {
		arr.Assign(v, start)
		return 0
	}
	if kind == noAnchor {
		return solveUnanchored(t, v, n, start, end, arr)
	}
	return solveAnchored(t, kind, v, n, start, end, arr)
}

// solveUnanchored splits the component at its centroid u. When Chung's
// parameter q exists, it trials every choice of the subtree that stays
// attached to the central block, with q subtrees flung to each side in
// the zig-zag order; otherwise it splits off the heaviest subtree alone.
func solveUnanchored(t *graph.Undirected, v, n, start, end int, arr *arrangement.Arrangement) uint64 {
	u, _, _ := tree.CentroidOfComponent(t, v)
	ord := childOrdering(t, u)

	q, ok := chungQ(n, ord)
	if !ok {
		n0, t0 := ord[0].size, ord[0].v
		mustRemoveEdge(t, u, t0)
		c1 := solveMLA(t, rightAnchor, t0, start, start+n0-1, arr)
		c2 := solveMLA(t, leftAnchor, u, start+n0, end, arr)
		t.AddEdge(u, t0, false, false)
		return c1 + c2 + 1
	}

	edges := make([]graph.Edge, 2*q+1)
	for i := 0; i <= 2*q; i++ {
		edges[i] = graph.Edge{U: u, V: ord[i].v}
	}
	mustRemoveEdges(t, edges)

	sizeRest := 0
	for i := 2*q + 1; i < len(ord); i++ {
		sizeRest += ord[i].size
	}

	best := uint64(math.MaxUint64)
	var bestArr *arrangement.Arrangement
	for i := 0; i <= 2*q; i++ {
		Qi := zigzagOmitting(2*q+1, i)
		t.AddEdge(u, ord[i].v, false, false)

		trial := arr.Clone()
		var ci uint64

		startAux := start
		for j := 1; j <= q; j++ {
			sv := ord[Qi[j]]
			ci += solveMLA(t, rightAnchor, sv.v, startAux, startAux+sv.size-1, trial)
			startAux += sv.size
		}

		endHere := startAux + ord[i].size + sizeRest
		ci += solveMLA(t, noAnchor, u, startAux, endHere, trial)

		startAux = endHere + 1
		for j := q + 1; j <= 2*q; j++ {
			sv := ord[Qi[j]]
			ci += solveMLA(t, leftAnchor, sv.v, startAux, startAux+sv.size-1, trial)
			startAux += sv.size
		}

		// closed form for the lengths of the cut edges over the layout
		ci += uint64(n) * uint64(q)
		subs := 0
		for j := 1; j <= q; j++ {
			subs += (q - j + 1) * (ord[Qi[j]].size + ord[Qi[2*q-j+1]].size)
		}
		ci -= uint64(subs)
		ci += uint64(q)

		if ci < best {
			best, bestArr = ci, trial
		}
		mustRemoveEdge(t, u, ord[i].v)
	}
	t.AddEdges(edges, false, false)

	arr.CopyFrom(bestArr)
	return best
}

// solveAnchored is the anchored counterpart over the anchor vertex v
// itself: p subtrees go to the side of the anchoring end, p+1 to the
// other, the central block keeps the rest. The rightAnchor layout is the
// left one mirrored.
func solveAnchored(t *graph.Undirected, kind anchorKind, v, n, start, end int, arr *arrangement.Arrangement) uint64 {
	ord := childOrdering(t, v)

	p, ok := chungP(n, ord)
	if !ok {
		n0, t0 := ord[0].size, ord[0].v
		mustRemoveEdge(t, v, t0)
		var c1, c2 uint64
		if kind == leftAnchor {
			c1 = solveMLA(t, noAnchor, v, start, end-n0, arr)
			c2 = solveMLA(t, leftAnchor, t0, end-n0+1, end, arr)
		} else {
			c1 = solveMLA(t, rightAnchor, t0, start, start+n0-1, arr)
			c2 = solveMLA(t, noAnchor, v, start+n0, end, arr)
		}
		t.AddEdge(v, t0, false, false)
		return c1 + c2 + uint64(n-n0)
	}

	edges := make([]graph.Edge, 2*p+2)
	for i := 0; i <= 2*p+1; i++ {
		edges[i] = graph.Edge{U: v, V: ord[i].v}
	}
	mustRemoveEdges(t, edges)

	sizeRest := 0
	for i := 2*p + 2; i < len(ord); i++ {
		sizeRest += ord[i].size
	}

	best := uint64(math.MaxUint64)
	var bestArr *arrangement.Arrangement
	for i := 0; i <= 2*p+1; i++ {
		Pi := zigzagOmitting(2*p+2, i)
		t.AddEdge(v, ord[i].v, false, false)

		trial := arr.Clone()
		var ci uint64
		central := ord[i].size + 1 + sizeRest

		if kind == leftAnchor {
			startAux := start
			for j := 1; j <= p; j++ {
				sv := ord[Pi[j]]
				ci += solveMLA(t, rightAnchor, sv.v, startAux, startAux+sv.size-1, trial)
				startAux += sv.size
			}
			ci += solveMLA(t, noAnchor, v, startAux, startAux+central-1, trial)
			startAux += central
			for j := p + 1; j <= 2*p+1; j++ {
				sv := ord[Pi[j]]
				ci += solveMLA(t, leftAnchor, sv.v, startAux, startAux+sv.size-1, trial)
				startAux += sv.size
			}
		} else {
			endAux := end
			for j := 1; j <= p; j++ {
				sv := ord[Pi[j]]
				ci += solveMLA(t, leftAnchor, sv.v, endAux-sv.size+1, endAux, trial)
				endAux -= sv.size
			}
			ci += solveMLA(t, noAnchor, v, endAux-central+1, endAux, trial)
			endAux -= central
			for j := p + 1; j <= 2*p+1; j++ {
				sv := ord[Pi[j]]
				ci += solveMLA(t, rightAnchor, sv.v, endAux-sv.size+1, endAux, trial)
				endAux -= sv.size
			}
		}

		ci += uint64(n) * uint64(p+1)
		ci -= uint64((p + 1) * ord[Pi[len(Pi)-1]].size)
		subs := 0
		for j := 1; j <= p; j++ {
			subs += (p - j + 1) * (ord[Pi[j]].size + ord[Pi[2*p-j+1]].size)
		}
		ci -= uint64(subs)
		ci += uint64(p)

		if ci < best {
			best, bestArr = ci, trial
		}
		mustRemoveEdge(t, v, ord[i].v)
	}
	t.AddEdges(edges, false, false)

	arr.CopyFrom(bestArr)
	return best
}

// chungQ computes Chung's q for an unanchored component of n vertices
// with child subtrees ord (sizes non-increasing): the largest q such
// that the (2q)-th subtree is still big enough to be flung to a side.
// ok is false when no q qualifies.
func chungQ(n int, ord []sizeVertex) (q int, ok bool) {
	k := len(ord) - 1
	t0 := ord[0].size

	q = k / 2
	sum := 0
	for i := 0; i <= 2*q; i++ {
		sum += ord[i].size
	}

	z := n - sum
	threshold := (t0+2)/2 + (z+2)/2
	t2q := ord[2*q].size

	for t2q <= threshold {
		z += ord[2*q].size
		if q > 0 {
			z += ord[2*q-1].size
		}
		threshold = (t0+2)/2 + (z+2)/2
		if q == 0 {
			return 0, false
		}
		q--
		t2q = ord[2*q].size
	}
	return q, true
}

// chungP is the anchored analogue of chungQ, over 2p+2 subtrees.
func chungP(n int, ord []sizeVertex) (p int, ok bool) {
	if len(ord) < 2 {
		return 0, false
	}
	k := len(ord) - 1
	t0 := ord[0].size

	p = (k - 1) / 2
	sum := 0
	for i := 0; i <= 2*p+1; i++ {
		sum += ord[i].size
	}

	y := n - sum
	threshold := (t0+2)/2 + (y+2)/2
	t2p1 := ord[2*p+1].size

	for t2p1 <= threshold {
		y += ord[2*p+1].size + ord[2*p].size
		threshold = (t0+2)/2 + (y+2)/2
		if p == 0 {
			return 0, false
		}
		p--
		t2p1 = ord[2*p+1].size
	}
	return p, true
}

// zigzagOmitting builds the zig-zag permutation of the index set
// {0..count-1} minus {omit}: smallest index at the outer right end,
// then alternating left, right, moving inward. Slot 0 of the returned
// slice is unused; callers index 1..count-1.
func zigzagOmitting(count, omit int) []int {
	v := make([]int, count)
	pos := count - 1
	rightPos, leftPos := pos, 1

	for j := 0; j < count; j++ {
		if j == omit {
			continue
		}
		v[pos] = j
		if pos > leftPos {
			rightPos--
			pos = leftPos
		} else {
			leftPos++
			pos = rightPos
		}
	}
	return v
}
