package dmin

import (
	"github.com/JasonCoombs/linear-arrangement-library/graph"
	"github.com/JasonCoombs/linear-arrangement-library/sortutil"
	"github.com/JasonCoombs/linear-arrangement-library/tree"
)

// childOrdering returns u's neighbour subtrees within its current
// component, sorted by size non-increasing. Ties keep the adjacency-list
// order (ascending vertex index on a normalised tree): the sort runs
// ascending on the complemented key, so its input-order stability
// carries over unchanged.
func childOrdering(t *graph.Undirected, u int) []sizeVertex {
	sizes := tree.SubtreeSizesFromPivot(t, u)
	neighbours := t.Neighbours(u)

	ord := make([]sizeVertex, len(neighbours))
	maxSize := 0
	for i, w := range neighbours {
		ord[i] = sizeVertex{size: sizes[w], v: w}
		if sizes[w] > maxSize {
			maxSize = sizes[w]
		}
	}
	sortutil.CountingSort(ord,
		func(sv sizeVertex) uint64 { return uint64(maxSize - sv.size) },
		uint64(maxSize), sortutil.Ascending)
	return ord
}

// mustRemoveEdge removes an edge the solver knows exists; a failure
// here means solver state is corrupt.
func mustRemoveEdge(t *graph.Undirected, u, v int) {
	if err := t.RemoveEdge(u, v, false, false); err != nil {
		panic("dmin: " + err.Error())
	}
}

// mustRemoveEdges removes a batch of edges that must all exist.
func mustRemoveEdges(t *graph.Undirected, edges []graph.Edge) {
	if err := t.RemoveEdges(edges, false, false); err != nil {
		panic("dmin: " + err.Error())
	}
}
