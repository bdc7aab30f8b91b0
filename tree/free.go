package tree

import (
	"github.com/JasonCoombs/linear-arrangement-library/graph"
	"github.com/JasonCoombs/linear-arrangement-library/traversal"
)

// FreeTree is an undirected graph that is expected to be a tree. The
// wrapper does not forbid intermediate non-tree states — bulk
// construction goes through the embedded graph's mutators — but every
// consumer of tree semantics (ToRooted, TreeType, the minimisers)
// requires IsTree to hold at call time.
type FreeTree struct {
	*graph.Undirected

	tt      TreeType
	ttValid bool
}

// NewFreeTree allocates an edgeless FreeTree on n vertices.
func NewFreeTree(n int) *FreeTree {
	return &FreeTree{Undirected: graph.NewUndirected(n)}
}

// FreeTreeFromEdges builds a normalised FreeTree on n vertices from the
// given n-1 edges. Returns ErrNotATree if they do not form a tree.
func FreeTreeFromEdges(n int, edges []graph.Edge) (*FreeTree, error) {
	t := NewFreeTree(n)
	t.Undirected.AddEdges(edges, false, false)
	t.Normalise()
	if !t.IsTree() {
		return nil, ErrNotATree
	}
	return t, nil
}

// IsTree reports whether the current edge set is a tree: exactly n-1
// edges and connected. O(n) by traversal.
func (t *FreeTree) IsTree() bool {
	n := t.NumVertices()
	if n == 0 {
		return false
	}
	if t.NumEdges() != n-1 {
		return false
	}
	dfs := traversal.NewDFS(t.Undirected)
	dfs.StartAt(0)
	return dfs.AllVisited()
}

// Clone returns a deep copy with its own adjacency storage. Caches are
// carried over.
func (t *FreeTree) Clone() *FreeTree {
	return &FreeTree{Undirected: t.Undirected.Clone(), tt: t.tt, ttValid: t.ttValid}
}

// ToRooted orients the tree away from r by breadth-first search and
// returns the resulting arborescence. Panics if the graph is not a tree
// or r is out of range.
func (t *FreeTree) ToRooted(r int) *RootedTree {
	if !t.IsTree() {
		panic("tree: ToRooted on a non-tree")
	}
	n := t.NumVertices()
	d := graph.NewDirected(n)

	bfs := traversal.NewBFS(t.Undirected)
	bfs.SetMayEnqueue(func(s, c int) bool {
		d.AddEdge(s, c, false, false)
		return true
	})
	bfs.StartAt(r)
	d.Normalise()

	return &RootedTree{
		Directed:         d,
		root:             r,
		orientation:      Arborescence,
		orientationValid: true,
	}
}

// TreeType classifies the tree (linear, star, quasi-star, bistar,
// caterpillar, spider, balanced; TreeTypeNone when nothing applies) and
// caches the answer until the next edit. Panics on a non-tree.
func (t *FreeTree) TreeType() TreeType {
	if !t.ttValid {
		t.tt = classify(t)
		t.ttValid = true
	}
	return t.tt
}

// invalidate drops the classification cache; every mutator below calls
// it before delegating to the embedded graph.
func (t *FreeTree) invalidate() { t.ttValid = false }

// AddEdge adds {u,v} and invalidates the classification cache.
func (t *FreeTree) AddEdge(u, v int, maintainNormalised, checkNormalised bool) {
	t.invalidate()
	t.Undirected.AddEdge(u, v, maintainNormalised, checkNormalised)
}

// AddEdges adds every edge in list and invalidates the cache.
func (t *FreeTree) AddEdges(list []graph.Edge, maintainNormalised, checkNormalised bool) {
	t.invalidate()
	t.Undirected.AddEdges(list, maintainNormalised, checkNormalised)
}

// SetEdges replaces the edge set and invalidates the cache.
func (t *FreeTree) SetEdges(list []graph.Edge, maintainNormalised, checkNormalised bool) {
	t.invalidate()
	t.Undirected.SetEdges(list, maintainNormalised, checkNormalised)
}

// RemoveEdge removes {u,v} and invalidates the cache.
func (t *FreeTree) RemoveEdge(u, v int, maintainNormalised, checkNormalised bool) error {
	t.invalidate()
	return t.Undirected.RemoveEdge(u, v, maintainNormalised, checkNormalised)
}

// RemoveEdges removes every edge in list and invalidates the cache.
func (t *FreeTree) RemoveEdges(list []graph.Edge, maintainNormalised, checkNormalised bool) error {
	t.invalidate()
	return t.Undirected.RemoveEdges(list, maintainNormalised, checkNormalised)
}

// RemoveEdgesIncidentTo removes every edge touching u and invalidates
// the cache.
func (t *FreeTree) RemoveEdgesIncidentTo(u int, maintainNormalised, checkNormalised bool) {
	t.invalidate()
	t.Undirected.RemoveEdgesIncidentTo(u, maintainNormalised, checkNormalised)
}
