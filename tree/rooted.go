package tree

import (
	"github.com/JasonCoombs/linear-arrangement-library/graph"
	"github.com/JasonCoombs/linear-arrangement-library/traversal"
)

// Orientation describes how a RootedTree's edges relate to its root.
type Orientation int

const (
	// OrientationInvalid: the edges are not uniformly oriented with
	// respect to the root (or the skeleton is not a tree).
	OrientationInvalid Orientation = iota
	// Arborescence: every edge points away from the root.
	Arborescence
	// AntiArborescence: every edge points toward the root.
	AntiArborescence
)

// RootedTree is a directed graph whose undirected skeleton is a tree,
// together with a distinguished root. Its edges are valid when they
// uniformly point away from the root (arborescence) or toward it
// (anti-arborescence); see Orientation.
type RootedTree struct {
	*graph.Directed

	root int

	orientation      Orientation
	orientationValid bool

	sizes []int // nil until ComputeSubtreeSizes
}

// NewRootedTree allocates an edgeless RootedTree on n vertices rooted at
// root. Panics if root is out of range.
func NewRootedTree(n, root int) *RootedTree {
	d := graph.NewDirected(n)
	if !d.HasVertex(root) {
		panic("tree: root out of range")
	}
	return &RootedTree{Directed: d, root: root}
}

// RootedTreeFromEdges builds a RootedTree on n vertices from the given
// directed edges. Returns ErrNotATree if the skeleton is not a tree or
// the edges are not uniformly oriented with respect to root.
func RootedTreeFromEdges(n, root int, edges []graph.Edge) (*RootedTree, error) {
	t := NewRootedTree(n, root)
	t.Directed.AddEdges(edges, false, false)
	t.Normalise()
	if !t.ValidOrientation() {
		return nil, ErrNotATree
	}
	return t, nil
}

// FromHeadVector builds an arborescence from a head vector: entry i is
// the 1-based parent of vertex i+1, 0 marks the root. The in-memory
// vertex numbering is 0-based.
func FromHeadVector(hv []int) (*RootedTree, error) {
	n := len(hv)
	if n == 0 {
		return nil, ErrInvalidHeadVector
	}
	root := -1
	edges := make([]graph.Edge, 0, n-1)
	for i, h := range hv {
		switch {
		case h == 0:
			if root >= 0 {
				return nil, ErrInvalidHeadVector
			}
			root = i
		case h < 1 || h > n || h-1 == i:
			return nil, ErrInvalidHeadVector
		default:
			edges = append(edges, graph.Edge{U: h - 1, V: i})
		}
	}
	if root < 0 {
		return nil, ErrInvalidHeadVector
	}
	return RootedTreeFromEdges(n, root, edges)
}

// Root returns the distinguished root vertex.
func (t *RootedTree) Root() int { return t.root }

// Orientation classifies the edge orientation, recomputing after any
// edit. O(n).
func (t *RootedTree) Orientation() Orientation {
	if !t.orientationValid {
		t.orientation = t.computeOrientation()
		t.orientationValid = true
	}
	return t.orientation
}

// ValidOrientation reports whether the tree is an arborescence or an
// anti-arborescence.
func (t *RootedTree) ValidOrientation() bool { return t.Orientation() != OrientationInvalid }

func (t *RootedTree) computeOrientation() Orientation {
	n := t.NumVertices()
	if n == 0 || t.NumEdges() != n-1 {
		return OrientationInvalid
	}
	skeleton := traversal.NewDFS(t.Directed, traversal.WithReverseEdges())
	skeleton.StartAt(t.root)
	if !skeleton.AllVisited() {
		return OrientationInvalid
	}
	away, toward := true, true
	for v := 0; v < n; v++ {
		if v == t.root {
			away = away && t.InDegree(v) == 0
			toward = toward && t.OutDegree(v) == 0
			continue
		}
		away = away && t.InDegree(v) == 1
		toward = toward && t.OutDegree(v) == 1
	}
	switch {
	case away:
		return Arborescence
	case toward:
		return AntiArborescence
	default:
		return OrientationInvalid
	}
}

// Children returns the child list of v: out-neighbours on an
// arborescence, in-neighbours on an anti-arborescence. Panics if the
// orientation is invalid.
func (t *RootedTree) Children(v int) []int {
	switch t.Orientation() {
	case Arborescence:
		return t.OutNeighbours(v)
	case AntiArborescence:
		return t.InNeighbours(v)
	}
	panic("tree: Children on a rooted tree with invalid orientation")
}

// ComputeSubtreeSizes fills the subtree-size cache: for every vertex v,
// the number of vertices in the subtree hanging at v. O(n). Panics if
// the orientation is invalid.
func (t *RootedTree) ComputeSubtreeSizes() {
	n := t.NumVertices()
	sizes := make([]int, n)
	parent := make([]int, n)
	order := make([]int, 0, n)
	parent[t.root] = -1

	var opts []traversal.Option
	if t.Orientation() == AntiArborescence {
		// child edges live in the in-lists; walk them in reverse
		opts = append(opts, traversal.WithReverseEdges())
	} else if t.Orientation() != Arborescence {
		panic("tree: ComputeSubtreeSizes on a rooted tree with invalid orientation")
	}

	bfs := traversal.NewBFS(t.Directed, opts...)
	bfs.SetProcessCurrent(func(v int) { order = append(order, v) })
	bfs.SetMayEnqueue(func(s, c int) bool {
		parent[c] = s
		return true
	})
	bfs.StartAt(t.root)

	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		sizes[v]++
		if parent[v] >= 0 {
			sizes[parent[v]] += sizes[v]
		}
	}
	t.sizes = sizes
}

// HasSubtreeSizes reports whether the subtree-size cache is valid.
func (t *RootedTree) HasSubtreeSizes() bool { return t.sizes != nil }

// NumSubtreeNodes returns the cached size of the subtree hanging at v.
// Panics if ComputeSubtreeSizes has not run since the last edit — an
// uncomputed cache query is a programmer error.
func (t *RootedTree) NumSubtreeNodes(v int) int {
	if t.sizes == nil {
		panic("tree: subtree sizes not computed")
	}
	return t.sizes[v]
}

// ToFree drops edge directions and returns the underlying free tree.
// Panics if the skeleton is not a tree.
func (t *RootedTree) ToFree() *FreeTree {
	u := t.ToUndirected()
	u.Normalise()
	ft := &FreeTree{Undirected: u}
	if !ft.IsTree() {
		panic("tree: ToFree on a rooted graph whose skeleton is not a tree")
	}
	return ft
}

// Clone returns a deep copy, caches included.
func (t *RootedTree) Clone() *RootedTree {
	out := &RootedTree{
		Directed:         t.Directed.Clone(),
		root:             t.root,
		orientation:      t.orientation,
		orientationValid: t.orientationValid,
	}
	if t.sizes != nil {
		out.sizes = append([]int(nil), t.sizes...)
	}
	return out
}

// invalidate drops the orientation and subtree-size caches.
func (t *RootedTree) invalidate() {
	t.orientationValid = false
	t.sizes = nil
}

// AddEdge adds the directed edge (u,v) and invalidates caches.
func (t *RootedTree) AddEdge(u, v int, maintainNormalised, checkNormalised bool) {
	t.invalidate()
	t.Directed.AddEdge(u, v, maintainNormalised, checkNormalised)
}

// AddEdges adds every edge in list and invalidates caches.
func (t *RootedTree) AddEdges(list []graph.Edge, maintainNormalised, checkNormalised bool) {
	t.invalidate()
	t.Directed.AddEdges(list, maintainNormalised, checkNormalised)
}

// SetEdges replaces the edge set and invalidates caches.
func (t *RootedTree) SetEdges(list []graph.Edge, maintainNormalised, checkNormalised bool) {
	t.invalidate()
	t.Directed.SetEdges(list, maintainNormalised, checkNormalised)
}

// RemoveEdge removes (u,v) and invalidates caches.
func (t *RootedTree) RemoveEdge(u, v int, maintainNormalised, checkNormalised bool) error {
	t.invalidate()
	return t.Directed.RemoveEdge(u, v, maintainNormalised, checkNormalised)
}

// RemoveEdges removes every edge in list and invalidates caches.
func (t *RootedTree) RemoveEdges(list []graph.Edge, maintainNormalised, checkNormalised bool) error {
	t.invalidate()
	return t.Directed.RemoveEdges(list, maintainNormalised, checkNormalised)
}

// RemoveEdgesIncidentTo removes every edge with u as source or target
// and invalidates caches.
func (t *RootedTree) RemoveEdgesIncidentTo(u int, maintainNormalised, checkNormalised bool) {
	t.invalidate()
	t.Directed.RemoveEdgesIncidentTo(u, maintainNormalised, checkNormalised)
}
