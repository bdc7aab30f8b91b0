package tree

// TreeType is the cached structural classification of a FreeTree.
type TreeType int

const (
	// TreeTypeNone: no class below applies.
	TreeTypeNone TreeType = iota
	// TreeTypeLinear: a path (every degree at most 2).
	TreeTypeLinear
	// TreeTypeStar: one hub adjacent to every other vertex.
	TreeTypeStar
	// TreeTypeQuasiStar: a star with exactly one edge subdivided once.
	TreeTypeQuasiStar
	// TreeTypeBistar: two adjacent hubs, every other vertex a leaf.
	TreeTypeBistar
	// TreeTypeCaterpillar: removing all leaves yields a path.
	TreeTypeCaterpillar
	// TreeTypeSpider: one vertex of degree at least 3, all others on
	// disjoint paths hanging from it.
	TreeTypeSpider
	// TreeTypeBalanced: rooted at its centroid the tree is binary and
	// every vertex's child subtrees differ in size by at most one.
	TreeTypeBalanced
)

var treeTypeNames = map[TreeType]string{
	TreeTypeNone:        "none",
	TreeTypeLinear:      "linear",
	TreeTypeStar:        "star",
	TreeTypeQuasiStar:   "quasi-star",
	TreeTypeBistar:      "bistar",
	TreeTypeCaterpillar: "caterpillar",
	TreeTypeSpider:      "spider",
	TreeTypeBalanced:    "balanced",
}

func (tt TreeType) String() string {
	if s, ok := treeTypeNames[tt]; ok {
		return s
	}
	return "unknown"
}

// classify runs the class tests in a fixed order and returns the first
// match, so a tree belonging to several classes (a path is also a
// caterpillar) gets the most specific one. Every test is O(n).
func classify(t *FreeTree) TreeType {
	if !t.IsTree() {
		panic("tree: TreeType on a non-tree")
	}
	switch {
	case isLinear(t):
		return TreeTypeLinear
	case isStar(t):
		return TreeTypeStar
	case isQuasiStar(t):
		return TreeTypeQuasiStar
	case isBistar(t):
		return TreeTypeBistar
	case isCaterpillar(t):
		return TreeTypeCaterpillar
	case isSpider(t):
		return TreeTypeSpider
	case isBalanced(t):
		return TreeTypeBalanced
	}
	return TreeTypeNone
}

func isLinear(t *FreeTree) bool {
	for v := 0; v < t.NumVertices(); v++ {
		if t.Degree(v) > 2 {
			return false
		}
	}
	return true
}

func isStar(t *FreeTree) bool {
	n := t.NumVertices()
	for v := 0; v < n; v++ {
		if t.Degree(v) == n-1 {
			return true
		}
	}
	return false
}

// isQuasiStar: degree sequence is one hub of degree n-2, one vertex of
// degree 2 bridging the hub to a leaf, and n-2 leaves. Requires n >= 4
// (smaller cases are linear or star and never reach this test).
func isQuasiStar(t *FreeTree) bool {
	n := t.NumVertices()
	if n < 4 {
		return false
	}
	hubs, bridges := 0, 0
	for v := 0; v < n; v++ {
		switch t.Degree(v) {
		case n - 2:
			hubs++
		case 2:
			bridges++
		case 1:
		default:
			return false
		}
	}
	return hubs == 1 && bridges == 1
}

// isBistar: exactly two internal vertices and they are adjacent, i.e.
// removing all leaves yields a single edge.
func isBistar(t *FreeTree) bool {
	n := t.NumVertices()
	h1, h2 := -1, -1
	for v := 0; v < n; v++ {
		if t.Degree(v) < 2 {
			continue
		}
		switch {
		case h1 < 0:
			h1 = v
		case h2 < 0:
			h2 = v
		default:
			return false
		}
	}
	if h1 < 0 || h2 < 0 {
		return false
	}
	for _, w := range t.Neighbours(h1) {
		if w == h2 {
			return true
		}
	}
	return false
}

// isCaterpillar: the internal vertices of a tree always induce a
// subtree, so they form a path iff no internal vertex has more than two
// internal neighbours.
func isCaterpillar(t *FreeTree) bool {
	n := t.NumVertices()
	for v := 0; v < n; v++ {
		if t.Degree(v) < 2 {
			continue
		}
		internal := 0
		for _, w := range t.Neighbours(v) {
			if t.Degree(w) >= 2 {
				internal++
			}
		}
		if internal > 2 {
			return false
		}
	}
	return true
}

func isSpider(t *FreeTree) bool {
	n := t.NumVertices()
	big := 0
	for v := 0; v < n; v++ {
		if t.Degree(v) >= 3 {
			big++
		}
	}
	return big == 1
}

// isBalanced: rooted at its (first) centroid, every vertex has at most
// two children and the sizes of sibling subtrees differ by at most one.
func isBalanced(t *FreeTree) bool {
	c, _, _ := CentroidOfComponent(t.Undirected, 0)
	sizes := SubtreeSizesFromPivot(t.Undirected, c)
	rt := t.ToRooted(c)
	for v := 0; v < t.NumVertices(); v++ {
		children := rt.OutNeighbours(v)
		switch len(children) {
		case 0, 1:
		case 2:
			diff := sizes[children[0]] - sizes[children[1]]
			if diff < -1 || diff > 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
