package graph

// Undirected is a simple undirected graph on n vertices: no self-loops,
// no duplicate adjacency entries, and (once Normalise has run or every
// mutation has requested maintenance of the invariant) every adjacency
// list sorted ascending.
type Undirected struct {
	base
}

// NewUndirected allocates an edgeless Undirected graph on n vertices.
func NewUndirected(n int) *Undirected {
	return &Undirected{base: newBase(n)}
}

// Degree returns the number of neighbours of v.
func (g *Undirected) Degree(v int) int { return g.degreeOf(v) }

// Neighbours returns v's adjacency list. Callers must not mutate the
// returned slice.
func (g *Undirected) Neighbours(v int) []int {
	g.requireVertex(v)
	return g.adj[v]
}

// AddEdge adds the edge {u,v}. Panics if u == v (self-loops are not
// permitted) or if either index is out of range. Whether (u,v) is
// already present is the caller's responsibility: adding a duplicate
// silently breaks the no-duplicate-entries invariant.
//
// maintainNormalised: if true and the graph is currently normalised, the
// new entries are inserted in sorted position (O(degree)) instead of
// falling back to a full Normalise (O(n log n) over all lists).
// checkNormalised: if true, the normalised flag is recomputed rather
// than being left false: by cheaply checking the two touched lists when
// the graph was normalised before the edit, and by scanning every list
// otherwise.
func (g *Undirected) AddEdge(u, v int, maintainNormalised, checkNormalised bool) {
	g.requireVertex(u)
	g.requireVertex(v)
	if u == v {
		panic("graph: self-loop not allowed")
	}

	wasNormalised := g.normalised
	if maintainNormalised && g.normalised {
		g.adj[u] = sortedInsert(g.adj[u], v)
		g.adj[v] = sortedInsert(g.adj[v], u)
	} else {
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
		g.normalised = false
	}
	g.numEdges++

	if checkNormalised && !g.normalised {
		if wasNormalised {
			g.normalised = isSortedAscending(g.adj[u]) && isSortedAscending(g.adj[v])
		} else {
			g.CheckNormalised()
		}
	}
}

// AddEdges adds every edge in list via AddEdge, in order.
func (g *Undirected) AddEdges(list []Edge, maintainNormalised, checkNormalised bool) {
	for _, e := range list {
		g.AddEdge(e.U, e.V, maintainNormalised, checkNormalised)
	}
}

// SetEdges discards all existing edges and installs list as the graph's
// entire edge set.
func (g *Undirected) SetEdges(list []Edge, maintainNormalised, checkNormalised bool) {
	g.adj = make([][]int, g.n)
	g.numEdges = 0
	g.normalised = true // vacuously, until AddEdges says otherwise
	g.AddEdges(list, maintainNormalised, checkNormalised)
}

// RemoveEdge deletes the edge {u,v}. Returns ErrEdgeNotFound if no such
// edge exists; panics on an out-of-range index.
func (g *Undirected) RemoveEdge(u, v int, maintainNormalised, checkNormalised bool) error {
	g.requireVertex(u)
	g.requireVertex(v)

	var ok1, ok2 bool
	g.adj[u], ok1 = removeValue(g.adj[u], v)
	g.adj[v], ok2 = removeValue(g.adj[v], u)
	if !ok1 || !ok2 {
		return ErrEdgeNotFound
	}
	g.numEdges--

	// Removal never breaks an existing ascending sort (it only shortens
	// the list), so normalised is preserved as-is; maintainNormalised has
	// nothing extra to do here, but checkNormalised is still honoured for
	// symmetry with AddEdge.
	_ = maintainNormalised
	if checkNormalised {
		g.normalised = g.normalised && isSortedAscending(g.adj[u]) && isSortedAscending(g.adj[v])
	}
	return nil
}

// RemoveEdges removes every edge in list via RemoveEdge, in order,
// stopping at and returning the first error encountered.
func (g *Undirected) RemoveEdges(list []Edge, maintainNormalised, checkNormalised bool) error {
	for _, e := range list {
		if err := g.RemoveEdge(e.U, e.V, maintainNormalised, checkNormalised); err != nil {
			return err
		}
	}
	return nil
}

// RemoveEdgesIncidentTo removes every edge touching u.
func (g *Undirected) RemoveEdgesIncidentTo(u int, maintainNormalised, checkNormalised bool) {
	g.requireVertex(u)
	neighbours := append([]int(nil), g.adj[u]...)
	for _, v := range neighbours {
		_ = g.RemoveEdge(u, v, maintainNormalised, checkNormalised)
	}
}

// Normalise sorts every adjacency list ascending and sets Normalised to
// true.
func (g *Undirected) Normalise() {
	for v := range g.adj {
		sortAscendingInPlace(g.adj[v])
	}
	g.normalised = true
}

// CheckNormalised recomputes and returns the normalised flag by scanning
// every adjacency list.
func (g *Undirected) CheckNormalised() bool {
	ok := true
	for v := range g.adj {
		if !isSortedAscending(g.adj[v]) {
			ok = false
			break
		}
	}
	g.normalised = ok
	return ok
}

// Clone returns a deep copy: a new graph with its own adjacency storage,
// so the minimiser can mutate a working copy without aliasing the
// caller's tree.
func (g *Undirected) Clone() *Undirected {
	out := &Undirected{base: base{n: g.n, numEdges: g.numEdges, normalised: g.normalised, adj: make([][]int, g.n)}}
	for v := range g.adj {
		out.adj[v] = append([]int(nil), g.adj[v]...)
	}
	return out
}

// IsConnected reports whether the graph has exactly one connected
// component covering all n vertices (n == 0 counts as connected).
func (g *Undirected) IsConnected() bool {
	if g.n == 0 {
		return true
	}
	visited := make([]bool, g.n)
	stack := []int{0}
	visited[0] = true
	count := 1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range g.adj[u] {
			if !visited[w] {
				visited[w] = true
				count++
				stack = append(stack, w)
			}
		}
	}
	return count == g.n
}
