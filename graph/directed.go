package graph

// Directed is a simple directed graph on n vertices: out-adjacency is
// base.adj, and an in-adjacency list is maintained in lock-step with it
// on every edit, so reverse traversal never has to scan the whole edge
// set.
type Directed struct {
	base
	in [][]int
}

// NewDirected allocates an edgeless Directed graph on n vertices.
func NewDirected(n int) *Directed {
	b := newBase(n)
	return &Directed{base: b, in: make([][]int, n)}
}

// OutDegree returns the number of out-neighbours of v.
func (g *Directed) OutDegree(v int) int { return g.degreeOf(v) }

// InDegree returns the number of in-neighbours of v.
func (g *Directed) InDegree(v int) int {
	g.requireVertex(v)
	return len(g.in[v])
}

// Degree returns OutDegree(v) + InDegree(v).
func (g *Directed) Degree(v int) int { return g.OutDegree(v) + g.InDegree(v) }

// OutNeighbours returns v's out-adjacency list. Callers must not mutate
// the returned slice.
func (g *Directed) OutNeighbours(v int) []int {
	g.requireVertex(v)
	return g.adj[v]
}

// InNeighbours returns v's in-adjacency list. Callers must not mutate the
// returned slice.
func (g *Directed) InNeighbours(v int) []int {
	g.requireVertex(v)
	return g.in[v]
}

// AddEdge adds the directed edge (u,v). Panics if u == v or either index
// is out of range.
func (g *Directed) AddEdge(u, v int, maintainNormalised, checkNormalised bool) {
	g.requireVertex(u)
	g.requireVertex(v)
	if u == v {
		panic("graph: self-loop not allowed")
	}

	wasNormalised := g.normalised
	if maintainNormalised && g.normalised {
		g.adj[u] = sortedInsert(g.adj[u], v)
	} else {
		g.adj[u] = append(g.adj[u], v)
		g.normalised = false
	}
	g.in[v] = append(g.in[v], u)
	g.numEdges++

	if checkNormalised && !g.normalised {
		if wasNormalised {
			g.normalised = isSortedAscending(g.adj[u])
		} else {
			g.CheckNormalised()
		}
	}
}

// AddEdges adds every edge in list via AddEdge, in order.
func (g *Directed) AddEdges(list []Edge, maintainNormalised, checkNormalised bool) {
	for _, e := range list {
		g.AddEdge(e.U, e.V, maintainNormalised, checkNormalised)
	}
}

// SetEdges discards all existing edges and installs list as the graph's
// entire edge set.
func (g *Directed) SetEdges(list []Edge, maintainNormalised, checkNormalised bool) {
	g.adj = make([][]int, g.n)
	g.in = make([][]int, g.n)
	g.numEdges = 0
	g.normalised = true
	g.AddEdges(list, maintainNormalised, checkNormalised)
}

// RemoveEdge deletes the edge (u,v). Returns ErrEdgeNotFound if absent.
func (g *Directed) RemoveEdge(u, v int, maintainNormalised, checkNormalised bool) error {
	g.requireVertex(u)
	g.requireVertex(v)

	var ok1, ok2 bool
	g.adj[u], ok1 = removeValue(g.adj[u], v)
	g.in[v], ok2 = removeValue(g.in[v], u)
	if !ok1 || !ok2 {
		return ErrEdgeNotFound
	}
	g.numEdges--

	_ = maintainNormalised
	if checkNormalised {
		g.normalised = g.normalised && isSortedAscending(g.adj[u])
	}
	return nil
}

// RemoveEdges removes every edge in list via RemoveEdge, in order,
// stopping at and returning the first error encountered.
func (g *Directed) RemoveEdges(list []Edge, maintainNormalised, checkNormalised bool) error {
	for _, e := range list {
		if err := g.RemoveEdge(e.U, e.V, maintainNormalised, checkNormalised); err != nil {
			return err
		}
	}
	return nil
}

// RemoveEdgesIncidentTo removes every edge with u as source or target.
func (g *Directed) RemoveEdgesIncidentTo(u int, maintainNormalised, checkNormalised bool) {
	g.requireVertex(u)
	out := append([]int(nil), g.adj[u]...)
	for _, v := range out {
		_ = g.RemoveEdge(u, v, maintainNormalised, checkNormalised)
	}
	in := append([]int(nil), g.in[u]...)
	for _, w := range in {
		_ = g.RemoveEdge(w, u, maintainNormalised, checkNormalised)
	}
}

// Normalise sorts every out-adjacency list ascending. In-adjacency lists
// are not part of the normalised contract — normalisation covers the
// adjacency a consumer observes, which for a digraph is the out-lists;
// the in-list is internal bookkeeping for ToUndirected and reverse
// traversal.
func (g *Directed) Normalise() {
	for v := range g.adj {
		sortAscendingInPlace(g.adj[v])
	}
	g.normalised = true
}

// CheckNormalised recomputes and returns the normalised flag.
func (g *Directed) CheckNormalised() bool {
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

// Clone returns a deep copy with its own adjacency storage.
func (g *Directed) Clone() *Directed {
	out := &Directed{
		base: base{n: g.n, numEdges: g.numEdges, normalised: g.normalised, adj: make([][]int, g.n)},
		in:   make([][]int, g.n),
	}
	for v := range g.adj {
		out.adj[v] = append([]int(nil), g.adj[v]...)
	}
	for v := range g.in {
		out.in[v] = append([]int(nil), g.in[v]...)
	}
	return out
}

// ToUndirected builds the undirected graph whose edge set is
// {{u,v} : (u,v) or (v,u) in the digraph}, collapsing any pair present in
// both directions into a single edge.
func (g *Directed) ToUndirected() *Undirected {
	out := NewUndirected(g.n)
	seen := make(map[[2]int]bool, g.numEdges)
	for u := range g.adj {
		for _, v := range g.adj[u] {
			key := [2]int{u, v}
			if u > v {
				key = [2]int{v, u}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			out.AddEdge(key[0], key[1], false, false)
		}
	}
	return out
}
