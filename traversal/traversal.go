package traversal

import (
	"github.com/JasonCoombs/linear-arrangement-library/arena"
	"github.com/JasonCoombs/linear-arrangement-library/graph"
)

// Traversal walks a graph from one or more source vertices. The visit
// order is fixed by the frontier installed at construction: NewBFS gives
// first-in-first-out (level order), NewDFS last-in-first-out.
type Traversal struct {
	out func(v int) []int
	in  func(v int) []int // nil for undirected graphs

	n        int
	frontier frontier
	visited  arena.Seq[byte]
	nVisited int

	useReverseEdges       bool
	processAlreadyVisited bool

	terminate        func(v int) bool
	processCurrent   func(v int)
	processNeighbour func(s, t int, naturalDirection bool)
	mayEnqueue       func(s, t int) bool
}

// NewBFS builds a breadth-first Traversal over g. g must be a
// *graph.Undirected or *graph.Directed (anything satisfying Neighbourer
// or DirectedNeighbourer); any other type panics.
func NewBFS(g graph.VertexCounter, opts ...Option) *Traversal {
	return newTraversal(&fifoFrontier{}, g, opts)
}

// NewDFS builds a depth-first Traversal over g. Identical to NewBFS in
// every respect except the frontier discipline.
func NewDFS(g graph.VertexCounter, opts ...Option) *Traversal {
	return newTraversal(&lifoFrontier{}, g, opts)
}

func newTraversal(f frontier, g graph.VertexCounter, opts []Option) *Traversal {
	t := &Traversal{
		n:        g.NumVertices(),
		frontier: f,
	}
	switch gg := g.(type) {
	case graph.Neighbourer:
		t.out = gg.Neighbours
	case graph.DirectedNeighbourer:
		t.out = gg.OutNeighbours
		t.in = gg.InNeighbours
	default:
		panic("traversal: graph implements neither Neighbourer nor DirectedNeighbourer")
	}
	t.visited = arena.New[byte](t.n)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetTerminate installs the early-termination hook: if it returns true
// for a popped vertex, the walk stops right after that vertex's
// neighbour processing is skipped. Pass nil to clear.
func (t *Traversal) SetTerminate(fn func(v int) bool) { t.terminate = fn }

// SetProcessCurrent installs the per-vertex hook, fired once when a
// vertex is popped off the frontier. Pass nil to clear.
func (t *Traversal) SetProcessCurrent(fn func(v int)) { t.processCurrent = fn }

// SetProcessNeighbour installs the per-edge hook. naturalDirection is
// true when the edge exists as (s,t) in the underlying graph, false when
// t was reached through a reverse edge (directed graphs under
// WithReverseEdges only). Pass nil to clear.
func (t *Traversal) SetProcessNeighbour(fn func(s, t int, naturalDirection bool)) {
	t.processNeighbour = fn
}

// SetMayEnqueue installs the enqueue gate: return false to keep t out of
// the frontier even though it is unvisited. Pass nil to restore the
// default (always enqueue).
func (t *Traversal) SetMayEnqueue(fn func(s, t int) bool) { t.mayEnqueue = fn }

// ClearHooks removes all four hooks.
func (t *Traversal) ClearHooks() {
	t.terminate = nil
	t.processCurrent = nil
	t.processNeighbour = nil
	t.mayEnqueue = nil
}

// Visited reports whether v has been reached by any walk since the last
// Reset.
func (t *Traversal) Visited(v int) bool { return t.visited.Get(v) != 0 }

// AllVisited reports whether every vertex of the graph has been reached.
func (t *Traversal) AllVisited() bool { return t.nVisited == t.n }

// Reset wipes the visited set and the frontier. Hooks and flags are
// preserved.
func (t *Traversal) Reset() {
	for i := 0; i < t.n; i++ {
		t.visited.Set(i, 0)
	}
	t.nVisited = 0
	t.frontier.clear()
}

// StartAt marks source visited, enqueues it, and runs the walk to
// exhaustion (or until Terminate says stop).
func (t *Traversal) StartAt(source int) {
	t.mark(source)
	t.run()
}

// StartAtAll marks every source visited, enqueues them all, then runs.
func (t *Traversal) StartAtAll(sources ...int) {
	for _, s := range sources {
		t.mark(s)
	}
	t.run()
}

func (t *Traversal) mark(v int) {
	if v < 0 || v >= t.n {
		panic("traversal: source vertex out of range")
	}
	if t.visited.Get(v) != 0 {
		return
	}
	t.visited.Set(v, 1)
	t.nVisited++
	t.frontier.push(v)
}

func (t *Traversal) run() {
	for !t.frontier.empty() {
		s := t.frontier.pop()
		if t.processCurrent != nil {
			t.processCurrent(s)
		}
		if t.terminate != nil && t.terminate(s) {
			return
		}
		t.explore(s, t.out(s), true)
		if t.in != nil && t.useReverseEdges {
			t.explore(s, t.in(s), false)
		}
	}
}

func (t *Traversal) explore(s int, neighbours []int, natural bool) {
	for _, nb := range neighbours {
		seen := t.visited.Get(nb) != 0
		if seen && !t.processAlreadyVisited {
			continue
		}
		if t.processNeighbour != nil {
			t.processNeighbour(s, nb, natural)
		}
		if seen {
			continue
		}
		if t.mayEnqueue != nil && !t.mayEnqueue(s, nb) {
			continue
		}
		t.visited.Set(nb, 1)
		t.nVisited++
		t.frontier.push(nb)
	}
}
