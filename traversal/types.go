package traversal

// Option configures a Traversal at construction, in the functional
// style used throughout this module.
type Option func(*Traversal)

// WithReverseEdges makes the walk explore in-neighbours as well as
// out-neighbours on a directed graph. It has no effect on an undirected
// graph, whose single adjacency is always explored.
func WithReverseEdges() Option {
	return func(t *Traversal) { t.useReverseEdges = true }
}

// WithProcessVisitedNeighbours makes ProcessNeighbour fire even when the
// neighbour has already been visited. By default the hook only sees each
// vertex the first time it is reached.
func WithProcessVisitedNeighbours() Option {
	return func(t *Traversal) { t.processAlreadyVisited = true }
}

// frontier is the pending-vertex store; its discipline (FIFO or LIFO)
// is what distinguishes BFS from DFS.
type frontier interface {
	push(v int)
	pop() int
	empty() bool
	clear()
}

// fifoFrontier implements a queue on a slice with a moving head index,
// so pops do not reallocate.
type fifoFrontier struct {
	items []int
	head  int
}

func (f *fifoFrontier) push(v int) { f.items = append(f.items, v) }

func (f *fifoFrontier) pop() int {
	v := f.items[f.head]
	f.head++
	return v
}

func (f *fifoFrontier) empty() bool { return f.head >= len(f.items) }

func (f *fifoFrontier) clear() { f.items, f.head = f.items[:0], 0 }

// lifoFrontier implements a stack.
type lifoFrontier struct {
	items []int
}

func (f *lifoFrontier) push(v int) { f.items = append(f.items, v) }

func (f *lifoFrontier) pop() int {
	v := f.items[len(f.items)-1]
	f.items = f.items[:len(f.items)-1]
	return v
}

func (f *lifoFrontier) empty() bool { return len(f.items) == 0 }

func (f *lifoFrontier) clear() { f.items = f.items[:0] }
