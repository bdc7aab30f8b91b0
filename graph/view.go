package graph

// VertexCounter is implemented by both Undirected and Directed.
type VertexCounter interface {
	NumVertices() int
	HasVertex(v int) bool
}

// Neighbourer is implemented by Undirected: a single adjacency notion.
type Neighbourer interface {
	VertexCounter
	Neighbours(v int) []int
	Degree(v int) int
}

// DirectedNeighbourer is implemented by Directed: separate out/in
// adjacency. traversal uses this (plus UseReverseEdges) instead of
// Neighbourer when walking a digraph.
type DirectedNeighbourer interface {
	VertexCounter
	OutNeighbours(v int) []int
	InNeighbours(v int) []int
}

var (
	_ Neighbourer         = (*Undirected)(nil)
	_ DirectedNeighbourer = (*Directed)(nil)
)
