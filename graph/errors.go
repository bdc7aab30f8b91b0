package graph

import "errors"

// Sentinel errors for graph mutation. Out-of-range vertex indices and
// self-loop attempts are precondition violations and panic instead of
// returning an error — see AddEdge.
var (
	// ErrEdgeNotFound is returned by RemoveEdge/RemoveEdges when the
	// requested edge does not exist.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)
