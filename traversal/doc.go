// Package traversal provides a single graph-walking engine that runs
// breadth-first or depth-first depending on the frontier chosen at
// construction (NewBFS / NewDFS), over either an undirected or a
// directed graph.
//
// Clients observe the walk through four hook slots, any of which may be
// left unset:
//
//   - Terminate(v): stop the walk right after v's processing.
//   - ProcessCurrent(v): fires once per vertex popped off the frontier.
//   - ProcessNeighbour(s, t, natural): fires for each neighbour t of the
//     popped s; natural is false only when t was reached through a
//     reverse (in-) edge of a directed graph.
//   - MayEnqueue(s, t): gates whether t enters the frontier as a child
//     of s.
//
// Hooks are installed with the Set* methods rather than at construction,
// because they routinely need to capture the Traversal itself (to call
// Visited from inside ProcessNeighbour, say). Construction options
// configure the flag-like behaviour only: WithReverseEdges and
// WithProcessVisitedNeighbours.
//
// Reset clears the visited set and the frontier so the same Traversal
// can be reused; hooks survive a Reset until ClearHooks is called.
package traversal
