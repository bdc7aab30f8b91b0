// Package graph defines Undirected and Directed, the two graph data
// models the rest of this module is built on: a vertex count, a
// per-vertex adjacency list, an edge count, and a normalised flag that
// tracks whether every adjacency list is sorted ascending.
//
// Vertices are plain integers in [0, n); there is no Vertex struct and
// no metadata map. The minimiser needs nothing but an index, and the
// package's invariants (no self-loops, no duplicate adjacency entries,
// exact edge counts) are cheapest to keep on a dense integer-indexed
// representation.
//
// Mutators take (u, v int, maintainNormalised, checkNormalised bool) in
// that order throughout the package: maintainNormalised asks the mutator
// to restore the ascending-sort invariant cheaply (a sorted insert) rather
// than fall back to a full Normalise pass; checkNormalised asks it to
// verify (cheaply) whether the invariant held regardless, so the caller
// is not left not knowing. See each method's doc comment for what the
// flags cost.
package graph
