// Package tree layers tree semantics on top of package graph: FreeTree
// wraps an undirected graph that must satisfy the tree invariant
// (n-1 edges, connected), RootedTree wraps a directed graph whose
// skeleton is a tree together with a distinguished root and an edge
// orientation (arborescence or anti-arborescence).
//
// Both wrappers carry optional caches — the tree-type classification on
// FreeTree, per-vertex subtree sizes on RootedTree — that are
// invalidated by any structural edit and recomputed on demand (or, for
// NumSubtreeNodes, required to have been computed first).
//
// The package also exports the two analyses the arrangement minimisers
// are built on: SubtreeSizesFromPivot and CentroidOfComponent. Both are
// component-aware, because the unconstrained minimiser runs them on a
// working tree it has temporarily cut edges out of.
package tree
