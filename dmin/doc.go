// Package dmin computes arrangements of trees that minimise D, the sum
// of edge lengths, under three constraint regimes:
//
//   - MinD: over all arrangements, by the Shiloach/Chung centroid-
//     anchored dynamic program (Algorithm Shiloach, alias Chung).
//   - MinDPlanar: over arrangements with no edge crossings, by rooting
//     the tree at a centroid and running the projective interval
//     embedding (Algorithm AEF).
//   - MinDProjective: over planar arrangements in which no edge covers
//     the root, by the same interval embedding on the given rooted tree
//     (Algorithm AEF).
//
// All three return the minimum cost together with an arrangement that
// attains it. Outputs are deterministic: the child orderings they rely
// on are produced by the stable counting sort in sortutil, so the same
// input tree yields the same arrangement on every platform.
//
// The unconstrained solver uses the input tree as scratch space through
// a private clone: it cuts edges at the centroid, solves the pieces
// recursively, re-adds and cuts again the one edge each trial split
// keeps, and reinserts the whole cut batch once the trials at that
// vertex are done. The caller's tree is never touched.
//
// Inputs must be valid trees (and, for MinDProjective, a validly
// oriented rooted tree); violations are programmer errors and panic.
package dmin
