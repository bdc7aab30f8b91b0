// Package arrangement provides Arrangement, a bidirectional mapping
// between the vertices of an n-vertex graph and the positions 0..n-1 of
// a linear order, plus SumEdgeLengths, the D value of a graph under an
// arrangement.
//
// An Arrangement is only meaningful when it is a permutation; bulk
// construction through Assign may pass through inconsistent intermediate
// states, and IsPermutation checks the invariant once a phase completes.
package arrangement
