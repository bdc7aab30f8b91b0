// Package lal computes properties of linear arrangements of trees — the
// orderings of a tree's vertices along a line that quantitative
// linguistics studies through the sum of edge lengths D.
//
// The module is organised as small single-concern packages:
//
//	arena/       — fixed-capacity sequences for allocation-free hot loops
//	sortutil/    — stable integer-keyed counting sort
//	graph/       — undirected & directed simple graphs with normalised
//	               adjacency lists
//	tree/        — free and rooted tree wrappers, subtree sizes,
//	               centroids, tree-type classification
//	traversal/   — one BFS/DFS engine with pluggable hooks
//	arrangement/ — the vertex <-> position bijection and D itself
//	dmin/        — the three minimum-D solvers: unconstrained
//	               (Shiloach/Chung), planar and projective (AEF)
//
// Quick start: build a tree from a head vector and minimise D.
//
//	rt, _ := tree.FromHeadVector([]int{0, 1, 1, 1, 1})
//	cost, arr := dmin.MinD(rt.ToFree(), dmin.Shiloach)
//
// Everything is in-memory, single-threaded and deterministic: the same
// tree produces the same cost and the same arrangement on every run and
// platform.
package lal
