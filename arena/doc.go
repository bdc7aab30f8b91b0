// Package arena provides Seq, a fixed-capacity, cache-friendly sequence
// typed by element T.
//
// Seq exists to keep hot loops away from the repeated slice-growth
// reallocation pattern: every Seq is sized once, at construction, from a
// capacity the caller already knows (the vertex count, say), and never
// grows afterwards. In this module it backs the traversal engine's
// visited map.
//
// Seq is not safe for concurrent use; the module as a whole is
// single-threaded (see the root package doc).
package arena
