package tree

import (
	"github.com/JasonCoombs/linear-arrangement-library/graph"
	"github.com/JasonCoombs/linear-arrangement-library/traversal"
)

// SubtreeSizesFromPivot returns, for every vertex in pivot's connected
// component, the number of vertices in the subtree hanging at that
// vertex when the component is rooted at pivot. Entries for vertices
// outside the component are 0. In particular sizes[pivot] is the
// component size.
func SubtreeSizesFromPivot(g *graph.Undirected, pivot int) []int {
	n := g.NumVertices()
	sizes := make([]int, n)
	parent := make([]int, n)
	order := make([]int, 0, n)
	parent[pivot] = -1

	bfs := traversal.NewBFS(g)
	bfs.SetProcessCurrent(func(v int) { order = append(order, v) })
	bfs.SetMayEnqueue(func(s, t int) bool {
		parent[t] = s
		return true
	})
	bfs.StartAt(pivot)

	// accumulate bottom-up: BFS order is a valid top-down order, so its
	// reverse visits every child before its parent
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		sizes[v]++
		if parent[v] >= 0 {
			sizes[parent[v]] += sizes[v]
		}
	}
	return sizes
}

// CentroidOfComponent returns the one or two centroidal vertices of the
// component containing v: vertices whose removal leaves no piece larger
// than half the component. With two centroids (always adjacent, only
// possible for even component size) they are returned in ascending
// index order and two is true; otherwise c2 is -1.
func CentroidOfComponent(g *graph.Undirected, v int) (c1, c2 int, two bool) {
	sizes := SubtreeSizesFromPivot(g, v)
	compSize := sizes[v]

	u, parent := v, -1
	for {
		heavy, heavySize := -1, 0
		for _, w := range g.Neighbours(u) {
			if w == parent {
				continue
			}
			if sizes[w] > heavySize {
				heavy, heavySize = w, sizes[w]
			}
		}
		if heavy >= 0 && 2*heavySize > compSize {
			parent, u = u, heavy
			continue
		}

		// u is centroidal; a second centroid exists iff some adjacent
		// piece holds exactly half the component
		if compSize%2 == 0 {
			if parent >= 0 && 2*(compSize-sizes[u]) == compSize {
				return ascending(u, parent)
			}
			if heavy >= 0 && 2*heavySize == compSize {
				return ascending(u, heavy)
			}
		}
		return u, -1, false
	}
}

func ascending(a, b int) (int, int, bool) {
	if a > b {
		a, b = b, a
	}
	return a, b, true
}
