package arrangement

import "github.com/JasonCoombs/linear-arrangement-library/graph"

// Arrangement stores a linear arrangement as two aligned arrays: the
// position of every vertex and the vertex at every position.
type Arrangement struct {
	posOf  []int
	vertAt []int
}

// New returns the identity arrangement on n vertices: vertex v at
// position v.
func New(n int) *Arrangement {
	a := &Arrangement{posOf: make([]int, n), vertAt: make([]int, n)}
	for i := 0; i < n; i++ {
		a.posOf[i] = i
		a.vertAt[i] = i
	}
	return a
}

// Identity is a named alternative for New.
func Identity(n int) *Arrangement { return New(n) }

// Len returns n.
func (a *Arrangement) Len() int { return len(a.posOf) }

// Assign places vertex v at position p, updating both directions of the
// mapping. The caller is responsible for the mapping being a permutation
// once a construction phase completes.
func (a *Arrangement) Assign(v, p int) {
	a.posOf[v] = p
	a.vertAt[p] = v
}

// Position returns the position of vertex v.
func (a *Arrangement) Position(v int) int { return a.posOf[v] }

// VertexAt returns the vertex at position p.
func (a *Arrangement) VertexAt(p int) int { return a.vertAt[p] }

// SwapPositions exchanges the vertices at positions p1 and p2.
func (a *Arrangement) SwapPositions(p1, p2 int) {
	v1, v2 := a.vertAt[p1], a.vertAt[p2]
	a.Assign(v1, p2)
	a.Assign(v2, p1)
}

// Mirror reverses the arrangement: every position p becomes n-1-p.
func (a *Arrangement) Mirror() {
	n := len(a.posOf)
	for v := range a.posOf {
		a.posOf[v] = n - 1 - a.posOf[v]
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		a.vertAt[i], a.vertAt[j] = a.vertAt[j], a.vertAt[i]
	}
}

// Clone returns an independent copy.
func (a *Arrangement) Clone() *Arrangement {
	return &Arrangement{
		posOf:  append([]int(nil), a.posOf...),
		vertAt: append([]int(nil), a.vertAt...),
	}
}

// CopyFrom overwrites a with the contents of other. Both must have the
// same length.
func (a *Arrangement) CopyFrom(other *Arrangement) {
	if len(a.posOf) != len(other.posOf) {
		panic("arrangement: CopyFrom length mismatch")
	}
	copy(a.posOf, other.posOf)
	copy(a.vertAt, other.vertAt)
}

// Equal reports whether two arrangements are the same mapping.
func (a *Arrangement) Equal(other *Arrangement) bool {
	if len(a.posOf) != len(other.posOf) {
		return false
	}
	for v := range a.posOf {
		if a.posOf[v] != other.posOf[v] {
			return false
		}
	}
	return true
}

// IsPermutation reports whether the mapping is a bijection and the two
// arrays are mutually inverse.
func (a *Arrangement) IsPermutation() bool {
	n := len(a.posOf)
	for v := 0; v < n; v++ {
		p := a.posOf[v]
		if p < 0 || p >= n || a.vertAt[p] != v {
			return false
		}
	}
	return true
}

// SumEdgeLengths computes D, the sum over edges {u,v} of
// |pos(u) - pos(v)|, for an undirected graph under arrangement a.
func SumEdgeLengths(g *graph.Undirected, a *Arrangement) uint64 {
	var d uint64
	for u := 0; u < g.NumVertices(); u++ {
		pu := a.posOf[u]
		for _, v := range g.Neighbours(u) {
			if v < u {
				continue
			}
			pv := a.posOf[v]
			if pu > pv {
				d += uint64(pu - pv)
			} else {
				d += uint64(pv - pu)
			}
		}
	}
	return d
}
