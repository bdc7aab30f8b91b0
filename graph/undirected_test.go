package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndirectedAddEdge(t *testing.T) {
	g := NewUndirected(4)
	g.AddEdge(0, 1, false, false)
	g.AddEdge(0, 2, false, false)

	assert.Equal(t, 2, g.NumEdges())
	assert.Equal(t, 2, g.Degree(0))
	assert.ElementsMatch(t, []int{1, 2}, g.Neighbours(0))
	assert.False(t, g.Normalised())
}

func TestUndirectedSelfLoopPanics(t *testing.T) {
	g := NewUndirected(2)
	assert.Panics(t, func() { g.AddEdge(0, 0, false, false) })
}

func TestUndirectedOutOfRangePanics(t *testing.T) {
	g := NewUndirected(2)
	assert.Panics(t, func() { g.AddEdge(0, 5, false, false) })
}

func TestUndirectedRemoveEdge(t *testing.T) {
	g := NewUndirected(3)
	g.AddEdge(0, 1, false, false)
	require.NoError(t, g.RemoveEdge(0, 1, false, false))
	assert.Equal(t, 0, g.NumEdges())
	assert.Empty(t, g.Neighbours(0))
}

func TestUndirectedRemoveMissingEdge(t *testing.T) {
	g := NewUndirected(3)
	err := g.RemoveEdge(0, 1, false, false)
	assert.True(t, errors.Is(err, ErrEdgeNotFound))
}

func TestUndirectedNormaliseIdempotent(t *testing.T) {
	g := NewUndirected(5)
	g.AddEdges([]Edge{{0, 3}, {0, 1}, {0, 4}, {0, 2}}, false, false)
	g.Normalise()
	first := append([]int(nil), g.Neighbours(0)...)
	g.Normalise()
	second := g.Neighbours(0)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{1, 2, 3, 4}, first)
	assert.True(t, g.Normalised())
}

func TestUndirectedMaintainNormalisedInsertsSorted(t *testing.T) {
	g := NewUndirected(5)
	g.Normalise() // vacuous, but sets the flag true on empty lists
	g.AddEdge(0, 3, true, true)
	g.AddEdge(0, 1, true, true)
	g.AddEdge(0, 4, true, true)
	assert.True(t, g.Normalised())
	assert.Equal(t, []int{1, 3, 4}, g.Neighbours(0))
}

func TestUndirectedEditSymmetry(t *testing.T) {
	g := NewUndirected(4)
	edges := []Edge{{0, 1}, {1, 2}, {2, 3}}
	g.AddEdges(edges, true, true)
	before := g.Clone()

	require.NoError(t, g.RemoveEdges(edges, true, true))
	assert.Zero(t, g.NumEdges())

	g.AddEdges(edges, true, true)
	assert.Equal(t, before.NumEdges(), g.NumEdges())
	for v := 0; v < g.NumVertices(); v++ {
		assert.ElementsMatch(t, before.Neighbours(v), g.Neighbours(v))
	}
}

func TestUndirectedIsConnected(t *testing.T) {
	g := NewUndirected(4)
	g.AddEdges([]Edge{{0, 1}, {1, 2}}, false, false)
	assert.False(t, g.IsConnected())
	g.AddEdge(2, 3, false, false)
	assert.True(t, g.IsConnected())
}

func TestUndirectedCloneIsIndependent(t *testing.T) {
	g := NewUndirected(3)
	g.AddEdge(0, 1, false, false)
	clone := g.Clone()
	clone.AddEdge(1, 2, false, false)
	assert.Equal(t, 1, g.NumEdges())
	assert.Equal(t, 2, clone.NumEdges())
}
