package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JasonCoombs/linear-arrangement-library/graph"
)

func pathTree(t *testing.T, n int) *FreeTree {
	t.Helper()
	edges := make([]graph.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge{U: i - 1, V: i})
	}
	ft, err := FreeTreeFromEdges(n, edges)
	require.NoError(t, err)
	return ft
}

func TestFreeTreeFromEdges(t *testing.T) {
	ft := pathTree(t, 4)
	assert.True(t, ft.IsTree())
	assert.Equal(t, 3, ft.NumEdges())
	assert.True(t, ft.Normalised())
}

func TestFreeTreeFromEdgesRejectsNonTree(t *testing.T) {
	// cycle on 3 vertices
	_, err := FreeTreeFromEdges(3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}})
	assert.True(t, errors.Is(err, ErrNotATree))

	// disconnected
	_, err = FreeTreeFromEdges(4, []graph.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	assert.True(t, errors.Is(err, ErrNotATree))
}

func TestToRootedOrientsAwayFromRoot(t *testing.T) {
	ft := pathTree(t, 4)
	rt := ft.ToRooted(2)

	assert.Equal(t, 2, rt.Root())
	assert.Equal(t, Arborescence, rt.Orientation())
	assert.ElementsMatch(t, []int{1, 3}, rt.OutNeighbours(2))
	assert.ElementsMatch(t, []int{0}, rt.OutNeighbours(1))
	assert.Empty(t, rt.OutNeighbours(0))
}

func TestToRootedToFreeRoundTrip(t *testing.T) {
	ft, err := FreeTreeFromEdges(5, []graph.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 2, V: 3}, {U: 2, V: 4},
	})
	require.NoError(t, err)

	back := ft.ToRooted(3).ToFree()
	require.Equal(t, ft.NumEdges(), back.NumEdges())
	for v := 0; v < ft.NumVertices(); v++ {
		assert.Equal(t, ft.Neighbours(v), back.Neighbours(v), "vertex %d", v)
	}
}

func TestFreeTreeEditInvalidatesTreeType(t *testing.T) {
	ft := pathTree(t, 4)
	require.Equal(t, TreeTypeLinear, ft.TreeType())

	// reshape the path into a star around vertex 1
	require.NoError(t, ft.RemoveEdge(2, 3, false, false))
	ft.AddEdge(1, 3, false, false)

	assert.Equal(t, TreeTypeStar, ft.TreeType())
}

func TestFreeTreeCloneIsIndependent(t *testing.T) {
	ft := pathTree(t, 3)
	cl := ft.Clone()
	require.NoError(t, cl.RemoveEdge(0, 1, false, false))
	assert.Equal(t, 2, ft.NumEdges())
	assert.Equal(t, 1, cl.NumEdges())
}
