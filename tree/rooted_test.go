package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JasonCoombs/linear-arrangement-library/graph"
)

func TestFromHeadVector(t *testing.T) {
	// 5-vertex star rooted at vertex 0
	rt, err := FromHeadVector([]int{0, 1, 1, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, 0, rt.Root())
	assert.Equal(t, Arborescence, rt.Orientation())
	assert.Equal(t, []int{1, 2, 3, 4}, rt.OutNeighbours(0))
}

func TestFromHeadVectorRejectsBadInput(t *testing.T) {
	cases := map[string][]int{
		"empty":             {},
		"no root":           {1, 1},
		"two roots":         {0, 0},
		"parent out of rng": {0, 9},
		"self parent":       {0, 2},
	}
	for name, hv := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromHeadVector(hv)
			assert.Error(t, err)
		})
	}
}

func TestRootedTreeFromEdgesRejectsMixedOrientation(t *testing.T) {
	// 0->1, 2->1: skeleton is a path but edges neither all point away
	// from 0 nor all toward it
	_, err := RootedTreeFromEdges(3, 0, []graph.Edge{{U: 0, V: 1}, {U: 2, V: 1}})
	assert.True(t, errors.Is(err, ErrNotATree))
}

func TestAntiArborescence(t *testing.T) {
	// all edges point toward root 0
	rt, err := RootedTreeFromEdges(4, 0, []graph.Edge{
		{U: 1, V: 0}, {U: 2, V: 1}, {U: 3, V: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, AntiArborescence, rt.Orientation())
	assert.ElementsMatch(t, []int{2, 3}, rt.Children(1))

	rt.ComputeSubtreeSizes()
	assert.Equal(t, 4, rt.NumSubtreeNodes(0))
	assert.Equal(t, 3, rt.NumSubtreeNodes(1))
	assert.Equal(t, 1, rt.NumSubtreeNodes(3))
}

func TestComputeSubtreeSizes(t *testing.T) {
	rt, err := FromHeadVector([]int{0, 1, 1, 2, 2, 3, 3})
	require.NoError(t, err)
	rt.ComputeSubtreeSizes()

	assert.Equal(t, 7, rt.NumSubtreeNodes(0))
	assert.Equal(t, 3, rt.NumSubtreeNodes(1))
	assert.Equal(t, 3, rt.NumSubtreeNodes(2))
	assert.Equal(t, 1, rt.NumSubtreeNodes(3))
	assert.Equal(t, 1, rt.NumSubtreeNodes(6))
}

func TestSubtreeSizesRecomputationIsStable(t *testing.T) {
	rt, err := FromHeadVector([]int{0, 1, 2, 3, 2, 3})
	require.NoError(t, err)

	rt.ComputeSubtreeSizes()
	first := make([]int, rt.NumVertices())
	for v := range first {
		first[v] = rt.NumSubtreeNodes(v)
	}
	rt.ComputeSubtreeSizes()
	for v := range first {
		assert.Equal(t, first[v], rt.NumSubtreeNodes(v))
	}
}

func TestSubtreeSizesQueryWithoutComputePanics(t *testing.T) {
	rt, err := FromHeadVector([]int{0, 1})
	require.NoError(t, err)
	assert.Panics(t, func() { rt.NumSubtreeNodes(0) })
}

func TestEditInvalidatesSubtreeSizes(t *testing.T) {
	rt, err := FromHeadVector([]int{0, 1, 1})
	require.NoError(t, err)
	rt.ComputeSubtreeSizes()
	require.True(t, rt.HasSubtreeSizes())

	require.NoError(t, rt.RemoveEdge(0, 2, false, false))
	assert.False(t, rt.HasSubtreeSizes())
	assert.Panics(t, func() { rt.NumSubtreeNodes(0) })
}
