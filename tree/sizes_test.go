package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JasonCoombs/linear-arrangement-library/graph"
)

func TestSubtreeSizesFromPivot(t *testing.T) {
	// caterpillar: spine 0-1-2-3, leaves 4@1, 5@2
	ft, err := FreeTreeFromEdges(6, []graph.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 4}, {U: 2, V: 5},
	})
	require.NoError(t, err)

	sizes := SubtreeSizesFromPivot(ft.Undirected, 0)
	assert.Equal(t, []int{6, 5, 3, 1, 1, 1}, sizes)

	sizes = SubtreeSizesFromPivot(ft.Undirected, 2)
	assert.Equal(t, []int{1, 3, 6, 1, 1, 1}, sizes)
}

func TestSubtreeSizesRespectsComponents(t *testing.T) {
	g := graph.NewUndirected(5)
	g.AddEdges([]graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 3, V: 4}}, false, false)

	sizes := SubtreeSizesFromPivot(g, 0)
	assert.Equal(t, 3, sizes[0])
	assert.Zero(t, sizes[3])
	assert.Zero(t, sizes[4])
}

func TestCentroidSingle(t *testing.T) {
	// 5-vertex path: centre vertex 2
	ft := pathTree(t, 5)
	c1, c2, two := CentroidOfComponent(ft.Undirected, 0)
	assert.Equal(t, 2, c1)
	assert.Equal(t, -1, c2)
	assert.False(t, two)
}

func TestCentroidDouble(t *testing.T) {
	// 4-vertex path: both middle vertices qualify, ascending order
	ft := pathTree(t, 4)
	for pivot := 0; pivot < 4; pivot++ {
		c1, c2, two := CentroidOfComponent(ft.Undirected, pivot)
		assert.True(t, two, "pivot %d", pivot)
		assert.Equal(t, 1, c1, "pivot %d", pivot)
		assert.Equal(t, 2, c2, "pivot %d", pivot)
	}
}

func TestCentroidStar(t *testing.T) {
	ft, err := FreeTreeFromEdges(5, []graph.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4},
	})
	require.NoError(t, err)

	c1, _, two := CentroidOfComponent(ft.Undirected, 3)
	assert.Equal(t, 0, c1)
	assert.False(t, two)
}

func TestCentroidTwoVertexComponent(t *testing.T) {
	g := graph.NewUndirected(2)
	g.AddEdge(0, 1, false, false)
	c1, c2, two := CentroidOfComponent(g, 1)
	assert.True(t, two)
	assert.Equal(t, 0, c1)
	assert.Equal(t, 1, c2)
}

func TestCentroidSingleton(t *testing.T) {
	g := graph.NewUndirected(3)
	g.AddEdge(1, 2, false, false)
	c1, _, two := CentroidOfComponent(g, 0)
	assert.Equal(t, 0, c1)
	assert.False(t, two)
}
