package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New[int](5)
	assert.Equal(t, 5, s.Len())
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, 0, s.Get(i))
	}
}

func TestFill(t *testing.T) {
	s := Fill(4, "x")
	require.Equal(t, 4, s.Len())
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, "x", s.Get(i))
	}
}

func TestSetGet(t *testing.T) {
	s := New[int](3)
	s.Set(1, 42)
	assert.Equal(t, 42, s.Get(1))
	assert.Equal(t, 0, s.Get(0))
}

func TestSliceSharesStorage(t *testing.T) {
	s := New[int](3)
	sl := s.Slice()
	sl[0] = 7
	assert.Equal(t, 7, s.Get(0))
}

func TestNewNegativePanics(t *testing.T) {
	assert.Panics(t, func() { New[int](-1) })
}
