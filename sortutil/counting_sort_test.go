package sortutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type rec struct {
	key uint64
	tag string
}

func TestCountingSortAscendingStable(t *testing.T) {
	in := []rec{
		{2, "a"}, {1, "b"}, {2, "c"}, {0, "d"}, {1, "e"},
	}
	out := CountingSort(in, func(r rec) uint64 { return r.key }, 2, Ascending)

	tags := make([]string, len(out))
	for i, r := range out {
		tags[i] = r.tag
	}
	assert.Equal(t, []string{"d", "b", "e", "a", "c"}, tags)
}

func TestCountingSortDescendingStable(t *testing.T) {
	in := []rec{
		{2, "a"}, {1, "b"}, {2, "c"}, {0, "d"}, {1, "e"},
	}
	out := CountingSort(in, func(r rec) uint64 { return r.key }, 2, Descending)

	tags := make([]string, len(out))
	for i, r := range out {
		tags[i] = r.tag
	}
	// descending by key; ties reverse input order ("c" before "a", "e" before "b")
	assert.Equal(t, []string{"c", "a", "e", "b", "d"}, tags)
}

func TestCountingSortSmallSlices(t *testing.T) {
	assert.Equal(t, []rec(nil), CountingSort[rec](nil, func(r rec) uint64 { return r.key }, 5, Ascending))
	one := []rec{{3, "x"}}
	assert.Equal(t, one, CountingSort(one, func(r rec) uint64 { return r.key }, 5, Ascending))
}

func TestCountingSortKeyExceedsMaxPanics(t *testing.T) {
	in := []rec{{5, "a"}}
	assert.Panics(t, func() {
		CountingSort(in, func(r rec) uint64 { return r.key }, 2, Ascending)
	})
}
