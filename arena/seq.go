package arena

// Seq is a fixed-capacity contiguous sequence of T. Its length never
// changes after New: there is no Append. Callers that need growth should
// reach for a plain slice instead — Seq is for the case where the final
// size is known up front and the allocation should happen exactly once.
type Seq[T any] struct {
	data []T
}

// New allocates a Seq of length n, zero-valued.
func New[T any](n int) Seq[T] {
	if n < 0 {
		panic("arena: negative length")
	}
	return Seq[T]{data: make([]T, n)}
}

// Fill allocates a Seq of length n with every slot set to value.
func Fill[T any](n int, value T) Seq[T] {
	s := New[T](n)
	for i := range s.data {
		s.data[i] = value
	}
	return s
}

// Len returns the sequence length.
func (s Seq[T]) Len() int { return len(s.data) }

// Get returns the element at index i.
func (s Seq[T]) Get(i int) T { return s.data[i] }

// Set writes value at index i.
func (s Seq[T]) Set(i int, value T) { s.data[i] = value }

// Slice exposes the backing storage for iteration. Callers must not grow
// or shrink the returned slice; in-place element mutation through it is
// fine.
func (s Seq[T]) Slice() []T { return s.data }
