package tree

import "errors"

var (
	// ErrNotATree is returned by constructors when the supplied edges do
	// not form a tree on the declared vertex set.
	ErrNotATree = errors.New("tree: edge set is not a tree")

	// ErrInvalidHeadVector is returned by FromHeadVector when the vector
	// is empty, names an out-of-range parent, a self-parent, or does not
	// have exactly one root entry.
	ErrInvalidHeadVector = errors.New("tree: invalid head vector")
)
