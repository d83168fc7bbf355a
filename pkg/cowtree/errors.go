package cowtree

import "errors"

// Sentinel errors returned by operations that detect the failure kinds
// named in the container's design: a path drawn from a stale tree version,
// or a user comparator that disagrees with itself about the order of two
// keys. Both are checked eagerly, before any node is touched, so a failed
// operation never leaves the tree partially mutated.
var (
	// ErrInvalidPath is returned when a Path's version stamp no longer
	// matches the tree it is used against. Every committed mutation bumps
	// the tree's version, invalidating every path captured before it.
	ErrInvalidPath = errors.New("cowtree: path is not valid for the current tree version")

	// ErrInconsistentComparator is returned when compare(a,b) and
	// compare(b,a) disagree about the sign of the ordering, which means
	// the user-supplied comparator is not a total, antisymmetric order.
	ErrInconsistentComparator = errors.New("cowtree: comparator is inconsistent for the given keys")
)
