package cowtree

// Tree is an in-memory ordered associative container. E is the entry type
// stored at leaves; K is the key type derived from an entry by the
// extractor function. A zero-value Tree is not usable; construct one with
// New or Derive.
//
// A Tree holds an optional local root, a monotonic version counter, the
// user-supplied key extractor and comparator, and an optional base tree.
// When the local root is nil and a base is set, the tree logically shares
// the base's root: every entry visible through the base is visible through
// the derived tree until the derived tree's first mutation, which
// materialises a private chain of nodes via copy-on-write.
type Tree[E any, K any] struct {
	root    *node[E, K]
	version uint64
	keyOf   func(E) K
	cmp     func(K, K) int
	base    *Tree[E, K]
}

// New constructs an empty tree with the given key extractor and comparator.
// cmp must be a total, antisymmetric order over K; every comparison made by
// the tree cross-checks cmp(a,b) against cmp(b,a) and returns
// ErrInconsistentComparator if they disagree about the sign.
func New[E any, K any](keyOf func(E) K, cmp func(K, K) int) *Tree[E, K] {
	return &Tree[E, K]{keyOf: keyOf, cmp: cmp}
}

// Derive constructs a new tree observing every entry of base. The derived
// tree shares base's key extractor and comparator. Mutations to the
// derived tree clone nodes along the affected path and never touch base;
// base's lifetime must enclose the derived tree's until ClearBase is
// called on the derived tree.
func Derive[E any, K any](base *Tree[E, K]) *Tree[E, K] {
	return &Tree[E, K]{keyOf: base.keyOf, cmp: base.cmp, base: base}
}

// effectiveRoot returns the node the tree currently reads through: its own
// root if it has materialised one, else the nearest ancestor base's root.
func (t *Tree[E, K]) effectiveRoot() *node[E, K] {
	for tr := t; tr != nil; tr = tr.base {
		if tr.root != nil {
			return tr.root
		}
	}
	return nil
}

// Version returns the tree's current monotonic version stamp.
func (t *Tree[E, K]) Version() uint64 {
	return t.version
}

// IsValid reports whether p was produced by (and has not been invalidated
// by a mutation on) this tree's current version.
func (t *Tree[E, K]) IsValid(p Path[E, K]) bool {
	return p.version == t.version
}

// ClearBase captures the tree's current effective root (local or
// inherited) as its own local root and releases the base reference.
// Subsequent mutations on the former base no longer surface through this
// tree. This does not modify any node and does not bump the version: no
// entries become visible or invisible as a result of calling it.
func (t *Tree[E, K]) ClearBase() {
	t.root = t.effectiveRoot()
	t.base = nil
}

// compare orders a and b via the user comparator, cross-checking
// antisymmetry whenever the forward call is nonzero (invariant 2: the
// comparator must be total and antisymmetric).
func (t *Tree[E, K]) compare(a, b K) (int, error) {
	fwd := t.cmp(a, b)
	if fwd == 0 {
		return 0, nil
	}
	back := t.cmp(b, a)
	if sign(fwd) != -sign(back) {
		return 0, ErrInconsistentComparator
	}
	return fwd, nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// GetCount walks the tree in ascending order, counting entries. With from
// nil it counts every entry from the beginning; with a non-nil starting
// path it counts forward from that path's position (inclusive if on; a
// path resting in a crack counts from the entry after it).
// There is no maintained running total: counting is a leaf-walk that adds
// each leaf's remaining entries at once, same as the reference design's
// O(n/fill) accessor.
func (t *Tree[E, K]) GetCount(from *Path[E, K]) (int, error) {
	var p Path[E, K]
	if from != nil {
		if !t.IsValid(*from) {
			return 0, ErrInvalidPath
		}
		p = from.Clone()
	} else {
		p = t.First()
	}
	count := 0
	if !p.on {
		if err := t.MoveNext(&p); err != nil {
			return 0, err
		}
	}
	for p.on {
		count += len(p.leaf.entries) - p.leafIndex
		p.leafIndex = len(p.leaf.entries) - 1
		if err := t.MoveNext(&p); err != nil {
			return 0, err
		}
	}
	return count, nil
}

// GetAll collects every entry in ascending order. It exists for tests and
// small trees; production callers wanting to stop early should use
// AscendingFrom directly instead of building the full slice.
func (t *Tree[E, K]) GetAll() ([]E, error) {
	var out []E
	p := t.First()
	for p.on {
		out = append(out, p.leaf.entries[p.leafIndex])
		if err := t.MoveNext(&p); err != nil {
			return nil, err
		}
	}
	return out, nil
}
