package cowtree

import "iter"

// Endpoint names one bound of a Range: a key and whether that key itself
// is included in the scan.
type Endpoint[K any] struct {
	Key       K
	Inclusive bool
}

// Range names an optional lower and upper bound for a directional scan.
// A nil Start means "from the beginning"; a nil End means "to the end".
type Range[K any] struct {
	Start *Endpoint[K]
	End   *Endpoint[K]
}

// Direction selects which way a Range is walked.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// AscendingFrom returns a lazy sequence of paths starting at start and
// advancing with MoveNext until the path falls off the end of the tree.
// Each yielded (Path, error) pair mirrors the path/error shape used
// throughout the package; a non-nil error (an invalid path) is yielded
// once and ends the sequence.
func (t *Tree[E, K]) AscendingFrom(start Path[E, K]) iter.Seq2[Path[E, K], error] {
	return func(yield func(Path[E, K], error) bool) {
		p := start.Clone()
		for {
			if !t.IsValid(p) {
				yield(Path[E, K]{}, ErrInvalidPath)
				return
			}
			if !p.on {
				return
			}
			if !yield(p.Clone(), nil) {
				return
			}
			if err := t.MoveNext(&p); err != nil {
				yield(Path[E, K]{}, err)
				return
			}
		}
	}
}

// DescendingFrom returns a lazy sequence of paths starting at start and
// retreating with MovePrior until the path falls off the beginning of
// the tree.
func (t *Tree[E, K]) DescendingFrom(start Path[E, K]) iter.Seq2[Path[E, K], error] {
	return func(yield func(Path[E, K], error) bool) {
		p := start.Clone()
		for {
			if !t.IsValid(p) {
				yield(Path[E, K]{}, ErrInvalidPath)
				return
			}
			if !p.on {
				return
			}
			if !yield(p.Clone(), nil) {
				return
			}
			if err := t.MovePrior(&p); err != nil {
				yield(Path[E, K]{}, err)
				return
			}
		}
	}
}

// RangeScan walks the tree over r in the given direction, yielding every
// path whose entry falls within the bound. Each endpoint's Inclusive flag
// controls whether the boundary key itself is included. An absent bound
// on either side extends the scan to that end of the tree.
func (t *Tree[E, K]) RangeScan(r Range[K], dir Direction) iter.Seq2[Path[E, K], error] {
	return func(yield func(Path[E, K], error) bool) {
		start, err := t.rangeStart(r, dir)
		if err != nil {
			yield(Path[E, K]{}, err)
			return
		}

		p := start
		for {
			if !t.IsValid(p) {
				yield(Path[E, K]{}, ErrInvalidPath)
				return
			}
			if !p.on {
				return
			}
			key := t.keyOf(p.leaf.entries[p.leafIndex])

			if dir == Ascending && r.End != nil {
				c, cerr := t.compare(key, r.End.Key)
				if cerr != nil {
					yield(Path[E, K]{}, cerr)
					return
				}
				if c > 0 || (c == 0 && !r.End.Inclusive) {
					return
				}
			}
			if dir == Descending && r.Start != nil {
				c, cerr := t.compare(key, r.Start.Key)
				if cerr != nil {
					yield(Path[E, K]{}, cerr)
					return
				}
				if c < 0 || (c == 0 && !r.Start.Inclusive) {
					return
				}
			}

			if !yield(p.Clone(), nil) {
				return
			}
			if dir == Ascending {
				if err := t.MoveNext(&p); err != nil {
					yield(Path[E, K]{}, err)
					return
				}
			} else {
				if err := t.MovePrior(&p); err != nil {
					yield(Path[E, K]{}, err)
					return
				}
			}
		}
	}
}

// rangeStart locates the first path a RangeScan should visit: the bound
// named by the scan direction's leading edge (Start for ascending, End
// for descending), adjusted one step off an excluded exact match, or the
// corresponding end of the tree when that bound is absent.
func (t *Tree[E, K]) rangeStart(r Range[K], dir Direction) (Path[E, K], error) {
	if dir == Ascending {
		if r.Start == nil {
			return t.First(), nil
		}
		p, err := t.Find(r.Start.Key)
		if err != nil {
			return Path[E, K]{}, err
		}
		if r.Start.Inclusive && p.on {
			return p, nil
		}
		if err := t.MoveNext(&p); err != nil {
			return Path[E, K]{}, err
		}
		return p, nil
	}
	if r.End == nil {
		return t.Last(), nil
	}
	p, err := t.Find(r.End.Key)
	if err != nil {
		return Path[E, K]{}, err
	}
	if r.End.Inclusive && p.on {
		return p, nil
	}
	if err := t.MovePrior(&p); err != nil {
		return Path[E, K]{}, err
	}
	return p, nil
}
