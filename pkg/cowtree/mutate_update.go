package cowtree

// UpdateAt replaces the entry path rests on with updated. If updated's
// key compares equal to the current entry's key, the replacement happens
// in place at the same position. Otherwise it is implemented as an
// insert of updated followed by a delete of the old entry (found again by
// its original key), since a key change can move the entry to a
// different leaf entirely.
//
// If path does not rest on an entry (on=false), UpdateAt is a documented
// no-op: it returns the path unchanged with wasUpdate=true and performs
// no mutation. This mirrors the reference design's off-entry update
// contract and is surprising enough to call out explicitly: callers that
// need to know whether an entry actually changed must check path.on (via
// At) themselves before calling UpdateAt, not rely on the returned bool.
func (t *Tree[E, K]) UpdateAt(path Path[E, K], updated E) (Path[E, K], bool, error) {
	if !t.IsValid(path) {
		return Path[E, K]{}, false, ErrInvalidPath
	}
	if !path.on {
		return path, true, nil
	}

	oldEntry := path.leaf.entries[path.leafIndex]
	oldKey := t.keyOf(oldEntry)
	newKey := t.keyOf(updated)

	c, err := t.compare(oldKey, newKey)
	if err != nil {
		return Path[E, K]{}, false, err
	}
	if c == 0 {
		leaf := t.mutableLeaf(&path)
		leaf.entries[path.leafIndex] = updated
		path.leaf = leaf
		t.version++
		path.version = t.version
		return path, true, nil
	}

	insertedPath, err := t.Insert(updated)
	if err != nil {
		return Path[E, K]{}, false, err
	}
	if !insertedPath.on {
		return insertedPath, false, nil
	}

	oldPath, err := t.Find(oldKey)
	if err != nil {
		return Path[E, K]{}, false, err
	}
	if oldPath.on {
		if _, err := t.DeleteAt(oldPath); err != nil {
			return Path[E, K]{}, false, err
		}
	}

	finalPath, err := t.Find(newKey)
	if err != nil {
		return Path[E, K]{}, false, err
	}
	return finalPath, true, nil
}

// Upsert inserts entry if its key is absent, or overwrites the existing
// entry with the same key in place. Its return convention is preserved
// from the reference design and is easy to get backwards: on=true means
// the entry was already present and was overwritten; on=false means it
// was newly inserted.
func (t *Tree[E, K]) Upsert(entry E) (Path[E, K], error) {
	key := t.keyOf(entry)
	path, err := t.Find(key)
	if err != nil {
		return Path[E, K]{}, err
	}
	if path.on {
		leaf := t.mutableLeaf(&path)
		leaf.entries[path.leafIndex] = entry
		path.leaf = leaf
		t.version++
		path.version = t.version
		return path, nil
	}
	newPath := t.insertAt(path, entry)
	t.version++
	newPath.version = t.version
	newPath.on = false
	return newPath, nil
}

// MergeWith looks up entry's key; if an entry is already present, it
// calls updater on the existing entry and installs the result via
// UpdateAt; otherwise it inserts entry as-is. updater must not mutate the
// tree itself — doing so bumps the version and is caught as
// ErrInvalidPath when this call goes on to use its already-captured path.
func (t *Tree[E, K]) MergeWith(entry E, updater func(E) E) (Path[E, K], bool, error) {
	key := t.keyOf(entry)
	path, err := t.Find(key)
	if err != nil {
		return Path[E, K]{}, false, err
	}
	if path.on {
		existing := path.leaf.entries[path.leafIndex]
		return t.UpdateAt(path, updater(existing))
	}
	newPath := t.insertAt(path, entry)
	t.version++
	newPath.version = t.version
	return newPath, false, nil
}
