package cowtree

// rootSplitInfo carries the result of a branch-level split that reached
// all the way past the existing root: the key to promote and the two
// halves that must become the new root's two children.
type rootSplitInfo[E any, K any] struct {
	key   K
	left  *node[E, K]
	right *node[E, K]
}

// Insert adds entry under the key its extractor derives. If that key is
// already present, the insert is rejected: the returned Path rests on the
// existing entry with on set to false, and the tree is left untouched. On
// success it returns a Path resting on the newly inserted entry.
func (t *Tree[E, K]) Insert(entry E) (Path[E, K], error) {
	key := t.keyOf(entry)
	path, err := t.Find(key)
	if err != nil {
		return Path[E, K]{}, err
	}
	if path.on {
		path.on = false
		return path, nil
	}
	newPath := t.insertAt(path, entry)
	t.version++
	newPath.version = t.version
	return newPath, nil
}

// insertAt splices entry into the leaf path rests at, cloning the
// affected path and splitting leaf and branch nodes as needed. path must
// rest off an entry (on=false), at the position entry's key belongs.
func (t *Tree[E, K]) insertAt(path Path[E, K], entry E) Path[E, K] {
	if path.leaf == nil {
		leaf := newLeaf(t)
		leaf.entries = []E{entry}
		t.root = leaf
		return Path[E, K]{leaf: leaf, leafIndex: 0, on: true}
	}

	leaf := t.mutableLeaf(&path)
	pos := path.leafIndex
	leaf.entries = leafInsertAt(leaf.entries, pos, entry)

	if len(leaf.entries) <= Capacity {
		path.leaf = leaf
		path.leafIndex = pos
		path.on = true
		return path
	}

	mid, right := t.splitLeaf(leaf)
	splitKey := t.keyOf(right.entries[0])

	var finalLeaf *node[E, K]
	var finalIndex int
	if pos < mid {
		finalLeaf, finalIndex = leaf, pos
	} else {
		finalLeaf, finalIndex = right, pos-mid
	}

	if len(path.branches) == 0 {
		newRoot := newBranch(t)
		newRoot.keys = []K{splitKey}
		newRoot.children = []*node[E, K]{leaf, right}
		t.root = newRoot
		topIdx := 0
		if finalLeaf == right {
			topIdx = 1
		}
		path.branches = []branchStep[E, K]{{node: newRoot, idx: topIdx}}
		path.leaf = finalLeaf
		path.leafIndex = finalIndex
		path.on = true
		return path
	}

	newBranches, rsi := t.propagateSplit(path.branches, splitKey, right, finalLeaf == right)
	if rsi != nil {
		newRoot := newBranch(t)
		newRoot.keys = []K{rsi.key}
		newRoot.children = []*node[E, K]{rsi.left, rsi.right}
		t.root = newRoot
		topIdx := 0
		if newBranches[0].node == rsi.right {
			topIdx = 1
		}
		newBranches = append([]branchStep[E, K]{{node: newRoot, idx: topIdx}}, newBranches...)
	}
	path.branches = newBranches
	path.leaf = finalLeaf
	path.leafIndex = finalIndex
	path.on = true
	return path
}

// splitLeaf splits an overflowed leaf (Capacity+1 entries) in place,
// keeping the first mid entries in leaf and moving the rest to a freshly
// allocated right sibling. mid is (Capacity+1)/2, the reference design's
// split point.
func (t *Tree[E, K]) splitLeaf(leaf *node[E, K]) (mid int, right *node[E, K]) {
	mid = len(leaf.entries) / 2
	right = newLeaf(t)
	right.entries = append([]E(nil), leaf.entries[mid:]...)
	leaf.entries = leaf.entries[:mid]
	return mid, right
}

// splitBranch splits an overflowed branch in place, promoting its middle
// key to the caller and moving the trailing keys/children to a freshly
// allocated right sibling.
func (t *Tree[E, K]) splitBranch(parent *node[E, K]) (mid int, promoted K, right *node[E, K]) {
	mid = len(parent.keys) / 2
	promoted = parent.keys[mid]
	right = newBranch(t)
	right.keys = append([]K(nil), parent.keys[mid+1:]...)
	right.children = append([]*node[E, K](nil), parent.children[mid+1:]...)
	parent.keys = parent.keys[:mid]
	parent.children = parent.children[:mid+1]
	return mid, promoted, right
}

// propagateSplit inserts (splitKey, right) as a new partition/child pair
// into the direct parent named by the last step of branches, splitting
// that branch (and cascading upward) as needed. Each branch step's node
// and index are adjusted in place to keep tracking the path's true
// destination: targetIsRight says whether that destination is the
// newly-created sibling just inserted at this level (true) or the
// original child already recorded by the branch step (false). At the
// leaf level this is "did the entry land in the new right leaf";
// further up it is "did the level below relocate into its own newRight".
// If the cascade consumes the topmost branch, the caller must install a
// new root from the returned info.
func (t *Tree[E, K]) propagateSplit(branches []branchStep[E, K], splitKey K, right *node[E, K], targetIsRight bool) ([]branchStep[E, K], *rootSplitInfo[E, K]) {
	key := splitKey
	cur := right
	for i := len(branches) - 1; i >= 0; i-- {
		parent := branches[i].node
		at := branches[i].idx

		parent.keys = branchInsertKeyAt(parent.keys, at, key)
		parent.children = childInsertAt(parent.children, at+1, cur)

		targetIdx := at
		if targetIsRight {
			targetIdx = at + 1
		}

		if len(parent.children) <= Capacity {
			branches[i].idx = targetIdx
			return branches, nil
		}

		mid, promoted, newRight := t.splitBranch(parent)
		if targetIdx > mid {
			branches[i].node = newRight
			branches[i].idx = targetIdx - (mid + 1)
			targetIsRight = true
		} else {
			branches[i].idx = targetIdx
			targetIsRight = false
		}
		key = promoted
		cur = newRight

		if i == 0 {
			return branches, &rootSplitInfo[E, K]{key: key, left: parent, right: cur}
		}
	}
	return branches, nil
}
