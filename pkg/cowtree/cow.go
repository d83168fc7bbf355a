package cowtree

// mutableLeaf returns a node private to t holding the same entries as
// p.leaf, cloning it and every foreign ancestor on p's branch chain
// bottom-up, stopping at the first already-owned branch (or installing a
// brand new root if the walk reaches the top without finding one). p is
// remapped in place so every step it records follows the freshly cloned
// chain instead of the foreign originals.
func (t *Tree[E, K]) mutableLeaf(p *Path[E, K]) *node[E, K] {
	if p.leaf.owner == t {
		return p.leaf
	}
	clone := p.leaf.clone(t)
	m := map[*node[E, K]]*node[E, K]{p.leaf: clone}
	t.patchAncestors(p.branches, clone, m)
	p.Remap(m)
	return clone
}

// patchAncestors walks branches bottom-up, cloning every foreign branch
// node and patching its child pointer at the recorded index to point at
// the already-cloned (or already-owned) node beneath it. It stops as soon
// as it finds a branch already owned by t, patching that one in place
// instead of cloning it. If every branch on the path is foreign, the walk
// reaches the top and installs a brand new root owned by t.
func (t *Tree[E, K]) patchAncestors(branches []branchStep[E, K], child *node[E, K], m map[*node[E, K]]*node[E, K]) {
	cur := child
	for i := len(branches) - 1; i >= 0; i-- {
		b := branches[i]
		if b.node.owner == t {
			b.node.children[b.idx] = cur
			return
		}
		c := b.node.clone(t)
		c.children[b.idx] = cur
		m[b.node] = c
		cur = c
	}
	t.root = cur
}

// mutableChildAt returns a node private to t holding the same contents as
// parent.children[idx], cloning it if necessary and patching parent's
// child slot to point at the clone. parent must already be owned by t;
// this is used during rebalancing to obtain a mutable sibling once the
// path down to the node being rebalanced has already been privatized.
func (t *Tree[E, K]) mutableChildAt(parent *node[E, K], idx int) *node[E, K] {
	child := parent.children[idx]
	if child.owner == t {
		return child
	}
	clone := child.clone(t)
	parent.children[idx] = clone
	return clone
}
