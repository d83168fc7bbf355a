package cowtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteOffEntryReturnsFalse(t *testing.T) {
	tr := newIntTree()
	mustInsert(t, tr, 1, "")
	p, err := tr.Find(2)
	require.NoError(t, err)
	ok, err := tr.DeleteAt(p)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteLastEntryLeavesEmptyRootLeaf(t *testing.T) {
	tr := newIntTree()
	mustInsert(t, tr, 1, "")
	p, err := tr.Find(1)
	require.NoError(t, err)
	ok, err := tr.DeleteAt(p)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, tr.First().on)
	n, err := tr.GetCount(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeletePathInvalidatedByVersionBump(t *testing.T) {
	tr := newIntTree()
	mustInsert(t, tr, 1, "")
	p, err := tr.Find(1)
	require.NoError(t, err)

	mustInsert(t, tr, 2, "")
	assert.False(t, tr.IsValid(p))
	_, err = tr.DeleteAt(p)
	assert.ErrorIs(t, err, ErrInvalidPath)
}

// TestDeleteCausesBorrowAndMergeRebalance drives enough inserts to build a
// branch-rooted tree, then deletes from the leftmost leaf until it
// underflows, exercising scenario E: the leftmost leaf borrows/merges with
// its right sibling and every ancestor's leftmost partition continues to
// name that subtree's minimum key.
func TestDeleteCausesBorrowAndMergeRebalance(t *testing.T) {
	tr := newIntTree()
	const n = 3 * Capacity
	for i := 0; i < n; i++ {
		mustInsert(t, tr, i, "")
	}

	// Delete entries 0..HalfCapacity+5 from the front, forcing the
	// leftmost leaf through underflow and rebalance repeatedly.
	for i := 0; i < HalfCapacity+5; i++ {
		p, err := tr.Find(i)
		require.NoError(t, err)
		require.True(t, p.on)
		ok, err := tr.DeleteAt(p)
		require.NoError(t, err)
		require.True(t, ok)
	}

	ids := allIDs(t, tr)
	require.Len(t, ids, n-(HalfCapacity+5))
	for idx, id := range ids {
		assert.Equal(t, HalfCapacity+5+idx, id)
	}

	// The minimum key must still be findable and every subsequent entry
	// must remain reachable in order, i.e. ancestor partitions were kept
	// consistent with the new minimum through the rebalance.
	e, ok, err := tr.Get(HalfCapacity + 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, HalfCapacity+5, e.id)
}

func TestDeleteAllEntriesOneByOneFromBack(t *testing.T) {
	tr := newIntTree()
	const n = 3 * Capacity
	for i := 0; i < n; i++ {
		mustInsert(t, tr, i, "")
	}
	for i := n - 1; i >= 0; i-- {
		p, err := tr.Find(i)
		require.NoError(t, err)
		require.True(t, p.on)
		ok, err := tr.DeleteAt(p)
		require.NoError(t, err)
		require.True(t, ok)
	}
	n2, err := tr.GetCount(nil)
	require.NoError(t, err)
	assert.Zero(t, n2)
}
