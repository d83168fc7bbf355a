package cowtree

import "testing"

type kv struct {
	id   int
	data string
}

func keyOfKV(e kv) int { return e.id }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func newIntTree() *Tree[kv, int] {
	return New[kv, int](keyOfKV, cmpInt)
}

func mustInsert(t *testing.T, tr *Tree[kv, int], id int, data string) Path[kv, int] {
	t.Helper()
	p, err := tr.Insert(kv{id: id, data: data})
	if err != nil {
		t.Fatalf("insert(%d): unexpected error: %v", id, err)
	}
	if !p.on {
		t.Fatalf("insert(%d): expected on=true, duplicate rejected unexpectedly", id)
	}
	return p
}

func allIDs(t *testing.T, tr *Tree[kv, int]) []int {
	t.Helper()
	entries, err := tr.GetAll()
	if err != nil {
		t.Fatalf("GetAll: unexpected error: %v", err)
	}
	ids := make([]int, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	return ids
}
