package arena

import "testing"

type node struct {
	value int
	next  *node
}

func TestAllocZeroInitializes(t *testing.T) {
	var p Pool[node]
	n := p.Alloc()
	if n.value != 0 || n.next != nil {
		t.Fatalf("expected zero-valued node, got %+v", n)
	}
}

func TestAllocReturnsDistinctStablePointers(t *testing.T) {
	var p Pool[node]
	const count = pageSize*2 + 7
	ptrs := make([]*node, count)
	for i := range ptrs {
		ptrs[i] = p.Alloc()
		ptrs[i].value = i
	}
	for i, ptr := range ptrs {
		if ptr.value != i {
			t.Fatalf("pointer %d was invalidated: got value %d", i, ptr.value)
		}
	}
	if p.Len() != count {
		t.Fatalf("Len() = %d, want %d", p.Len(), count)
	}
}

func TestAllocAcrossPageBoundaryKeepsEarlierPointersValid(t *testing.T) {
	var p Pool[node]
	first := p.Alloc()
	first.value = 42
	for i := 0; i < pageSize; i++ {
		p.Alloc()
	}
	if first.value != 42 {
		t.Fatalf("first pointer corrupted after filling a page: got %d", first.value)
	}
}
