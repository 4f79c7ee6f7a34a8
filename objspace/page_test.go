package objspace

import "testing"

func Test_NewPage_FreeListOrder(t *testing.T) {
	p := newPage()
	if p.free != &p.slots[PageSize-1] {
		t.Fatalf("expected head of free list to be the last slot scanned")
	}

	// Walk to the tail; it must be the first slot scanned.
	n := p.free
	count := 1
	for n.next != nil {
		n = n.next
		count++
	}
	if n != &p.slots[0] {
		t.Fatalf("expected tail of free list to be the first slot scanned")
	}
	if count != PageSize {
		t.Fatalf("got %d free slots, want %d", count, PageSize)
	}
}

func Test_Page_Full(t *testing.T) {
	p := newPage()
	if p.full() {
		t.Fatal("freshly built page reported full")
	}

	p.free = nil
	if !p.full() {
		t.Fatal("page with nil free list reported not full")
	}
}
