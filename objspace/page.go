package objspace

// PageSize is the number of slots per page.
const PageSize = 1024

// Page is a fixed array of slots plus the bookkeeping needed to thread it
// into the heap's two lists: the global list of every page, and the
// free-pages list of pages that currently have at least one free slot.
type Page struct {
	slots [PageSize]RValue

	// free is the head of this page's free list, threaded through
	// RValue.next. Nil means the page is entirely allocated.
	free *RValue

	prevPage, nextPage *Page
	prevFree, nextFree *Page

	// generational is unused by this collector; reserved for a future
	// generational variant.
	generational bool
}

// newPage allocates one page and threads all of its slots onto the page's
// free list. Iterating slots in order and prepending each one to the list
// means the first slot scanned ends up as the tail (its next is nil) and
// the last slot scanned ends up as the head — matching the reference
// collector's page layout exactly.
func newPage() *Page {
	p := &Page{}
	var head *RValue
	for i := range p.slots {
		s := &p.slots[i]
		s.zero()
		s.next = head
		head = s
	}
	p.free = head
	return p
}

// full reports whether every slot in the page is currently allocated.
func (p *Page) full() bool { return p.free == nil }
