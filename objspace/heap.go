package objspace

// Heap owns every page of object slots. It maintains the global page list
// (every page, for sweep and each_object) and the free-pages list (pages
// with at least one free slot, for the allocation fast path), plus the
// sweep cursor used while a collection is in progress.
type Heap struct {
	pages     *Page // head of the global page list
	freePages *Page // head of the free-pages list

	sweepCursor *Page // current page being swept, nil outside a cycle

	live          int // count of non-FREE slots across all pages
	liveAfterMark int // live count recorded at the end of the mark phase
}

// initHeap allocates the first page and links it into both lists.
func initHeap() *Heap {
	h := &Heap{}
	h.allocPage()
	return h
}

// freeHeap finalizes every live slot across every page. It is only ever
// called at runtime shutdown and does not depend on the sweep cursor or on
// any slot's color.
func (h *Heap) freeHeap(s *State) {
	for p := h.pages; p != nil; p = p.nextPage {
		for i := range p.slots {
			slot := &p.slots[i]
			if slot.Kind != KindFree {
				objFree(s, slot)
			}
		}
	}
	h.pages = nil
	h.freePages = nil
	h.sweepCursor = nil
}

// allocPage grows the heap by one page, linking it at the head of both the
// global list and the free-pages list.
func (h *Heap) allocPage() *Page {
	p := newPage()
	h.linkPage(p)
	h.linkFreePage(p)
	return p
}

func (h *Heap) linkPage(p *Page) {
	p.prevPage = nil
	p.nextPage = h.pages
	if h.pages != nil {
		h.pages.prevPage = p
	}
	h.pages = p
}

func (h *Heap) unlinkPage(p *Page) {
	if p.prevPage != nil {
		p.prevPage.nextPage = p.nextPage
	} else {
		h.pages = p.nextPage
	}
	if p.nextPage != nil {
		p.nextPage.prevPage = p.prevPage
	}
	p.prevPage, p.nextPage = nil, nil
}

func (h *Heap) linkFreePage(p *Page) {
	p.prevFree = nil
	p.nextFree = h.freePages
	if h.freePages != nil {
		h.freePages.prevFree = p
	}
	h.freePages = p
}

// unlinkFreePage removes p from the free-pages list. It is safe to call on
// a page that is not currently linked into the list at all (a full page,
// for instance, always has prevFree and nextFree both nil): the head case
// is recognized by identity against h.freePages, not merely by prevFree
// being nil, the way the original independently checks
// mrb->free_heaps == page before touching it. Without that identity check,
// calling this on an unlinked page would stomp h.freePages with the
// unlinked page's own (nil) nextFree, severing the real list.
func (h *Heap) unlinkFreePage(p *Page) {
	switch {
	case p.prevFree != nil:
		p.prevFree.nextFree = p.nextFree
	case h.freePages == p:
		h.freePages = p.nextFree
	default:
		return
	}
	if p.nextFree != nil {
		p.nextFree.prevFree = p.prevFree
	}
	p.prevFree, p.nextFree = nil, nil
}

// EachObjectFunc is invoked once per slot during EachObject, including
// slots whose Kind is KindFree. Returning false stops the walk early.
type EachObjectFunc func(obj *RValue) bool

// EachObject walks every slot in every page exactly once, in page order.
// It must not be called while a collection is in progress: sweep does not
// yield, so mid-cycle state is only ever observable this way.
func (h *Heap) EachObject(f EachObjectFunc) {
	for p := h.pages; p != nil; p = p.nextPage {
		for i := range p.slots {
			if !f(&p.slots[i]) {
				return
			}
		}
	}
}

// PageCount returns the number of pages currently backing the heap.
func (h *Heap) PageCount() int {
	n := 0
	for p := h.pages; p != nil; p = p.nextPage {
		n++
	}
	return n
}

// Live returns the number of non-FREE slots across all pages.
func (h *Heap) Live() int { return h.live }
