package objspace

import "fmt"

// InvariantError reports a violated heap invariant.
type InvariantError struct {
	Type    string
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// AllInvariants runs FreeListMatchesFreeCount, FreePagesListMembership and
// LiveMatchesNonFreeCount and returns the first violation found, or nil if
// the heap is internally consistent. AllSlotsWhite is not included, since
// it only holds right after a completed collection; call it separately.
func AllInvariants(s *State) error {
	if err := FreeListMatchesFreeCount(s); err != nil {
		return err
	}
	if err := FreePagesListMembership(s); err != nil {
		return err
	}
	if err := LiveMatchesNonFreeCount(s); err != nil {
		return err
	}
	return nil
}

// FreeListMatchesFreeCount checks that every page's free list has exactly
// as many nodes as the page has KindFree slots, and that every node on the
// list is itself tagged KindFree.
func FreeListMatchesFreeCount(s *State) error {
	for p := s.heap.pages; p != nil; p = p.nextPage {
		listLen := 0
		for n := p.free; n != nil; n = n.next {
			if n.Kind != KindFree {
				return &InvariantError{
					Type:    "FreeListMatchesFreeCount",
					Message: "free list contains a slot not tagged KindFree",
				}
			}
			listLen++
		}

		tagged := 0
		for i := range p.slots {
			if p.slots[i].Kind == KindFree {
				tagged++
			}
		}

		if listLen != tagged {
			return &InvariantError{
				Type:    "FreeListMatchesFreeCount",
				Message: fmt.Sprintf("free list length %d does not match %d KindFree slots", listLen, tagged),
			}
		}
	}
	return nil
}

// FreePagesListMembership checks that a page appears on the free-pages list
// if and only if its own free list is non-empty, AND that every page on the
// free-pages list is also reachable from the global page list. The second
// half catches a page that was released (unlinked from the global list) but
// left dangling on the free-pages list — a leak that the first half alone
// cannot see, since it only ever walks forward from s.heap.pages.
func FreePagesListMembership(s *State) error {
	inPages := make(map[*Page]bool)
	for p := s.heap.pages; p != nil; p = p.nextPage {
		inPages[p] = true
	}

	onFreeList := make(map[*Page]bool)
	for p := s.heap.freePages; p != nil; p = p.nextFree {
		onFreeList[p] = true
		if !inPages[p] {
			return &InvariantError{
				Type:    "FreePagesListMembership",
				Message: "a page on the free-pages list is not on the global page list (leaked after release)",
			}
		}
	}

	for p := s.heap.pages; p != nil; p = p.nextPage {
		hasCapacity := p.free != nil
		if hasCapacity != onFreeList[p] {
			return &InvariantError{
				Type:    "FreePagesListMembership",
				Message: "a page's free-pages-list membership disagrees with whether it has a free slot",
			}
		}
	}
	return nil
}

// LiveMatchesNonFreeCount checks that Heap.live equals the number of slots
// across all pages whose Kind is not KindFree. Call this only outside a
// collection cycle: it is meaningless while sweep is mid-page.
func LiveMatchesNonFreeCount(s *State) error {
	count := 0
	for p := s.heap.pages; p != nil; p = p.nextPage {
		for i := range p.slots {
			if p.slots[i].Kind != KindFree {
				count++
			}
		}
	}
	if count != s.heap.live {
		return &InvariantError{
			Type:    "LiveMatchesNonFreeCount",
			Message: fmt.Sprintf("heap.live=%d but %d slots are non-FREE", s.heap.live, count),
		}
	}
	return nil
}

// AllSlotsWhite checks that every live slot is white, the state expected
// immediately after a completed collection and before the next mark phase
// paints any of them black.
func AllSlotsWhite(s *State) error {
	violation := false
	s.heap.EachObject(func(obj *RValue) bool {
		if obj.Kind != KindFree && !obj.isWhite() {
			violation = true
			return false
		}
		return true
	})
	if violation {
		return &InvariantError{
			Type:    "AllSlotsWhite",
			Message: "a live slot is black after collection completed",
		}
	}
	return nil
}
