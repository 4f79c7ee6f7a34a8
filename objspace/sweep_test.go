package objspace

import "testing"

func Test_Sweep_ReclaimsWhiteSlots(t *testing.T) {
	s := newTestState()
	obj := s.ObjAlloc(KindObject, nil)
	obj.Data = &ObjectData{IV: &fakeIVTable{}}
	s.Arena().Restore(0) // drop the allocation-time protection

	liveBefore := s.Live()
	s.prepareSweep()
	s.sweep()

	if s.Live() != liveBefore-1 {
		t.Fatalf("got live %d, want %d", s.Live(), liveBefore-1)
	}
	if obj.Kind != KindFree {
		t.Fatal("expected the unreached object to be tagged KindFree")
	}
}

func Test_Sweep_RepaintsSurvivorsWhite(t *testing.T) {
	s := newTestState()
	obj := s.ObjAlloc(KindObject, nil)
	obj.paintBlack() // simulate survival through mark

	s.prepareSweep()
	s.sweep()

	if !obj.isWhite() {
		t.Fatal("expected a survivor to be repainted white after sweep")
	}
	if obj.Kind != KindObject {
		t.Fatal("a survivor's kind must be untouched by sweep")
	}
}

func Test_Sweep_CallsFinalizerHooks(t *testing.T) {
	s := newTestState()
	iv := &fakeIVTable{}
	obj := s.ObjAlloc(KindObject, nil)
	obj.Data = &ObjectData{IV: iv}
	s.Arena().Restore(0)

	s.prepareSweep()
	s.sweep()

	if !iv.freed {
		t.Fatal("expected FreeIV to be called on a reclaimed object")
	}
}

func Test_Sweep_ArrayOwnedVsShared(t *testing.T) {
	s := newTestState()

	owned := s.ObjAlloc(KindArray, nil)
	owned.Data = &ArrayData{elems: []Value{FixnumValue(1)}}

	shared := s.ObjAlloc(KindArray, nil)
	buf := &sharedArrayBuf{elems: []Value{FixnumValue(2)}, refcount: 2}
	shared.Data = &ArrayData{shared: buf}
	shared.flags = shared.flags.set(FlagArrayShared)

	s.Arena().Restore(0)
	s.prepareSweep()
	s.sweep()

	if buf.refcount != 1 {
		t.Fatalf("got refcount %d, want 1 after one owner was swept", buf.refcount)
	}
}

func Test_Sweep_PageReleasedWhenNotFullAndFullyDead(t *testing.T) {
	s := newTestState()
	p := s.Heap().pages
	// p is not full (most slots are still on the free list), so if every
	// live slot on it dies this round, the page should be released.
	obj := s.ObjAlloc(KindObject, nil)
	s.Arena().Restore(0)

	pagesBefore := s.Heap().PageCount()
	s.prepareSweep()
	s.sweep()

	_ = obj
	if s.Heap().PageCount() != pagesBefore-1 {
		t.Fatalf("got %d pages, want %d (page should be released)", s.Heap().PageCount(), pagesBefore-1)
	}
	for fp := s.Heap().freePages; fp != nil; fp = fp.nextFree {
		if fp == p {
			t.Fatal("released page must not remain linked on the free-pages list")
		}
	}
	if err := FreePagesListMembership(s); err != nil {
		t.Fatal(err)
	}
}

func Test_Sweep_FullPageFullyDeadIsRetained(t *testing.T) {
	s := newTestState()
	s.Disable()

	objs := make([]*RValue, PageSize)
	for i := range objs {
		objs[i] = s.ObjAlloc(KindObject, nil)
		s.Arena().Restore(0)
	}
	// Exactly one page, now completely allocated (full).
	if s.Heap().PageCount() != 1 {
		t.Fatalf("got %d pages, want 1", s.Heap().PageCount())
	}
	if !s.Heap().pages.full() {
		t.Fatal("expected the single page to be full before sweep")
	}

	s.prepareSweep()
	s.sweep()

	if s.Heap().PageCount() != 1 {
		t.Fatalf("got %d pages, want 1 (a page full-on-entry should be retained, not released)", s.Heap().PageCount())
	}
	if s.Heap().freePages != s.Heap().pages {
		t.Fatal("expected the retained page to be relinked onto the free-pages list")
	}
}
