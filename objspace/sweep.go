package objspace

// prepareSweep resets the sweep cursor to the head of the page list and
// snapshots the live count reached at the end of mark. liveAfterMark is
// reporting-only: it lets a caller compare "what mark found reachable" to
// "what remains after sweep" without racing the live counter sweep mutates.
func (s *State) prepareSweep() {
	s.heap.sweepCursor = s.heap.pages
	s.heap.liveAfterMark = s.heap.live
}

// sweep walks every page once, reclaiming every slot that is still white
// (or explicitly marked dead by the host) and repainting every survivor
// white for the next cycle.
//
// A page with no live survivors is released back to the runtime, with one
// exception: a page that went into this sweep completely full (zero spare
// slots) and whose every slot died in this single pass is kept instead,
// relinked onto the free-pages list. freed can only reach PageSize when the
// page was full going in, so that count alone distinguishes the two cases.
// Recycling a page that was hot a moment ago avoids freeing it only to
// allocate a replacement on the very next request. A full page that sheds
// only some of its slots this round is relinked the same way, since it had
// no free-pages-list membership to lose capacity from in the first place.
func (s *State) sweep() {
	for page := s.heap.sweepCursor; page != nil; {
		next := page.nextPage
		s.sweepPage(page)
		page = next
	}
	s.heap.sweepCursor = nil
}

func (s *State) sweepPage(page *Page) {
	full := page.full()
	freed := 0
	allDead := true

	for i := range page.slots {
		slot := &page.slots[i]

		dead := slot.isWhite()
		if s.isDead != nil && s.isDead(slot) {
			dead = true
		}

		if dead {
			// A slot already tagged KindFree sits on the page's free list
			// from an earlier sweep and is left exactly where it is; only a
			// live-to-dead transition threads a slot onto the list here, so
			// freed counts reclamations, not pre-existing free capacity.
			if slot.Kind != KindFree {
				objFree(s, slot)
				slot.Kind = KindFree
				slot.paintWhite()
				slot.next = page.free
				page.free = slot
				freed++
			}
			continue
		}

		slot.paintWhite()
		allDead = false
	}

	if allDead && freed < PageSize {
		s.heap.unlinkPage(page)
		// Unconditional: a non-full page releasing here (the common case,
		// since freed < PageSize forces full == false whenever the page had
		// zero pre-existing free slots) is still on the free-pages list
		// from ordinary allocation traffic and must be removed from it, not
		// just from the global list. unlinkFreePage is a no-op on a page
		// that was never linked (the full-on-entry case), so calling it
		// unconditionally here is always correct.
		s.heap.unlinkFreePage(page)
	} else if full && freed > 0 {
		s.heap.linkFreePage(page)
	}

	s.heap.live -= freed
	s.heap.liveAfterMark -= freed
}

// objFree finalizes a slot's payload before it is threaded onto a free
// list. It dispatches on Kind exactly as Mark does, calling into whatever
// non-core hook owns the payload's release path. s is threaded through so
// a payload actually allocated via s.Alloc/s.Calloc (currently only an
// owned String's byte buffer) is released through the same host allocator
// it came from, rather than just dropping the Go reference to it — a
// dangling reference for sweep to reclaim is not the same as telling the
// host allocator the bytes are free. Array elements and Env value arrays
// are plain []Value slices under Go's own runtime allocator, never routed
// through HostAllocator, so dropping the slice is their actual release.
func objFree(s *State, obj *RValue) {
	if obj.Data == nil {
		// A slot whose payload was never set has nothing to release.
		return
	}
	switch obj.Kind {
	case KindFree, KindFalse, KindTrue, KindFixnum, KindSymbol, KindFloat:
		// Immediate kinds and an already-free slot never reach here through
		// ObjAlloc; nothing to release.

	case KindObject:
		d := obj.Data.(*ObjectData)
		if d.IV != nil {
			d.IV.FreeIV()
		}

	case KindClass, KindModule, KindSClass:
		d := obj.Data.(*ClassData)
		if d.MT != nil {
			d.MT.FreeMT()
		}
		if d.IV != nil {
			d.IV.FreeIV()
		}

	case KindIClass:
		// No instance variables or method table of its own.

	case KindEnv:
		d := obj.Data.(*EnvData)
		if obj.flags.has(FlagEnvTopLevel) {
			d.Values = nil
		}

	case KindFiber:
		d := obj.Data.(*FiberData)
		d.Ctx = nil

	case KindArray:
		d := obj.Data.(*ArrayData)
		if d.shared != nil {
			d.shared.refcount--
			d.shared = nil
		} else {
			d.elems = nil
		}

	case KindHash:
		d := obj.Data.(*HashData)
		if d.IV != nil {
			d.IV.FreeIV()
		}
		if d.Table != nil {
			d.Table.FreeHash()
		}

	case KindString:
		d := obj.Data.(*StringData)
		if !obj.flags.has(FlagStringShared) && !obj.flags.has(FlagStringNoFree) {
			s.Free(d.Buf)
			d.Buf = nil
		}

	case KindRange:
		d := obj.Data.(*RangeData)
		d.edges = nil

	case KindData:
		d := obj.Data.(*DataData)
		if d.Free != nil {
			d.Free(d.Ptr)
		}
		if d.IV != nil {
			d.IV.FreeIV()
		}

	case KindProc:
		// Env and TargetClass are shared references, not owned.
	}

	obj.Data = nil
}
