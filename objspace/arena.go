package objspace

import "github.com/joshuapare/emrt/internal/gclog"

// DefaultArenaSize is the arena capacity used when a State is constructed
// without an explicit override, sized for typical host-call nesting depth.
const DefaultArenaSize = 100

// Arena is a bounded stack of object pointers used as additional GC roots.
// Any value returned by ObjAlloc is unreachable from every other root until
// the host stores it somewhere traceable; the arena keeps it alive across
// whatever further allocations the host performs in the meantime.
type Arena struct {
	store []*RValue
	idx   int
}

func newArena(size int) *Arena {
	if size <= 0 {
		size = DefaultArenaSize
	}
	return &Arena{store: make([]*RValue, size)}
}

// Protect pushes ptr onto the arena. If the arena is full it resets the
// index to leave four slots of headroom — so the error path itself can
// still allocate — and returns an overflow error without pushing ptr.
func (a *Arena) Protect(ptr *RValue) error {
	if ptr == nil {
		return nil
	}
	if a.idx >= len(a.store) {
		if len(a.store) >= 4 {
			a.idx = len(a.store) - 4
		} else {
			a.idx = 0
		}
		gclog.L.Warn("arena overflow", "capacity", len(a.store))
		return newArenaOverflowError()
	}
	a.store[a.idx] = ptr
	a.idx++
	return nil
}

// ProtectValue pushes v onto the arena unless it is an immediate value,
// which never refers to a heap slot and is silently ignored.
func (a *Arena) ProtectValue(v Value) error {
	if v.IsImmediate() {
		return nil
	}
	return a.Protect(v.Ptr())
}

// Save returns the current index, to be passed back to Restore once the
// caller's bounded run of allocations has finished.
func (a *Arena) Save() int { return a.idx }

// Restore drops every protection made since idx was returned by Save.
func (a *Arena) Restore(idx int) { a.idx = idx }

// Len returns the number of pointers currently protected.
func (a *Arena) Len() int { return a.idx }

// At returns the i'th protected pointer, for root enumeration.
func (a *Arena) At(i int) *RValue { return a.store[i] }
