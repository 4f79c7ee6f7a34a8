package objspace

import (
	"math"

	"github.com/joshuapare/emrt/internal/gclog"
)

// HostAllocator is the single point of contact with raw memory below the
// object heap. It backs dynamically-sized byte payloads (an owned String's
// buffer) rather than RValue slots themselves, which live in Go-GC-managed
// Page arrays and cannot fail to allocate in the way a host malloc can.
// Array elements and Env value arrays are plain []Value slices under Go's
// own allocator, not routed through here, since they hold Values rather
// than raw bytes.
//
// Implementations report failure by returning nil for a positive newSize.
type HostAllocator interface {
	// Realloc resizes ptr to newSize, copying the overlapping prefix. A
	// nil ptr behaves like a fresh allocation; a newSize of zero behaves
	// like a free and may return nil.
	Realloc(ptr []byte, newSize int) []byte
}

// goAllocator is the default HostAllocator: ordinary Go allocation that
// never fails on its own. It exists so the collect-and-retry path in
// Realloc has a real implementation to exercise outside of tests.
type goAllocator struct{}

func (goAllocator) Realloc(ptr []byte, newSize int) []byte {
	if newSize == 0 {
		return nil
	}
	buf := make([]byte, newSize)
	copy(buf, ptr)
	return buf
}

// Realloc is the collector's single sized-(re)allocation primitive. On a
// nil result for a positive newSize it runs a full collection and retries
// exactly once; if the retry also fails it raises out-of-memory (fatal if
// the sticky flag was already set from a prior failure).
func (s *State) Realloc(ptr []byte, newSize int) []byte {
	buf := s.allocator.Realloc(ptr, newSize)
	if buf == nil && newSize > 0 {
		s.Collect()
		buf = s.allocator.Realloc(ptr, newSize)
	}
	if buf == nil && newSize > 0 {
		if s.outOfMemory {
			gclog.L.Error("out of memory after collection retry, already sticky", "size", newSize)
			panic(newFatalOutOfMemoryError())
		}
		s.outOfMemory = true
		gclog.L.Warn("out of memory, collection retry failed", "size", newSize)
		panic(newOutOfMemoryError())
	}
	s.outOfMemory = false
	return buf
}

// Alloc allocates size fresh bytes.
func (s *State) Alloc(size int) []byte { return s.Realloc(nil, size) }

// Calloc allocates n*size zeroed bytes, guarding against overflow of the
// multiplication. On overflow it returns nil without allocating or
// touching the out-of-memory flag — this is a caller programming error,
// not a resource exhaustion condition.
func (s *State) Calloc(n, size int) []byte {
	if size != 0 && n > math.MaxInt/size {
		return nil
	}
	return s.Realloc(nil, n*size)
}

// Free releases ptr. It is equivalent to reallocating to size zero.
func (s *State) Free(ptr []byte) { s.Realloc(ptr, 0) }

// ObjAlloc allocates and zero-initializes a heap slot of the given kind,
// paints it white, and protects it in the arena before returning it.
//
// If the free-pages list is empty this triggers exactly one collection
// (a no-op if the collector is disabled) followed by an unconditional new
// page allocation, so the caller always has a slot to take.
func (s *State) ObjAlloc(kind Kind, class *RValue) *RValue {
	if s.heap.freePages == nil {
		s.Collect()
		s.heap.allocPage()
	}

	page := s.heap.freePages
	p := page.free
	page.free = p.next
	if page.free == nil {
		s.heap.unlinkFreePage(page)
	}

	s.heap.live++
	if err := s.arena.Protect(p); err != nil {
		panic(err)
	}

	p.zero()
	p.Kind = kind
	p.Class = class
	p.paintWhite()
	return p
}
