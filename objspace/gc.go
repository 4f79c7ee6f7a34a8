package objspace

import "github.com/joshuapare/emrt/internal/gclog"

// Collect runs one full stop-the-world cycle: mark every reachable object,
// then sweep every page. It is a no-op while the collector is disabled.
//
// There are no suspension points anywhere in this call: Go goroutines other
// than the one calling Collect must not touch the heap concurrently, since
// nothing here is synchronized.
func (s *State) Collect() {
	if s.disabled {
		gclog.L.Debug("collect skipped, collector disabled")
		return
	}

	liveBefore := s.heap.live

	s.phase = PhaseMark
	s.markRoots()

	s.phase = PhaseSweep
	s.prepareSweep()
	s.sweep()

	s.phase = PhaseNone
	gclog.LogCollection(liveBefore, s.heap.live)
}

// Enable turns the collector back on and reports whether it was previously
// disabled.
func (s *State) Enable() bool {
	was := s.disabled
	s.disabled = false
	return was
}

// Disable turns the collector off: Collect becomes a no-op and ObjAlloc
// grows the heap instead of triggering a cycle when it runs out of free
// pages. It reports whether the collector was already disabled.
func (s *State) Disable() bool {
	was := s.disabled
	s.disabled = true
	return was
}

// Disabled reports whether Collect currently no-ops.
func (s *State) Disabled() bool { return s.disabled }

// WriteBarrier and FieldWriteBarrier are inert: this collector runs
// stop-the-world with no generational or incremental phase for a barrier to
// support. They are kept so bindings written against a barrier-aware
// collector compile unchanged if this one is ever swapped in underneath.
func (s *State) WriteBarrier(obj *RValue)             {}
func (s *State) FieldWriteBarrier(obj, value *RValue) {}
