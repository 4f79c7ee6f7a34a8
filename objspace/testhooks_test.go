package objspace

// fakeIVTable is a minimal IVTable double: a flat slice of values, enough
// to exercise MarkIV/FreeIV without pulling in a real interpreter.
type fakeIVTable struct {
	values []Value
	freed  bool
}

func (t *fakeIVTable) MarkIV(mark MarkFunc) {
	for _, v := range t.values {
		if !v.IsImmediate() {
			mark(v.Ptr())
		}
	}
}

func (t *fakeIVTable) FreeIV() { t.freed = true }

type fakeMTable struct {
	methods []Value
	freed   bool
}

func (t *fakeMTable) MarkMT(mark MarkFunc) {
	for _, v := range t.methods {
		if !v.IsImmediate() {
			mark(v.Ptr())
		}
	}
}

func (t *fakeMTable) FreeMT() { t.freed = true }

type fakeHashTable struct {
	pairs []Value
	freed bool
}

func (t *fakeHashTable) MarkHash(mark MarkFunc) {
	for _, v := range t.pairs {
		if !v.IsImmediate() {
			mark(v.Ptr())
		}
	}
}

func (t *fakeHashTable) FreeHash() { t.freed = true }

type fakeGVTable struct {
	globals []Value
}

func (t *fakeGVTable) MarkGV(mark MarkFunc) {
	for _, v := range t.globals {
		if !v.IsImmediate() {
			mark(v.Ptr())
		}
	}
}

// newTestState builds a State with the default allocator and a small arena,
// convenient for tests that don't care about arena-overflow behavior.
func newTestState() *State {
	return NewState(Options{ArenaSize: 16})
}
