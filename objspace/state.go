package objspace

// GCPhase is the collector's current activity, mirroring the reference
// design's NONE/MARK/SWEEP state. It exists only for introspection
// (State.Phase), since this collector does not yield between phases.
type GCPhase uint8

const (
	PhaseNone GCPhase = iota
	PhaseMark
	PhaseSweep
)

func (p GCPhase) String() string {
	switch p {
	case PhaseMark:
		return "mark"
	case PhaseSweep:
		return "sweep"
	default:
		return "none"
	}
}

// Options configures a new State. The zero value is valid: it selects the
// default arena size and the default (never-failing) host allocator.
type Options struct {
	// ArenaSize overrides DefaultArenaSize.
	ArenaSize int

	// Allocator overrides the default HostAllocator. Tests use this to
	// install an allocator that fails on demand (see failingAllocator in
	// objspace/alloc_test.go).
	Allocator HostAllocator

	// IsDead lets the host mark specific objects for forced collection
	// even while otherwise reachable — e.g. to unwind a fiber whose
	// context must not survive the fiber's own explicit shutdown. Nil
	// means no object is ever force-dead.
	IsDead func(obj *RValue) bool
}

// State is the process-wide runtime state: the heap, the arena, the root
// set, and the collector's own bookkeeping. It is created once at runtime
// startup and torn down once at shutdown; every collector operation is a
// method on it, so nothing lives in package-level or thread-local state.
type State struct {
	heap  *Heap
	arena *Arena
	Roots Roots

	allocator HostAllocator
	isDead    func(obj *RValue) bool

	phase       GCPhase
	disabled    bool
	outOfMemory bool
}

// NewState builds a State with an initialized heap of one page and an
// empty arena. No allocation may happen before this returns.
func NewState(opts Options) *State {
	alloc := opts.Allocator
	if alloc == nil {
		alloc = goAllocator{}
	}
	return &State{
		heap:      initHeap(),
		arena:     newArena(opts.ArenaSize),
		allocator: alloc,
		isDead:    opts.IsDead,
	}
}

// FreeHeap finalizes every remaining live object. Call once at shutdown.
func (s *State) FreeHeap() { s.heap.freeHeap(s) }

// Heap exposes the underlying paged heap for introspection (emrtctl,
// objspace/verify helpers). Mutating collector operations remain methods
// on State so external callers cannot bypass arena/root bookkeeping.
func (s *State) Heap() *Heap { return s.heap }

// Arena exposes the arena for introspection and for host bindings that
// need Save/Restore/Protect directly (the pkg/gc facade wraps these).
func (s *State) Arena() *Arena { return s.arena }

// Phase reports the collector's current activity.
func (s *State) Phase() GCPhase { return s.phase }

// OutOfMemory reports whether the sticky out-of-memory flag is set.
func (s *State) OutOfMemory() bool { return s.outOfMemory }

// Live returns the number of non-FREE slots across all pages.
func (s *State) Live() int { return s.heap.live }

// LiveAfterMark returns the live count recorded at the end of the most
// recent mark phase.
func (s *State) LiveAfterMark() int { return s.heap.liveAfterMark }
