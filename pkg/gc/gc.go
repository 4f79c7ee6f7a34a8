package gc

import "github.com/joshuapare/emrt/objspace"

// Collector wraps an objspace.State with the entry points an interpreter
// actually calls day to day.
type Collector struct {
	state *objspace.State
}

// New creates a Collector with an initialized heap and arena.
//
// Example:
//
//	col := gc.New(gc.Options{})
//	defer col.Close()
func New(opts Options) *Collector {
	return &Collector{state: objspace.NewState(objspace.Options{
		ArenaSize: opts.ArenaSize,
		Allocator: opts.Allocator,
		IsDead:    opts.IsDead,
	})}
}

// Options configures a new Collector. The zero value selects the default
// arena size and the built-in host allocator.
type Options struct {
	ArenaSize int
	Allocator objspace.HostAllocator
	IsDead    func(obj *objspace.RValue) bool
}

// Close finalizes every remaining live object. Call once at interpreter
// shutdown.
func (c *Collector) Close() { c.state.FreeHeap() }

// Collect triggers a full collection unless the collector is disabled.
func (c *Collector) Collect() { c.state.Collect() }

// Enable re-enables collection and reports whether it was previously
// disabled.
func (c *Collector) Enable() bool { return c.state.Enable() }

// Disable suspends collection and reports whether it was already disabled.
func (c *Collector) Disable() bool { return c.state.Disable() }

// Alloc allocates and zero-initializes a heap slot, protecting it in the
// arena so it survives any further allocation the caller performs before
// storing it somewhere rooted.
//
// Example:
//
//	str := col.Alloc(objspace.KindString, stringClass)
//	str.Data = &objspace.StringData{Buf: []byte("hi")}
func (c *Collector) Alloc(kind objspace.Kind, class *objspace.RValue) *objspace.RValue {
	return c.state.ObjAlloc(kind, class)
}

// Protect adds ptr to the arena directly, for values not produced by Alloc.
func (c *Collector) Protect(ptr *objspace.RValue) error {
	return c.state.Arena().Protect(ptr)
}

// SaveArena and RestoreArena bracket a bounded run of allocations the way a
// scoped guard would in a language with first-class scope guards.
//
// Example:
//
//	mark := col.SaveArena()
//	defer col.RestoreArena(mark)
func (c *Collector) SaveArena() int { return c.state.Arena().Save() }

// RestoreArena drops every arena protection made since mark was returned by
// SaveArena.
func (c *Collector) RestoreArena(mark int) { c.state.Arena().Restore(mark) }

// Roots exposes the root set for the interpreter to populate at startup.
func (c *Collector) Roots() *objspace.Roots { return &c.state.Roots }

// EachObject walks every slot in every page exactly once, including FREE
// slots. Must not be called mid-collection.
func (c *Collector) EachObject(f objspace.EachObjectFunc) { c.state.Heap().EachObject(f) }

// Live reports the number of non-FREE slots across all pages.
func (c *Collector) Live() int { return c.state.Live() }

// State exposes the underlying objspace.State for callers that need
// lower-level access (emrtctl, tests, verify helpers).
func (c *Collector) State() *objspace.State { return c.state }
