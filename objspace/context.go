package objspace

// FiberStatus is the lifecycle state of the execution context backing a
// Fiber. It only needs enough resolution for the collector to decide
// whether a suspended resumer is still worth tracing.
type FiberStatus uint8

const (
	FiberCreated FiberStatus = iota
	FiberRunning
	FiberResumed
	FiberSuspended
	FiberTerminated
)

// Resumable reports whether a fiber in this status can still be resumed
// into, and therefore whether its saved Context is still part of the live
// call graph.
func (s FiberStatus) Resumable() bool { return s != FiberTerminated }

// CallInfo is one frame of a call stack: the register window size used for
// the value-stack scan, the ensure-stack depth at entry, and the three
// heap references every active call keeps alive on its own.
type CallInfo struct {
	// NRegs bounds the portion of the context's value stack this frame's
	// registers occupy, used to clamp the live scan range.
	NRegs int

	// EIdx is the ensure-stack depth recorded when this frame began.
	EIdx int

	Env         *RValue
	Proc        *RValue
	TargetClass *RValue
}

// Context is a saved (or currently running) execution context: the value
// stack, the ensure-block stack, and the chain of call frames. A Fiber's
// payload is a Context; the interpreter's single root execution also has
// one (Roots.RootContext).
type Context struct {
	// Stack is the value stack's backing storage. StackLen is the number
	// of slots actually in use; NRegs of the top frame further bounds the
	// portion that needs to be marked on this cycle.
	Stack    []Value
	StackLen int

	// EnsureStack holds ensure-block procs pushed by protected calls.
	EnsureStack []Value

	// Frames holds every active call-info frame, oldest first; Frames[0]
	// is cibase and Frames[len-1] is the current ci.
	Frames []CallInfo

	// FiberValue is the Fiber RValue this context is the payload of, or
	// nil for the interpreter's root context.
	FiberValue *RValue

	// Prev is the context that will run again when this fiber yields or
	// terminates (nil for the root context and for never-resumed fibers).
	Prev *Context

	Status FiberStatus
}

// topFrame returns the current (innermost) call-info frame, or nil if the
// context has no active calls.
func (c *Context) topFrame() *CallInfo {
	if len(c.Frames) == 0 {
		return nil
	}
	return &c.Frames[len(c.Frames)-1]
}
