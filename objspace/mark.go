package objspace

// markRoots enumerates the root set in a fixed order: globals, the arena,
// the class hierarchy root, the top-level receiver, the current exception,
// the interpreter's own execution context, and finally the constant pool
// of every loaded instruction sequence.
func (s *State) markRoots() {
	if s.Roots.Globals != nil {
		s.Roots.Globals.MarkGV(s.Mark)
	}

	for i := 0; i < s.arena.Len(); i++ {
		s.Mark(s.arena.At(i))
	}

	s.Mark(s.Roots.ObjectClass)
	s.Mark(s.Roots.TopSelf)
	s.Mark(s.Roots.Exc)

	if s.Roots.RootContext != nil {
		s.markContext(s.Roots.RootContext)
	}

	for _, irep := range s.Roots.Ireps {
		if irep == nil {
			continue
		}
		for _, v := range irep.Pool {
			s.MarkValue(v)
		}
	}
}

// Mark paints p and everything reachable from it black. It is exported so
// hook implementations (IVTable.MarkIV and friends) can trace their own
// children by calling it directly.
//
// Recursion depth tracks the reachable-object graph's depth, not its size;
// cycles terminate immediately via the already-black check.
func (s *State) Mark(p *RValue) {
	if p == nil || p.isBlack() {
		return
	}
	p.paintBlack()

	s.Mark(p.Class)

	if p.Data == nil {
		// A freshly allocated slot whose payload was never set has no children.
		return
	}

	switch p.Kind {
	case KindIClass:
		d := p.Data.(*IClassData)
		s.Mark(d.Super)

	case KindClass, KindModule, KindSClass:
		d := p.Data.(*ClassData)
		if d.MT != nil {
			d.MT.MarkMT(s.Mark)
		}
		if d.IV != nil {
			d.IV.MarkIV(s.Mark)
		}
		s.Mark(d.Super)

	case KindObject:
		d := p.Data.(*ObjectData)
		if d.IV != nil {
			d.IV.MarkIV(s.Mark)
		}

	case KindData:
		d := p.Data.(*DataData)
		if d.IV != nil {
			d.IV.MarkIV(s.Mark)
		}

	case KindProc:
		d := p.Data.(*ProcData)
		s.Mark(d.Env)
		s.Mark(d.TargetClass)

	case KindEnv:
		d := p.Data.(*EnvData)
		if p.flags.has(FlagEnvTopLevel) {
			for _, v := range d.Values {
				s.MarkValue(v)
			}
		}
		// Non-top-level envs are reached through the owning call frame's
		// Context, which is scanned separately by markContext.

	case KindFiber:
		d := p.Data.(*FiberData)
		if d.Ctx != nil {
			s.markContext(d.Ctx)
		}

	case KindArray:
		d := p.Data.(*ArrayData)
		for _, v := range d.storage() {
			s.MarkValue(v)
		}

	case KindHash:
		d := p.Data.(*HashData)
		if d.IV != nil {
			d.IV.MarkIV(s.Mark)
		}
		if d.Table != nil {
			d.Table.MarkHash(s.Mark)
		}

	case KindRange:
		d := p.Data.(*RangeData)
		if d.edges != nil {
			s.MarkValue(d.edges.Beg)
			s.MarkValue(d.edges.End)
		}

	case KindString:
		// No children.

	default:
		// Immediate kinds, FREE and FLOAT carry no children.
	}
}

// MarkValue marks v's underlying slot, unless v is an immediate value that
// does not refer to one.
func (s *State) MarkValue(v Value) {
	if v.IsImmediate() {
		return
	}
	s.Mark(v.Ptr())
}

// markContext marks a saved or running execution context: the live portion
// of its value stack, its ensure stack up to the current frame's recorded
// depth, every call frame's env/proc/target-class triple, and — if the
// context that will run after this one belongs to a still-resumable fiber
// — that fiber object too.
func (s *State) markContext(c *Context) {
	top := c.topFrame()

	stackEnd := c.StackLen
	if top != nil && top.NRegs < stackEnd {
		stackEnd = top.NRegs
	}
	if stackEnd > len(c.Stack) {
		stackEnd = len(c.Stack)
	}
	for i := 0; i < stackEnd; i++ {
		s.MarkValue(c.Stack[i])
	}

	ensureEnd := 0
	if top != nil {
		ensureEnd = top.EIdx
	}
	if ensureEnd > len(c.EnsureStack) {
		ensureEnd = len(c.EnsureStack)
	}
	for i := 0; i < ensureEnd; i++ {
		s.MarkValue(c.EnsureStack[i])
	}

	for i := range c.Frames {
		fr := &c.Frames[i]
		s.Mark(fr.Env)
		s.Mark(fr.Proc)
		s.Mark(fr.TargetClass)
	}

	if c.Prev != nil && c.Prev.FiberValue != nil && c.Prev.Status.Resumable() {
		s.Mark(c.Prev.FiberValue)
	}
}
