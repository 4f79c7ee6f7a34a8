package objspace

import "testing"

func Test_Mark_NilIsNoop(t *testing.T) {
	s := newTestState()
	s.Mark(nil) // must not panic
}

func Test_Mark_AlreadyBlackStopsRecursion(t *testing.T) {
	s := newTestState()
	a := &RValue{Kind: KindObject}
	b := &RValue{Kind: KindObject}
	a.Data = &ObjectData{IV: &fakeIVTable{values: []Value{ObjValue(b)}}}
	b.Data = &ObjectData{IV: &fakeIVTable{values: []Value{ObjValue(a)}}}

	s.Mark(a)
	if !a.isBlack() || !b.isBlack() {
		t.Fatal("expected a cyclic pair to both end up black without looping forever")
	}
}

func Test_Mark_Array(t *testing.T) {
	s := newTestState()
	child := &RValue{Kind: KindString, Data: &StringData{}}
	arr := &RValue{Kind: KindArray, Data: &ArrayData{elems: []Value{ObjValue(child), FixnumValue(7)}}}

	s.Mark(arr)
	if !arr.isBlack() || !child.isBlack() {
		t.Fatal("expected array and its element to be black")
	}
}

func Test_Mark_EnvSkipsNonTopLevel(t *testing.T) {
	s := newTestState()
	child := &RValue{Kind: KindString, Data: &StringData{}}
	env := &RValue{Kind: KindEnv, Data: &EnvData{Values: []Value{ObjValue(child)}}}
	// FlagEnvTopLevel not set.

	s.Mark(env)
	if !env.isBlack() {
		t.Fatal("expected the env itself to be marked")
	}
	if child.isBlack() {
		t.Fatal("a non-top-level env must not mark its values directly")
	}
}

func Test_Mark_EnvTopLevelMarksValues(t *testing.T) {
	s := newTestState()
	child := &RValue{Kind: KindString, Data: &StringData{}}
	env := &RValue{Kind: KindEnv, flags: FlagEnvTopLevel, Data: &EnvData{Values: []Value{ObjValue(child)}}}

	s.Mark(env)
	if !child.isBlack() {
		t.Fatal("expected a top-level env to mark its values")
	}
}

func Test_Mark_ClassChain(t *testing.T) {
	s := newTestState()
	super := &RValue{Kind: KindClass, Data: &ClassData{}}
	iv := &fakeIVTable{values: []Value{}}
	mt := &fakeMTable{}
	cls := &RValue{Kind: KindClass, Data: &ClassData{Super: super, IV: iv, MT: mt}}

	s.Mark(cls)
	if !cls.isBlack() || !super.isBlack() {
		t.Fatal("expected class and its superclass to be black")
	}
}

func Test_MarkContext_ClampsToTopFrameRegisters(t *testing.T) {
	s := newTestState()
	live := &RValue{Kind: KindString, Data: &StringData{}}
	dead := &RValue{Kind: KindString, Data: &StringData{}}

	c := &Context{
		Stack:    []Value{ObjValue(live), ObjValue(dead)},
		StackLen: 2,
		Frames:   []CallInfo{{NRegs: 1}},
	}

	s.markContext(c)
	if !live.isBlack() {
		t.Fatal("expected the register-window slot to be marked")
	}
	if dead.isBlack() {
		t.Fatal("expected the slot beyond NRegs to be left unmarked")
	}
}

func Test_MarkContext_EnsureStackClampedToTopFrameIndex(t *testing.T) {
	s := newTestState()
	live := &RValue{Kind: KindString, Data: &StringData{}}
	dead := &RValue{Kind: KindString, Data: &StringData{}}

	c := &Context{
		EnsureStack: []Value{ObjValue(live), ObjValue(dead)},
		Frames:      []CallInfo{{EIdx: 1}},
	}

	s.markContext(c)
	if !live.isBlack() {
		t.Fatal("expected the ensure slot below EIdx to be marked")
	}
	if dead.isBlack() {
		t.Fatal("expected the ensure slot at/above EIdx to be left unmarked")
	}
}

func Test_MarkContext_FollowsResumableFiberChain(t *testing.T) {
	s := newTestState()
	fiberObj := &RValue{Kind: KindFiber}

	prev := &Context{FiberValue: fiberObj, Status: FiberSuspended}
	cur := &Context{Prev: prev}

	s.markContext(cur)
	if !fiberObj.isBlack() {
		t.Fatal("expected a resumable predecessor fiber to be marked")
	}
}

func Test_MarkContext_SkipsTerminatedFiberChain(t *testing.T) {
	s := newTestState()
	fiberObj := &RValue{Kind: KindFiber}

	prev := &Context{FiberValue: fiberObj, Status: FiberTerminated}
	cur := &Context{Prev: prev}

	s.markContext(cur)
	if fiberObj.isBlack() {
		t.Fatal("expected a terminated predecessor fiber to be left unmarked")
	}
}

func Test_MarkRoots_EnumeratesEveryRootKind(t *testing.T) {
	s := newTestState()
	gv := &RValue{Kind: KindObject}
	objectClass := &RValue{Kind: KindClass}
	topSelf := &RValue{Kind: KindObject}
	exc := &RValue{Kind: KindObject}
	poolVal := &RValue{Kind: KindString, Data: &StringData{}}
	rootCtx := &Context{Stack: []Value{}, Frames: []CallInfo{}}

	s.Roots = Roots{
		Globals:     &fakeGVTable{globals: []Value{ObjValue(gv)}},
		ObjectClass: objectClass,
		TopSelf:     topSelf,
		Exc:         exc,
		RootContext: rootCtx,
		Ireps:       []*Irep{{Pool: []Value{ObjValue(poolVal)}}},
	}

	s.markRoots()

	for name, obj := range map[string]*RValue{
		"global":       gv,
		"object_class": objectClass,
		"top_self":     topSelf,
		"exc":          exc,
		"pool_value":   poolVal,
	} {
		if !obj.isBlack() {
			t.Fatalf("expected root %s to be marked", name)
		}
	}
}
