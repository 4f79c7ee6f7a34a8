package objspace

// RValue is a heap slot: a fixed header (Kind, Class, flags) plus a
// kind-specific payload. Slots never move; a *RValue is a stable identity
// for as long as the slot is allocated. A slot whose Kind is KindFree
// repurposes the payload to thread the page's free list (see next).
type RValue struct {
	Kind  Kind
	Class *RValue
	flags flags

	// Data holds the kind-specific payload (one of *ObjectData,
	// *ClassData, *IClassData, *StringData, *ArrayData, *HashData, *RangeData,
	// *ProcData, *EnvData, *FiberData, *DataData). It is nil for
	// immediate kinds, KindFree, and for a freshly zeroed slot.
	Data any

	// next links a free slot to the next free slot in the same page's
	// free list. Meaningful only while Kind == KindFree.
	next *RValue
}

func (r *RValue) isWhite() bool { return r.flags.isWhite() }
func (r *RValue) isBlack() bool { return r.flags.isBlack() }
func (r *RValue) paintWhite()   { r.flags = r.flags.paintWhite() }
func (r *RValue) paintBlack()   { r.flags = r.flags.paintBlack() }

// zero resets a slot to its post-allocation-but-unset state: FREE kind,
// no class, no flags, no payload. Callers are responsible for writing the
// final kind and class afterward (see State.ObjAlloc).
func (r *RValue) zero() {
	r.Kind = KindFree
	r.Class = nil
	r.flags = 0
	r.Data = nil
	r.next = nil
}

// ObjectData is the payload for KindObject: an instance variable table
// supplied and owned by the interpreter. KindData uses DataData instead.
type ObjectData struct {
	IV IVTable
}

// ClassData is the payload for KindClass, KindModule and KindSClass.
type ClassData struct {
	MT    MTable
	IV    IVTable
	Super *RValue
}

// IClassData is the payload for KindIClass: a module inclusion has no
// instance variables or method table of its own, only a super link.
type IClassData struct {
	Super *RValue
}

// StringData is the payload for KindString.
type StringData struct {
	Buf []byte
}

// sharedArrayBuf is the backing store an Array may share with another Array
// (e.g. after a slice), reference-counted so the last owner frees it.
type sharedArrayBuf struct {
	elems    []Value
	refcount int
}

// ArrayData is the payload for KindArray.
type ArrayData struct {
	elems  []Value
	shared *sharedArrayBuf
}

// Len returns the number of elements currently stored.
func (a *ArrayData) Len() int { return len(a.storage()) }

// At returns the element at index i.
func (a *ArrayData) At(i int) Value { return a.storage()[i] }

func (a *ArrayData) storage() []Value {
	if a.shared != nil {
		return a.shared.elems
	}
	return a.elems
}

// Append adds v as a new element, growing the owned (non-shared) buffer.
func (a *ArrayData) Append(v Value) {
	if a.shared != nil {
		a.elems = append(append([]Value(nil), a.shared.elems...), v)
		a.shared.refcount--
		a.shared = nil
		return
	}
	a.elems = append(a.elems, v)
}

// HashData is the payload for KindHash: the key/value table is supplied and
// owned by the interpreter.
type HashData struct {
	IV    IVTable
	Table HashTable
}

// rangeEdges is the boxed (beg, end) pair of a Range. It is a separate
// allocation from RangeData so a Range over two immediates can skip it
// entirely (FlagRangeAllocated clear).
type rangeEdges struct {
	Beg, End Value
}

// RangeData is the payload for KindRange.
type RangeData struct {
	edges *rangeEdges
}

// NewRangeData builds range payload covering [beg, end].
func NewRangeData(beg, end Value) *RangeData {
	return &RangeData{edges: &rangeEdges{Beg: beg, End: end}}
}

// Beg returns the lower endpoint.
func (r *RangeData) Beg() Value { return r.edges.Beg }

// End returns the upper endpoint.
func (r *RangeData) End() Value { return r.edges.End }

// ProcData is the payload for KindProc.
type ProcData struct {
	Env         *RValue
	TargetClass *RValue
}

// EnvData is the payload for KindEnv. Values is only authoritative when the
// Env is top-level (FlagEnvTopLevel set); otherwise the values live on a
// call frame's stack segment and are reached through that frame's Context.
type EnvData struct {
	Values []Value
}

// FiberData is the payload for KindFiber.
type FiberData struct {
	Ctx *Context
}

// DataFreeFunc releases a piece of opaque foreign data owned by a KindData
// object. It is supplied by the interpreter binding that created the value.
type DataFreeFunc func(ptr any)

// DataData is the payload for KindData: an opaque pointer with an optional
// per-object finalizer, plus the instance variable table every object
// carries.
type DataData struct {
	Ptr  any
	Free DataFreeFunc
	IV   IVTable
}

// Value is an interpreter-visible value: either one of the five immediate
// kinds encoded inline, or a pointer to a heap slot. Immediate values are
// never heap pointers and must be filtered out before being treated as one
// (see Arena.ProtectValue and State.MarkValue).
type Value struct {
	kind Kind
	ptr  *RValue
	ival int64
	flo  float64
	sym  uint32
}

// Kind reports the value's runtime kind.
func (v Value) Kind() Kind { return v.kind }

// IsImmediate reports whether v is encoded inline rather than heap-backed.
func (v Value) IsImmediate() bool { return v.kind.IsImmediate() }

// Ptr returns the heap slot backing v. It is nil for immediate values.
func (v Value) Ptr() *RValue { return v.ptr }

// Fixnum returns the integer payload of a KindFixnum value.
func (v Value) Fixnum() int64 { return v.ival }

// Symbol returns the symbol id payload of a KindSymbol value.
func (v Value) Symbol() uint32 { return v.sym }

// Float returns the float payload of a KindFloat value. Floats are
// immediate in this build (word-boxing is not implemented), so this never
// involves a heap slot.
func (v Value) Float() float64 { return v.flo }

// FalseValue returns the immediate false value.
func FalseValue() Value { return Value{kind: KindFalse} }

// TrueValue returns the immediate true value.
func TrueValue() Value { return Value{kind: KindTrue} }

// FixnumValue returns an immediate integer value.
func FixnumValue(n int64) Value { return Value{kind: KindFixnum, ival: n} }

// SymbolValue returns an immediate symbol value.
func SymbolValue(id uint32) Value { return Value{kind: KindSymbol, sym: id} }

// FloatValue returns an immediate float value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, flo: f} }

// ObjValue wraps a heap slot pointer as a Value. p must not be nil.
func ObjValue(p *RValue) Value { return Value{kind: p.Kind, ptr: p} }
