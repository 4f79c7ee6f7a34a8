package objspace

// Irep is a compiled instruction sequence's representation, as far as the
// collector is concerned: nothing but its constant pool, which is a root.
type Irep struct {
	Pool []Value
}

// Roots holds every part of the root set that is not the arena: the
// globals table, the class hierarchy root, the top-level receiver, the
// current exception (if any), the interpreter's own execution context, and
// the constant pool of every currently loaded instruction sequence.
type Roots struct {
	Globals     GVTable
	ObjectClass *RValue
	TopSelf     *RValue
	Exc         *RValue
	RootContext *Context
	Ireps       []*Irep
}
