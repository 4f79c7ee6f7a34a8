package objspace

// MarkFunc is passed to a hook so it can recursively mark a child value it
// owns. It is always objspace's own Mark, exposed as a function value so
// hook implementations never need to import the concrete State.
type MarkFunc func(p *RValue)

// IVTable is the instance-variable table attached to objects, classes and
// data values. It is owned by the interpreter, not the collector: the
// collector only ever traces or frees it through this interface.
type IVTable interface {
	// MarkIV marks every value reachable from the table by calling mark
	// once per child.
	MarkIV(mark MarkFunc)

	// FreeIV releases the table's own storage. It must not mark or free
	// children; those were already swept independently.
	FreeIV()
}

// MTable is a class or module's method table.
type MTable interface {
	// MarkMT marks every Proc (or other heap value) reachable from the
	// table's method bodies.
	MarkMT(mark MarkFunc)

	// FreeMT releases the table's own storage.
	FreeMT()
}

// HashTable is the key/value table backing a KindHash object.
type HashTable interface {
	// MarkHash marks every key and value stored in the table.
	MarkHash(mark MarkFunc)

	// FreeHash releases the table's own storage.
	FreeHash()
}

// GVTable is the interpreter's global variable table, the first entry in
// the root set.
type GVTable interface {
	// MarkGV marks every global variable's value.
	MarkGV(mark MarkFunc)
}
