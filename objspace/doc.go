// Package objspace implements the garbage-collected object heap for the emrt
// embedded language runtime.
//
// # Overview
//
// The package owns every heap-allocated runtime value (objects, classes,
// strings, arrays, hashes, ranges, procs, environments and fibers) on behalf
// of a single-threaded interpreter. Values live in fixed-size slots grouped
// into pages; a page is the unit of heap growth and reclamation.
//
// # Key Types
//
//   - State: the process-wide runtime state — heap, arena and roots
//   - Heap: the paged slot allocator, with a free-pages list for O(1) alloc
//   - Arena: the bounded stack of extra GC roots protecting fresh allocations
//   - RValue: a heap slot; tagged with a Kind and kind-specific payload
//
// # Collection Algorithm
//
// Collection is stop-the-world mark-and-sweep with two colors (white,
// black). mark.go walks the root set and paints reachable objects black;
// sweep.go then reclaims every slot left white, returning it to its page's
// free list, and repaints survivors white for the next cycle.
//
// # Non-core collaborators
//
// Instance-variable tables, method tables, hash tables and string buffers
// belong to the interpreter, not the collector. The collector traces and
// frees the tables only through the IVTable, MTable, HashTable and GVTable
// hook interfaces declared in hooks.go; an owned string buffer is released
// through the State's HostAllocator.
//
// # Related packages
//
//   - github.com/joshuapare/emrt/pkg/gc: host-language-facing facade
//   - github.com/joshuapare/emrt/internal/hostmem: process memory statistics
package objspace
