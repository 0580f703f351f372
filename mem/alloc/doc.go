// Package alloc provides checked memory allocation for the dynmem containers.
//
// # Overview
//
// An Allocator hands out raw byte blocks. Checked wraps any Allocator and turns
// every failure into two signals: a nil result with an error wrapping
// ErrNoMemory, and exactly one diag.Diagnostic naming the failed operation and
// the platform error number.
//
//	c := alloc.Default()
//	b, err := c.Malloc(64)
//	if err != nil {
//	    return err // the diagnostic has already been reported
//	}
//	defer c.Free(b)
//
// # Backends
//
// Heap: Go runtime memory with an optional byte budget (Limit). Free only
// updates accounting; the garbage collector reclaims the block.
//
// Mmap: anonymous private mappings (mmap on unix, VirtualAlloc on Windows).
// Blocks live outside the Go heap, so they must only ever hold plain bytes,
// never Go pointers, and must be released with Free.
//
// Faulty: wraps another allocator and fails selected calls with ENOMEM. Tests
// use it to drive every failure path.
//
// # Typed Memory
//
// Containers of Go values (pointers, generic elements) must live on the Go
// heap. MakeSlice and GrowSlice allocate those with make, but first ask the
// underlying allocator for permission through the optional Reserver interface,
// so budgets and fault injection apply to typed containers too. FreeSlice
// returns the charge when a container drops its storage.
//
// No backend attempts a single request above MaxAlloc, whatever its budget.
//
// # Resize Semantics
//
// A failed Realloc never partially succeeds. The caller must treat the block it
// passed in as no longer usable once a failure has been reported.
//
// # Thread Safety
//
// Allocators and Checked are not safe for concurrent use. Callers must
// serialize access to a given instance.
package alloc
