package alloc

import (
	"syscall"

	"github.com/joshuapare/dynmem/internal/buf"
)

// Heap allocates from the Go runtime.
//
// Limit caps the bytes in use at any time, typed reservations included; zero
// means unlimited. Requests that would exceed it, or whose size is negative,
// overflows or is above MaxAlloc, fail with ENOMEM.
type Heap struct {
	Limit int

	stats Stats
}

// NewHeap returns a Heap with the given byte budget (0 = unlimited).
func NewHeap(limit int) *Heap {
	return &Heap{Limit: limit}
}

// Stats returns a copy of the allocation counters.
func (h *Heap) Stats() Stats {
	return h.stats
}

func (h *Heap) admit(size, released int) bool {
	if size < 0 || size > MaxAlloc {
		return false
	}
	if h.Limit <= 0 {
		return true
	}
	next, ok := buf.AddOverflowSafe(h.stats.InUse-released, size)
	return ok && next <= h.Limit
}

// Malloc returns a block of size bytes.
func (h *Heap) Malloc(size int) ([]byte, error) {
	if !h.admit(size, 0) {
		return nil, syscall.ENOMEM
	}
	b := make([]byte, size)
	h.stats.Mallocs++
	h.stats.grew(cap(b))
	return b, nil
}

// Calloc returns a zeroed block of n*size bytes.
func (h *Heap) Calloc(n, size int) ([]byte, error) {
	total, ok := buf.MulOverflowSafe(n, size)
	if !ok {
		return nil, syscall.ENOMEM
	}
	return h.Malloc(total)
}

// Realloc resizes b to size bytes, preserving the common prefix. Shrinking,
// or growing within cap(b), reuses the block.
func (h *Heap) Realloc(b []byte, size int) ([]byte, error) {
	if b == nil {
		return h.Malloc(size)
	}
	if size >= 0 && size <= cap(b) {
		h.stats.Reallocs++
		return b[:size], nil
	}
	if !h.admit(size, cap(b)) {
		return nil, syscall.ENOMEM
	}
	nb := make([]byte, size)
	copy(nb, b)
	h.stats.Reallocs++
	h.stats.grew(cap(nb) - cap(b))
	return nb, nil
}

// Free releases b's accounting; the memory itself goes back to the GC.
func (h *Heap) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	h.stats.Frees++
	h.stats.InUse -= cap(b)
}

// Reserve charges a typed allocation of size bytes to InUse, refusing it when
// Limit would be exceeded.
func (h *Heap) Reserve(size int) error {
	if !h.admit(size, 0) {
		return syscall.ENOMEM
	}
	h.stats.grew(size)
	return nil
}

// Unreserve credits back bytes charged by Reserve.
func (h *Heap) Unreserve(size int) {
	h.stats.InUse -= size
}
