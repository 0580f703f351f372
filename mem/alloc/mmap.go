package alloc

import (
	"syscall"

	"github.com/joshuapare/dynmem/internal/buf"
)

// Mmap allocates anonymous private mappings outside the Go heap.
//
// Blocks must hold plain bytes only and must be released with Free, passing a
// slice that starts at the block's first byte. On platforms without a mapping
// primitive Mmap falls back to Heap.
type Mmap struct {
	stats Stats
}

// NewMmap returns an Mmap allocator.
func NewMmap() *Mmap {
	return &Mmap{}
}

// Stats returns a copy of the allocation counters.
func (m *Mmap) Stats() Stats {
	return m.stats
}

// Calloc returns n*size zeroed bytes; fresh anonymous mappings are always zeroed.
func (m *Mmap) Calloc(n, size int) ([]byte, error) {
	total, ok := buf.MulOverflowSafe(n, size)
	if !ok {
		return nil, syscall.ENOMEM
	}
	return m.Malloc(total)
}

// Realloc resizes b, moving it to a new mapping when it outgrows cap(b).
func (m *Mmap) Realloc(b []byte, size int) ([]byte, error) {
	if b == nil {
		return m.Malloc(size)
	}
	if size >= 0 && size <= cap(b) {
		m.stats.Reallocs++
		return b[:size], nil
	}
	nb, err := m.mapBlock(size)
	if err != nil {
		return nil, err
	}
	copy(nb, b)
	m.unmapBlock(b)
	m.stats.Reallocs++
	m.stats.grew(cap(nb) - cap(b))
	return nb, nil
}

// Malloc maps a new block of size bytes.
func (m *Mmap) Malloc(size int) ([]byte, error) {
	b, err := m.mapBlock(size)
	if err != nil {
		return nil, err
	}
	m.stats.Mallocs++
	m.stats.grew(cap(b))
	return b, nil
}

// Free unmaps b. Empty blocks and repeated frees are ignored.
func (m *Mmap) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	if m.unmapBlock(b) {
		m.stats.Frees++
		m.stats.InUse -= cap(b)
	}
}
