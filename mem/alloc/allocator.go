package alloc

import "strconv"

// MaxAlloc is the largest single request any backend attempts. Anything above
// it fails with ENOMEM rather than reaching make, which panics on lengths the
// runtime cannot address.
const MaxAlloc = 1<<47*(strconv.IntSize/64) + (1<<31-1)*(1-strconv.IntSize/64)

// Allocator hands out raw byte blocks.
//
// Malloc and Realloc make no promise about the contents of new bytes; Calloc
// returns zeroed memory. Realloc with a nil block behaves like Malloc. Errors
// should carry a syscall.Errno when the platform provides one.
type Allocator interface {
	Malloc(size int) ([]byte, error)
	Calloc(n, size int) ([]byte, error)
	Realloc(b []byte, size int) ([]byte, error)
	Free(b []byte)
}

// Reserver is implemented by allocators that meter memory they do not hand
// out themselves. MakeSlice and GrowSlice call Reserve with the bytes a typed
// allocation adds; a non-nil error refuses the request. FreeSlice hands the
// bytes back through Unreserve.
type Reserver interface {
	Reserve(size int) error
	Unreserve(size int)
}

// Stats holds allocation counters for a backend.
type Stats struct {
	Mallocs  uint64 // Malloc and Calloc calls that succeeded
	Reallocs uint64 // Realloc calls that succeeded
	Frees    uint64 // Free calls on non-empty blocks
	InUse    int    // bytes currently handed out
	Peak     int    // highest InUse observed
}

func (s *Stats) grew(delta int) {
	s.InUse += delta
	if s.InUse > s.Peak {
		s.Peak = s.InUse
	}
}
