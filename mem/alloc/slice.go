package alloc

import (
	"syscall"
	"unsafe"

	"github.com/joshuapare/dynmem/internal/buf"
)

// MakeSlice returns a zeroed []T of length n, metered by c's allocator.
func MakeSlice[T any](c *Checked, n int) ([]T, error) {
	if err := c.reserve("calloc", typedSize[T](n), 0); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// GrowSlice returns a []T of length n holding s's elements, with the tail
// zeroed. Shrinking reslices s without allocating.
func GrowSlice[T any](c *Checked, s []T, n int) ([]T, error) {
	if n < 0 {
		return nil, c.fail("realloc", 0, syscall.ENOMEM)
	}
	if n <= len(s) {
		return s[:n], nil
	}
	if err := c.reserve("realloc", typedSize[T](n), typedSize[T](len(s))); err != nil {
		return nil, err
	}
	out := make([]T, n)
	copy(out, s)
	return out, nil
}

// FreeSlice returns the bytes charged for s to c's allocator. s must be a
// slice obtained from MakeSlice or GrowSlice at its full length.
func FreeSlice[T any](c *Checked, s []T) {
	if s == nil {
		return
	}
	c.unreserve(typedSize[T](len(s)))
}

// typedSize returns n*sizeof(T), or -1 on overflow.
func typedSize[T any](n int) int {
	var zero T
	size, ok := buf.MulOverflowSafe(n, int(unsafe.Sizeof(zero)))
	if !ok {
		return -1
	}
	return size
}
