//go:build linux || darwin || freebsd || netbsd || openbsd

package alloc

import (
	"golang.org/x/sys/unix"
)

func (m *Mmap) mapBlock(size int) ([]byte, error) {
	if size < 0 || size > MaxAlloc {
		return nil, unix.ENOMEM
	}
	if size == 0 {
		return []byte{}, nil
	}
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// unmapBlock reports whether b was a live mapping. Unknown and already
// unmapped blocks yield EINVAL, which is treated as a no-op.
func (m *Mmap) unmapBlock(b []byte) bool {
	return unix.Munmap(b[:cap(b)]) == nil
}
