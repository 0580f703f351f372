//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package alloc

import "syscall"

// Without a mapping primitive the blocks come from the Go heap.
func (m *Mmap) mapBlock(size int) ([]byte, error) {
	if size < 0 || size > MaxAlloc {
		return nil, syscall.ENOMEM
	}
	return make([]byte, size), nil
}

func (m *Mmap) unmapBlock([]byte) bool {
	return true
}
