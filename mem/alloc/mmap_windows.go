//go:build windows

package alloc

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

func (m *Mmap) mapBlock(size int) ([]byte, error) {
	if size < 0 || size > MaxAlloc {
		return nil, syscall.ENOMEM
	}
	if size == 0 {
		return []byte{}, nil
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	// VirtualAlloc memory is never moved, so the address stays valid.
	return unsafe.Slice((*byte)(unsafe.Add(nil, addr)), size), nil
}

// unmapBlock releases the whole reservation; b must start at its base.
func (m *Mmap) unmapBlock(b []byte) bool {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE) == nil
}
