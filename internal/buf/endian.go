// Package buf contains size arithmetic and fixed-width slot codecs shared by
// the allocation-facing packages.
package buf

import "encoding/binary"

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// PutU64LE writes v at b[off:off+8]. It reports false instead of panicking
// when the slot does not fit.
func PutU64LE(b []byte, off int, v uint64) bool {
	dst, ok := Slice(b, off, 8)
	if !ok {
		return false
	}
	binary.LittleEndian.PutUint64(dst, v)
	return true
}

// Zero clears b.
func Zero(b []byte) {
	clear(b)
}
