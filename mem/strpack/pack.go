package strpack

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/joshuapare/dynmem/internal/buf"
	"github.com/joshuapare/dynmem/mem/alloc"
)

// SlotSize is the width of one offset slot in a packed block.
const SlotSize = 8

// Pack copies strs into one block allocated with a single c.Malloc.
//
// A nil strs packs to a block holding only the terminating slot. On allocation
// failure Pack returns nil and an error wrapping alloc.ErrNoMemory; the
// failure has already been reported on c's diagnostic channel.
func Pack(c *alloc.Checked, strs []string) (*Packed, error) {
	c = alloc.Or(c)
	for i, s := range strs {
		if strings.IndexByte(s, 0) >= 0 {
			return nil, fmt.Errorf("string %d: %w", i, ErrEmbeddedNUL)
		}
	}

	block, err := c.Malloc(PackedSize(strs))
	if err != nil {
		return nil, err
	}
	layout(block, strs)
	return &Packed{block: block, n: len(strs)}, nil
}

// PackEncoded transcodes every string with enc before packing, for consumers
// that expect a legacy code page (charmap.Windows1252 for ANSI process APIs).
// A nil enc packs the strings unchanged.
func PackEncoded(c *alloc.Checked, strs []string, enc encoding.Encoding) (*Packed, error) {
	if enc == nil {
		return Pack(c, strs)
	}
	encoded := make([]string, len(strs))
	e := enc.NewEncoder()
	for i, s := range strs {
		out, err := e.String(s)
		if err != nil {
			return nil, fmt.Errorf("encode string %d: %w", i, err)
		}
		encoded[i] = out
	}
	return Pack(c, encoded)
}

// PackedSize returns the block size Pack needs for strs, or -1 if it does not
// fit in an int.
func PackedSize(strs []string) int {
	size, ok := buf.SizeOf(len(strs)+1, SlotSize, 0)
	for i := 0; ok && i < len(strs); i++ {
		size, ok = buf.AddOverflowSafe(size, len(strs[i])+1)
	}
	if !ok {
		return -1
	}
	return size
}

// layout writes the slot table and string region of strs into block, which
// must be exactly PackedSize(strs) bytes. Every byte is written.
func layout(block []byte, strs []string) {
	off := (len(strs) + 1) * SlotSize
	for i, s := range strs {
		buf.PutU64LE(block, i*SlotSize, uint64(off))
		off += copy(block[off:], s)
		block[off] = 0
		off++
	}
	buf.PutU64LE(block, len(strs)*SlotSize, 0)
}
