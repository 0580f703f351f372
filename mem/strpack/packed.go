package strpack

import (
	"fmt"
	"math"

	"github.com/joshuapare/dynmem/internal/buf"
	"github.com/joshuapare/dynmem/mem/alloc"
)

// Packed is a read-only view of a packed block.
type Packed struct {
	block []byte
	n     int
}

// Open validates block as a packed block and returns a view of it. Every
// slot before the terminator must point past the slot table, inside block,
// at a NUL-terminated string.
func Open(block []byte) (*Packed, error) {
	var n int
	for ; ; n++ {
		end, err := buf.CheckListBounds(len(block), 0, n+1, SlotSize)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %d: %v", ErrCorrupt, n, err)
		}
		if buf.U64LE(block[end-SlotSize:end]) == 0 {
			break
		}
	}

	table := (n + 1) * SlotSize
	for i := range n {
		off := buf.U64LE(block[i*SlotSize:])
		if off > math.MaxInt || int(off) < table || int(off) >= len(block) {
			return nil, fmt.Errorf("%w: slot %d: offset %d outside string region [%d,%d)",
				ErrCorrupt, i, off, table, len(block))
		}
		if Len(block[off:]) == len(block)-int(off) {
			return nil, fmt.Errorf("%w: slot %d: string at %d not terminated", ErrCorrupt, i, off)
		}
	}
	return &Packed{block: block, n: n}, nil
}

// Len returns the number of strings.
func (p *Packed) Len() int {
	if p == nil {
		return 0
	}
	return p.n
}

// At returns string i. It panics if i is out of range.
func (p *Packed) At(i int) string {
	return String(p.block[p.offset(i):])
}

// Strings returns a copy of every string, in order.
func (p *Packed) Strings() []string {
	out := make([]string, p.Len())
	for i := range out {
		out[i] = p.At(i)
	}
	return out
}

// Offsets returns the slot table, terminator included.
func (p *Packed) Offsets() []int {
	out := make([]int, p.Len()+1)
	for i := range p.Len() {
		out[i] = p.offset(i)
	}
	return out
}

// Bytes returns the underlying block.
func (p *Packed) Bytes() []byte {
	if p == nil {
		return nil
	}
	return p.block
}

// Size returns the block size in bytes.
func (p *Packed) Size() int {
	return len(p.Bytes())
}

// Free releases the block through c and empties p. Freeing twice, or freeing
// a nil Packed, does nothing.
func (p *Packed) Free(c *alloc.Checked) {
	if p == nil || p.block == nil {
		return
	}
	alloc.Or(c).Free(p.block)
	p.block = nil
	p.n = 0
}

func (p *Packed) offset(i int) int {
	return int(buf.U64LE(p.block[i*SlotSize:]))
}
