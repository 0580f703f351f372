package array

import (
	"fmt"

	"github.com/joshuapare/dynmem/internal/buf"
	"github.com/joshuapare/dynmem/mem/alloc"
)

// AppendItem writes item at element index of array, where every element is
// stride bytes and *capacity is the array's size in elements.
//
// A nil array is created with calloc, sized to max(*capacity, index+1). An
// index at or beyond *capacity grows the array with realloc (see NextCapacity)
// and zero-fills exactly the new tail. A nil item writes a zeroed element.
//
// The returned slice may have moved and must replace the caller's handle. On
// allocation failure it returns nil, an error wrapping alloc.ErrNoMemory, and
// leaves *capacity untouched; the caller must not reuse array afterwards.
func AppendItem(c *alloc.Checked, array []byte, index int, capacity *int, item []byte, stride int) ([]byte, error) {
	c = alloc.Or(c)
	if err := checkArgs(array, index, capacity, item, stride); err != nil {
		return nil, err
	}

	if array == nil {
		n := initialCapacity(*capacity, index)
		created, err := c.Calloc(n, stride)
		if err != nil {
			return nil, err
		}
		array = created
		*capacity = n
	} else if index >= *capacity {
		prev := *capacity
		n := NextCapacity(prev, index)
		grown, err := c.ReallocArray(array, n, stride)
		if err != nil {
			return nil, err
		}
		buf.Zero(grown[prev*stride:])
		array = grown
		*capacity = n
	}

	slot := array[index*stride : (index+1)*stride]
	if item == nil {
		buf.Zero(slot)
	} else {
		copy(slot, item)
	}
	return array, nil
}

func checkArgs(array []byte, index int, capacity *int, item []byte, stride int) error {
	switch {
	case capacity == nil:
		return fmt.Errorf("%w: nil capacity", ErrInvalid)
	case index < 0:
		return fmt.Errorf("%w: negative index %d", ErrInvalid, index)
	case stride <= 0:
		return fmt.Errorf("%w: stride %d", ErrInvalid, stride)
	case *capacity < 0:
		return fmt.Errorf("%w: negative capacity %d", ErrInvalid, *capacity)
	case item != nil && len(item) != stride:
		return fmt.Errorf("%w: item is %d bytes, stride is %d", ErrInvalid, len(item), stride)
	}
	if !fits(index, stride) {
		return fmt.Errorf("%w: index %d overflows stride %d", ErrInvalid, index, stride)
	}
	if array != nil {
		need, ok := buf.MulOverflowSafe(*capacity, stride)
		if !ok || len(array) < need {
			return fmt.Errorf("%w: array holds %d bytes, capacity needs %d", ErrInvalid, len(array), need)
		}
	}
	return nil
}

// fits reports whether the largest capacity a write at index can grow to
// (index+Increment elements) is still addressable in bytes.
func fits(index, stride int) bool {
	top, ok := buf.AddOverflowSafe(index, Increment)
	if !ok {
		return false
	}
	_, ok = buf.MulOverflowSafe(top, stride)
	return ok
}
