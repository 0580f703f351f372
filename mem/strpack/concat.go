package strpack

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/joshuapare/dynmem/internal/buf"
	"github.com/joshuapare/dynmem/mem/alloc"
)

// Append writes args after the NUL-terminated contents of target and returns
// the resulting buffer, NUL-terminated.
//
// capacity tracks the usable size of target and may be nil, in which case
// target is always reallocated. When target is nil and *capacity already
// exceeds what is needed, the new buffer is allocated at *capacity bytes so the
// caller's reservation is kept. Empty args contribute nothing.
//
// On allocation failure target is freed, *capacity is left alone, and Append
// returns nil with an error wrapping alloc.ErrNoMemory. An arg containing NUL
// is rejected with ErrEmbeddedNUL before anything is allocated or freed.
func Append(c *alloc.Checked, target []byte, capacity *int, args ...string) ([]byte, error) {
	c = alloc.Or(c)

	have := Len(target)
	need, ok := have+1, true
	for i, a := range args {
		if strings.IndexByte(a, 0) >= 0 {
			return nil, fmt.Errorf("arg %d: %w", i, ErrEmbeddedNUL)
		}
		if ok {
			need, ok = buf.AddOverflowSafe(need, len(a))
		}
	}
	if !ok {
		need = -1
	}

	reserved := 0
	if capacity != nil {
		reserved = *capacity
	}

	out := target
	if target == nil || reserved < need || len(target) < need {
		size := need
		if target == nil && reserved > need {
			size = reserved
		}

		var err error
		if target == nil {
			out, err = c.Malloc(size)
		} else {
			out, err = c.Realloc(target, size)
		}
		if err != nil {
			c.Free(target)
			return nil, err
		}
		if capacity != nil {
			*capacity = size
		}
	}

	n := have
	for _, a := range args {
		n += copy(out[n:], a)
	}
	out[n] = 0
	return out, nil
}

// Len returns the number of bytes before the first NUL in b, or len(b) if
// there is none.
func Len(b []byte) int {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return i
	}
	return len(b)
}

// String returns the contents of b up to its first NUL.
func String(b []byte) string {
	return string(b[:Len(b)])
}
