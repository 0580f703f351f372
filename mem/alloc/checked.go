package alloc

import (
	"syscall"

	"github.com/joshuapare/dynmem/internal/buf"
	"github.com/joshuapare/dynmem/mem/diag"
)

// Checked wraps an Allocator and reports every failure on a diagnostic
// channel before returning nil.
type Checked struct {
	a Allocator
	r diag.Reporter
}

// New returns a Checked allocator. A nil Allocator means a fresh unlimited Heap;
// a nil Reporter means diag.Stderr().
func New(a Allocator, r diag.Reporter) *Checked {
	if a == nil {
		a = &Heap{}
	}
	if r == nil {
		r = diag.Stderr()
	}
	return &Checked{a: a, r: r}
}

// Allocator returns the wrapped allocator.
func (c *Checked) Allocator() Allocator {
	return c.a
}

// Malloc allocates size bytes of unspecified content. A negative size is
// treated as an overflowed request and fails.
func (c *Checked) Malloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, c.fail("malloc", 0, syscall.ENOMEM)
	}
	b, err := c.a.Malloc(size)
	if err != nil {
		return nil, c.fail("malloc", size, err)
	}
	return b, nil
}

// Calloc allocates n*size zeroed bytes.
func (c *Checked) Calloc(n, size int) ([]byte, error) {
	total, ok := buf.MulOverflowSafe(n, size)
	if !ok {
		return nil, c.fail("calloc", 0, syscall.ENOMEM)
	}
	b, err := c.a.Calloc(n, size)
	if err != nil {
		return nil, c.fail("calloc", total, err)
	}
	return b, nil
}

// Realloc resizes b to size bytes. On failure b must no longer be used.
func (c *Checked) Realloc(b []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, c.fail("realloc", 0, syscall.ENOMEM)
	}
	nb, err := c.a.Realloc(b, size)
	if err != nil {
		return nil, c.fail("realloc", size, err)
	}
	return nb, nil
}

// ReallocArray resizes b to n elements of size bytes, failing on overflow
// instead of wrapping around.
func (c *Checked) ReallocArray(b []byte, n, size int) ([]byte, error) {
	total, ok := buf.MulOverflowSafe(n, size)
	if !ok {
		return nil, c.fail("realloc", 0, syscall.ENOMEM)
	}
	return c.Realloc(b, total)
}

// Free releases b. Freeing nil is a no-op.
func (c *Checked) Free(b []byte) {
	if b == nil {
		return
	}
	c.a.Free(b)
}

// Reporter returns the diagnostic channel.
func (c *Checked) Reporter() diag.Reporter {
	return c.r
}

// reserve admits a typed allocation of size bytes that replaces held bytes
// already charged. The ceiling applies even when the backend does not meter.
func (c *Checked) reserve(op string, size, held int) error {
	if size < 0 {
		return c.fail(op, 0, syscall.ENOMEM)
	}
	if size > MaxAlloc {
		return c.fail(op, size, syscall.ENOMEM)
	}
	rs, ok := c.a.(Reserver)
	if !ok {
		return nil
	}
	if err := rs.Reserve(size - held); err != nil {
		return c.fail(op, size, err)
	}
	return nil
}

func (c *Checked) unreserve(size int) {
	if rs, ok := c.a.(Reserver); ok && size > 0 {
		rs.Unreserve(size)
	}
}

// fail emits the single diagnostic for a failed call and builds its error.
func (c *Checked) fail(op string, size int, err error) error {
	code, msg := errnoOf(err)
	c.r.Report(diag.Diagnostic{
		Severity: diag.SevError,
		Op:       op,
		Size:     size,
		Code:     code,
		Message:  msg,
	})
	return &Error{Op: op, Size: size, Err: err}
}
