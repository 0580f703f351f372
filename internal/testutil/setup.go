package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dynmem/mem/alloc"
	"github.com/joshuapare/dynmem/mem/diag"
)

// NewChecked returns a Checked allocator over a whose diagnostics are
// collected instead of logged. A nil a means an unlimited Heap.
//
// Example:
//
//	c, col := testutil.NewChecked(t, alloc.FailOn(nil, 2))
//	...
//	testutil.RequireFailure(t, col, "realloc")
func NewChecked(t testing.TB, a alloc.Allocator) (*alloc.Checked, *diag.Collector) {
	t.Helper()
	col := diag.NewCollector(nil)
	return alloc.New(a, col), col
}

// RequireFailure asserts that exactly one diagnostic was reported, for op,
// at error severity. It returns that diagnostic.
func RequireFailure(t testing.TB, col *diag.Collector, op string) diag.Diagnostic {
	t.Helper()
	require.Equal(t, 1, col.Len(), "diagnostics: %v", col.Diagnostics)
	d, _ := col.Last()
	require.Equal(t, op, d.Op)
	require.Equal(t, diag.SevError, d.Severity)
	return d
}
