package alloc

import (
	"testing"

	"github.com/joshuapare/dynmem/mem/diag"
)

// newTestChecked returns a Checked over a, collecting diagnostics.
func newTestChecked(t testing.TB, a Allocator) (*Checked, *diag.Collector) {
	t.Helper()
	col := diag.NewCollector(nil)
	return New(a, col), col
}
