package alloc

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/dynmem/mem/diag"
)

// Backend names an Allocator implementation for Configure.
type Backend string

const (
	BackendHeap Backend = "heap"
	BackendMmap Backend = "mmap"
)

// Options controls Configure.
type Options struct {
	// Backend selects the allocator. Default: BackendHeap.
	Backend Backend

	// Limit is the heap byte budget (0 = unlimited). Ignored by BackendMmap.
	Limit int

	// Reporter receives diagnostics. Takes precedence over Logger.
	Reporter diag.Reporter

	// Logger is wrapped with diag.NewSlog when Reporter is nil.
	// If both are nil, diagnostics go to standard error.
	Logger *slog.Logger
}

// Configure builds a Checked allocator from opts.
func Configure(opts Options) (*Checked, error) {
	var a Allocator
	switch opts.Backend {
	case "", BackendHeap:
		a = NewHeap(opts.Limit)
	case BackendMmap:
		a = NewMmap()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}

	r := opts.Reporter
	if r == nil && opts.Logger != nil {
		r = diag.NewSlog(opts.Logger)
	}
	return New(a, r), nil
}

// Default returns a new unlimited heap allocator reporting to standard error.
// Each call gets its own Heap, so independent callers never share counters.
func Default() *Checked {
	return New(&Heap{}, diag.Stderr())
}

// Or returns c, or Default() when c is nil.
func Or(c *Checked) *Checked {
	if c == nil {
		return Default()
	}
	return c
}
