package alloc

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrNoMemory is wrapped by every allocation failure.
	ErrNoMemory = errors.New("alloc: out of memory")

	// ErrUnknownBackend indicates an Options.Backend value Configure does not know.
	ErrUnknownBackend = errors.New("alloc: unknown backend")
)

// Error describes one failed allocation call.
type Error struct {
	Op   string // "malloc", "calloc" or "realloc"
	Size int    // requested bytes, 0 when the size itself overflowed
	Err  error  // underlying platform error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("alloc: %s of %d bytes failed: %v", e.Op, e.Size, e.Err)
}

// Unwrap exposes both ErrNoMemory and the platform error to errors.Is/As.
func (e *Error) Unwrap() []error {
	return []error{ErrNoMemory, e.Err}
}

// errnoOf extracts the platform error number and description from err.
func errnoOf(err error) (int, string) {
	var en syscall.Errno
	if errors.As(err, &en) {
		return int(en), en.Error()
	}
	return 0, err.Error()
}
