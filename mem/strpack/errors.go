package strpack

import "errors"

var (
	// ErrEmbeddedNUL indicates a string containing a NUL byte, which would end
	// it early once stored.
	ErrEmbeddedNUL = errors.New("strpack: string contains NUL")

	// ErrCorrupt indicates a block that does not follow the packed layout.
	ErrCorrupt = errors.New("strpack: corrupt block")
)
