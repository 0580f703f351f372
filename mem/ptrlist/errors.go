package ptrlist

import "errors"

// ErrNilItem indicates an Append of a nil pointer, which would read as the
// list's terminator.
var ErrNilItem = errors.New("ptrlist: nil item")
