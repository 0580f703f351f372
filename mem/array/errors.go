package array

import "errors"

// ErrInvalid indicates a call whose arguments cannot describe a valid element
// write (negative index, bad stride, item of the wrong size).
var ErrInvalid = errors.New("array: invalid argument")
