// Package array grows arrays in fixed increments of Increment elements.
//
// AppendItem is the type-erased form: the caller supplies a raw byte buffer and
// an element stride, and tracks the capacity itself. Array[T] is the typed form
// of the same policy for Go values.
//
// # Growth
//
// Capacity only ever advances in whole increments. When an index lands beyond
// the current capacity, the capacity jumps straight to the first
// increment-aligned value that covers it, in a single reallocation:
//
//	capacity 5, index 17  ->  capacity 20
//
// Newly grown slots are always zero-filled, never left uninitialized.
package array
