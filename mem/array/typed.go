package array

import (
	"fmt"
	"math"

	"github.com/joshuapare/dynmem/mem/alloc"
)

// Array is the typed form of AppendItem: a lazily created, increment-grown
// array of T with zeroed unwritten slots.
//
// The zero value is not usable; create one with New.
type Array[T any] struct {
	c     *alloc.Checked
	items []T // len(items) is the capacity once created
	want  int // requested capacity before creation
}

// New returns an empty Array that will be created with at least capacity
// elements on the first Set. A nil Checked uses alloc.Default().
func New[T any](c *alloc.Checked, capacity int) *Array[T] {
	return &Array[T]{c: alloc.Or(c), want: max(capacity, 0)}
}

// Set writes *item (or the zero value when item is nil) at index, creating or
// growing the array as needed. On allocation failure the array keeps its
// previous contents and capacity.
func (a *Array[T]) Set(index int, item *T) error {
	if index < 0 || index > math.MaxInt-Increment {
		return fmt.Errorf("%w: index %d", ErrInvalid, index)
	}

	if a.items == nil {
		items, err := alloc.MakeSlice[T](a.c, initialCapacity(a.want, index))
		if err != nil {
			return err
		}
		a.items = items
	} else if index >= len(a.items) {
		items, err := alloc.GrowSlice(a.c, a.items, NextCapacity(len(a.items), index))
		if err != nil {
			return err
		}
		a.items = items
	}

	if item == nil {
		var zero T
		a.items[index] = zero
	} else {
		a.items[index] = *item
	}
	return nil
}

// At returns the element at index. Callers track their own logical length;
// indexes outside the capacity panic like any slice access.
func (a *Array[T]) At(index int) T {
	return a.items[index]
}

// Cap returns the current capacity, or the requested capacity before the
// array has been created.
func (a *Array[T]) Cap() int {
	if a.items == nil {
		return a.want
	}
	return len(a.items)
}

// Created reports whether storage has been allocated.
func (a *Array[T]) Created() bool {
	return a.items != nil
}

// Items returns the whole backing array, capacity elements long. It aliases
// the array's storage until the next growth.
func (a *Array[T]) Items() []T {
	return a.items
}

// Release drops the storage, returning the array to its uncreated state.
func (a *Array[T]) Release() {
	alloc.FreeSlice(a.c, a.items)
	a.items = nil
}
