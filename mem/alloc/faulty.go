package alloc

import "syscall"

// Faulty wraps an allocator and fails selected calls with ENOMEM.
//
// Calls are numbered from 1 across Malloc, Calloc, Realloc and Reserve; Free and
// Unreserve are never counted and never fail.
type Faulty struct {
	next     Allocator
	failOn   map[int]bool
	failFrom int
	calls    int
	failures int
}

// FailOn returns a Faulty that fails exactly the listed calls.
// A nil next means a fresh Heap.
func FailOn(next Allocator, calls ...int) *Faulty {
	f := newFaulty(next)
	for _, n := range calls {
		f.failOn[n] = true
	}
	return f
}

// FailAfter returns a Faulty whose first n calls succeed and every later call fails.
func FailAfter(next Allocator, n int) *Faulty {
	f := newFaulty(next)
	f.failFrom = n + 1
	return f
}

func newFaulty(next Allocator) *Faulty {
	if next == nil {
		next = &Heap{}
	}
	return &Faulty{next: next, failOn: make(map[int]bool)}
}

// Calls returns the number of counted calls so far.
func (f *Faulty) Calls() int { return f.calls }

// Failures returns how many calls were failed on purpose.
func (f *Faulty) Failures() int { return f.failures }

func (f *Faulty) tick() bool {
	f.calls++
	if f.failOn[f.calls] || (f.failFrom > 0 && f.calls >= f.failFrom) {
		f.failures++
		return true
	}
	return false
}

// Malloc fails when the call is selected, else forwards.
func (f *Faulty) Malloc(size int) ([]byte, error) {
	if f.tick() {
		return nil, syscall.ENOMEM
	}
	return f.next.Malloc(size)
}

// Calloc fails when the call is selected, else forwards.
func (f *Faulty) Calloc(n, size int) ([]byte, error) {
	if f.tick() {
		return nil, syscall.ENOMEM
	}
	return f.next.Calloc(n, size)
}

// Realloc fails when the call is selected, else forwards. A failed call leaves
// b untouched.
func (f *Faulty) Realloc(b []byte, size int) ([]byte, error) {
	if f.tick() {
		return nil, syscall.ENOMEM
	}
	return f.next.Realloc(b, size)
}

// Free forwards to the wrapped allocator.
func (f *Faulty) Free(b []byte) {
	f.next.Free(b)
}

// Reserve fails when the call is selected, else forwards if the wrapped
// allocator meters typed memory.
func (f *Faulty) Reserve(size int) error {
	if f.tick() {
		return syscall.ENOMEM
	}
	if rs, ok := f.next.(Reserver); ok {
		return rs.Reserve(size)
	}
	return nil
}

// Unreserve forwards to the wrapped allocator when it meters typed memory.
func (f *Faulty) Unreserve(size int) {
	if rs, ok := f.next.(Reserver); ok {
		rs.Unreserve(size)
	}
}
