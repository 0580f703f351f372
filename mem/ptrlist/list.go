package ptrlist

import (
	"github.com/joshuapare/dynmem/mem/alloc"
	"github.com/joshuapare/dynmem/mem/array"
)

// minSlots is the smallest slot array that fits one item and the sentinel.
const minSlots = 2

// List is a nil-terminated list of owned *T.
type List[T any] struct {
	c       *alloc.Checked
	release func(*T)

	slots []*T // nil until the first Append; slots[count] == nil
	count int
	want  int // slot count to create with
}

// New returns an empty list. capacity is the slot count used on first Append
// (array.Increment when 0, never less than two). release is called for every
// item the list destroys; nil means items are simply dropped.
func New[T any](c *alloc.Checked, capacity int, release func(*T)) *List[T] {
	if capacity <= 0 {
		capacity = array.Increment
	}
	return &List[T]{
		c:       alloc.Or(c),
		release: release,
		want:    max(capacity, minSlots),
	}
}

// Append adds item at the end. The slot array is created on first use and
// grows by array.Increment slots whenever the item and the sentinel would no
// longer both fit. On allocation failure the list is unchanged.
func (l *List[T]) Append(item *T) error {
	if item == nil {
		return ErrNilItem
	}

	if l.slots == nil {
		slots, err := alloc.MakeSlice[*T](l.c, l.want)
		if err != nil {
			return err
		}
		l.slots = slots
	} else if l.count+1 >= len(l.slots) {
		slots, err := alloc.GrowSlice(l.c, l.slots, l.count+array.Increment)
		if err != nil {
			return err
		}
		l.slots = slots
	}

	l.slots[l.count] = item
	l.count++
	l.slots[l.count] = nil
	return nil
}

// Remove takes the first slot holding item (pointer identity) out of the list,
// shifting later items and the sentinel one slot left. The item is returned to
// the caller unreleased. If item is not in the list Remove returns nil, false
// and changes nothing.
func (l *List[T]) Remove(item *T) (*T, bool) {
	i := l.index(item)
	if i < 0 {
		return nil, false
	}
	copy(l.slots[i:], l.slots[i+1:l.count+1])
	l.count--
	return item, true
}

// RemoveAndDestroy removes *item from the list and then releases it whether or
// not it was found, clearing *item. It reports whether the item was in the
// list. Pass only pointers you mean to give up.
func (l *List[T]) RemoveAndDestroy(item **T) bool {
	if item == nil || *item == nil {
		return false
	}
	_, found := l.Remove(*item)
	l.destroy(*item)
	*item = nil
	return found
}

// DestroyAll releases every item, then the slot array itself, and returns the
// list to its empty, uncreated state. It is a no-op on an uncreated list.
func (l *List[T]) DestroyAll() {
	if l.slots == nil {
		return
	}
	for _, it := range l.slots[:l.count] {
		l.destroy(it)
	}
	alloc.FreeSlice(l.c, l.slots)
	l.slots = nil
	l.count = 0
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return l.count
}

// Cap returns the number of slots, sentinel room included, or the slot count
// the list will be created with.
func (l *List[T]) Cap() int {
	if l.slots == nil {
		return l.want
	}
	return len(l.slots)
}

// Items returns the live items. The slice aliases the list until the next
// mutation.
func (l *List[T]) Items() []*T {
	if l.slots == nil {
		return nil
	}
	return l.slots[:l.count]
}

// Slots returns the live items followed by the nil sentinel, or nil for an
// uncreated list.
func (l *List[T]) Slots() []*T {
	if l.slots == nil {
		return nil
	}
	return l.slots[:l.count+1]
}

// Contains reports whether item is in the list.
func (l *List[T]) Contains(item *T) bool {
	return l.index(item) >= 0
}

func (l *List[T]) index(item *T) int {
	if item == nil {
		return -1
	}
	for i, it := range l.slots[:l.count] {
		if it == item {
			return i
		}
	}
	return -1
}

func (l *List[T]) destroy(item *T) {
	if l.release != nil {
		l.release(item)
	}
}
